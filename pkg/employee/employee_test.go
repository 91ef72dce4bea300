package employee

import (
	"errors"
	"math"
	"testing"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		name    string
		emp     interface{ Salary() (float64, error) }
		want    float64
		wantErr error
	}{
		{name: "salaried", emp: Salaried{MonthlySalary: 3000}, want: 3000},
		{name: "salaried negative", emp: Salaried{MonthlySalary: -1}, wantErr: ErrNegativeAmount},
		{name: "hourly no overtime", emp: Hourly{HourlyRate: 20, Hours: 100}, want: 2000},
		{name: "hourly at base", emp: Hourly{HourlyRate: 10, Hours: MonthlyBaseHours}, want: 1516.7},
		{name: "hourly overtime", emp: Hourly{HourlyRate: 10, Hours: MonthlyBaseHours + 8}, want: 1516.7 + 100},
		{name: "hourly negative hours", emp: Hourly{HourlyRate: 10, Hours: -1}, wantErr: ErrNegativeAmount},
		{name: "hourly negative rate", emp: Hourly{HourlyRate: -10, Hours: 1}, wantErr: ErrNegativeAmount},
		{name: "commissioned", emp: Commissioned{BaseSalary: 1500, Sales: 10000, CommissionRate: 0.05}, want: 2000},
		{name: "commissioned zero rate", emp: Commissioned{BaseSalary: 1500, Sales: 10000}, want: 1500},
		{name: "commissioned rate above one", emp: Commissioned{BaseSalary: 1500, Sales: 1, CommissionRate: 1.5}, wantErr: ErrInvalidRate},
		{name: "commissioned negative sales", emp: Commissioned{Sales: -5, CommissionRate: 0.1}, wantErr: ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.emp.Salary()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Salary() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Salary() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Salary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		emp  interface{ String() string }
		want string
	}{
		{name: "salaried with id", emp: Salaried{ID: "e-1", Name: "Ada", MonthlySalary: 3000}, want: "salaried Ada (e-1): 3000.00"},
		{name: "salaried without id", emp: Salaried{Name: "Ada", MonthlySalary: 3000}, want: "salaried Ada: 3000.00"},
		{name: "hourly", emp: Hourly{ID: "e-2", Name: "Linus", HourlyRate: 20, Hours: 100}, want: "hourly Linus (e-2): 2000.00"},
		{name: "commissioned", emp: Commissioned{ID: "e-3", Name: "Grace", BaseSalary: 1500, Sales: 10000, CommissionRate: 0.05}, want: "commissioned Grace (e-3): 2000.00"},
		{name: "invalid", emp: Hourly{ID: "e-4", Name: "Ken", HourlyRate: 10, Hours: -3}, want: "hourly Ken (e-4): invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.emp.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
