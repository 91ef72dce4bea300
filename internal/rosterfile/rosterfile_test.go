package rosterfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bft-labs/payroll/pkg/employee"
)

const tomlRoster = `
[[employees]]
kind = "salaried"
id = "e-1"
name = "Ada"
monthly_salary = 1000.0

[[employees]]
kind = "hourly"
id = "e-2"
name = "Linus"
hourly_rate = 25.0
hours = 100.02

[[employees]]
kind = "commissioned"
id = "e-3"
name = "Grace"
base_salary = 200.0
sales = 1002.5
commission_rate = 0.1
`

const yamlRoster = `
employees:
  - kind: salaried
    id: e-1
    name: Ada
    monthly_salary: 1000
  - kind: Hourly
    name: Linus
    hourly_rate: 20
    hours: 10
`

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"roster.toml": FormatTOML,
		"roster.yaml": FormatYAML,
		"roster.YML":  FormatYAML,
		"roster":      FormatTOML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDecode_TOML(t *testing.T) {
	emps, err := Decode(strings.NewReader(tomlRoster), FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(emps) != 3 {
		t.Fatalf("Decode() returned %d employees, want 3", len(emps))
	}

	if got, ok := emps[0].(employee.Salaried); !ok || got.ID != "e-1" || got.MonthlySalary != 1000 {
		t.Errorf("emps[0] = %#v, want salaried e-1 1000", emps[0])
	}
	if got, ok := emps[1].(employee.Hourly); !ok || got.Name != "Linus" || got.Hours != 100.02 {
		t.Errorf("emps[1] = %#v, want hourly Linus", emps[1])
	}
	if got, ok := emps[2].(employee.Commissioned); !ok || got.CommissionRate != 0.1 {
		t.Errorf("emps[2] = %#v, want commissioned rate 0.1", emps[2])
	}
}

func TestDecode_YAML(t *testing.T) {
	emps, err := Decode(strings.NewReader(yamlRoster), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(emps) != 2 {
		t.Fatalf("Decode() returned %d employees, want 2", len(emps))
	}

	h, ok := emps[1].(employee.Hourly)
	if !ok {
		t.Fatalf("emps[1] = %#v, want employee.Hourly", emps[1])
	}
	if _, err := uuid.Parse(h.ID); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", h.ID, err)
	}
	if s, _ := h.Salary(); s != 200 {
		t.Errorf("Salary() = %v, want 200", s)
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		emps, err := Decode(strings.NewReader(""), format)
		if err != nil {
			t.Errorf("Decode(empty, %s) error = %v", format, err)
		}
		if len(emps) != 0 {
			t.Errorf("Decode(empty, %s) returned %d employees, want 0", format, len(emps))
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr error
	}{
		{
			name:    "unknown kind",
			input:   "[[employees]]\nkind = \"intern\"\nname = \"Bob\"\n",
			format:  FormatTOML,
			wantErr: ErrUnknownKind,
		},
		{
			name:    "missing name",
			input:   "employees:\n  - kind: salaried\n",
			format:  FormatYAML,
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("employees = ["), FormatTOML); err == nil {
		t.Error("Decode() expected error for malformed TOML")
	}
	if _, err := Decode(strings.NewReader("employees: [\n"), FormatYAML); err == nil {
		t.Error("Decode() expected error for malformed YAML")
	}
}

func TestRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	if err := os.WriteFile(path, []byte(tomlRoster), 0644); err != nil {
		t.Fatalf("Failed to write roster file: %v", err)
	}

	r, err := Roster(path)
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	var buf bytes.Buffer
	if err := r.PrintPayslips(&buf); err != nil {
		t.Fatalf("PrintPayslips() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Total payroll: 3800.75€\n") {
		t.Errorf("PrintPayslips() output = %q, want total 3800.75€", buf.String())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
