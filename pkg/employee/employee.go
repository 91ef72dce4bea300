// Package employee provides the employee kinds a payroll roster can hold.
//
// Every kind computes its own salary and renders as a single payslip line:
//
//	salaried Ada Lovelace (e-1): 3000.00
//
// A kind whose inputs are invalid returns an error from Salary and renders
// "invalid" in place of the amount.
package employee

import (
	"errors"
	"fmt"
)

// Kind identifies an employee variant.
type Kind string

const (
	KindSalaried     Kind = "salaried"
	KindHourly       Kind = "hourly"
	KindCommissioned Kind = "commissioned"
)

// MonthlyBaseHours is the number of hours paid at the normal rate each month.
// Hours above it are overtime.
const MonthlyBaseHours = 151.67

// OvertimeMultiplier applies to hours above MonthlyBaseHours.
const OvertimeMultiplier = 1.25

var (
	// ErrNegativeAmount is returned when a pay input is below zero.
	ErrNegativeAmount = errors.New("employee: negative amount")

	// ErrInvalidRate is returned when a commission rate is outside [0, 1].
	ErrInvalidRate = errors.New("employee: commission rate out of range")
)

// Salaried is paid a fixed monthly amount.
type Salaried struct {
	ID            string
	Name          string
	MonthlySalary float64
}

// Salary returns the monthly salary.
func (s Salaried) Salary() (float64, error) {
	if s.MonthlySalary < 0 {
		return 0, fmt.Errorf("monthly salary %.2f: %w", s.MonthlySalary, ErrNegativeAmount)
	}
	return s.MonthlySalary, nil
}

func (s Salaried) String() string {
	return line(KindSalaried, s.Name, s.ID, s)
}

// Hourly is paid per hour worked, with overtime above MonthlyBaseHours.
type Hourly struct {
	ID         string
	Name       string
	HourlyRate float64
	Hours      float64
}

// Salary returns rate * hours, paying overtime hours at OvertimeMultiplier.
func (h Hourly) Salary() (float64, error) {
	if h.HourlyRate < 0 {
		return 0, fmt.Errorf("hourly rate %.2f: %w", h.HourlyRate, ErrNegativeAmount)
	}
	if h.Hours < 0 {
		return 0, fmt.Errorf("hours %.2f: %w", h.Hours, ErrNegativeAmount)
	}

	regular, overtime := h.Hours, 0.0
	if h.Hours > MonthlyBaseHours {
		regular, overtime = MonthlyBaseHours, h.Hours-MonthlyBaseHours
	}
	return h.HourlyRate*regular + h.HourlyRate*OvertimeMultiplier*overtime, nil
}

func (h Hourly) String() string {
	return line(KindHourly, h.Name, h.ID, h)
}

// Commissioned is paid a base salary plus a share of sales.
type Commissioned struct {
	ID             string
	Name           string
	BaseSalary     float64
	Sales          float64
	CommissionRate float64
}

// Salary returns base + sales * rate.
func (c Commissioned) Salary() (float64, error) {
	if c.BaseSalary < 0 {
		return 0, fmt.Errorf("base salary %.2f: %w", c.BaseSalary, ErrNegativeAmount)
	}
	if c.Sales < 0 {
		return 0, fmt.Errorf("sales %.2f: %w", c.Sales, ErrNegativeAmount)
	}
	if c.CommissionRate < 0 || c.CommissionRate > 1 {
		return 0, fmt.Errorf("rate %v: %w", c.CommissionRate, ErrInvalidRate)
	}
	return c.BaseSalary + c.Sales*c.CommissionRate, nil
}

func (c Commissioned) String() string {
	return line(KindCommissioned, c.Name, c.ID, c)
}

type payer interface {
	Salary() (float64, error)
}

func line(kind Kind, name, id string, p payer) string {
	amount := "invalid"
	if v, err := p.Salary(); err == nil {
		amount = fmt.Sprintf("%.2f", v)
	}
	if id == "" {
		return fmt.Sprintf("%s %s: %s", kind, name, amount)
	}
	return fmt.Sprintf("%s %s (%s): %s", kind, name, id, amount)
}
