// Package rosterfile decodes roster definition files into employees.
//
// Files are TOML by default, or YAML when the extension is .yaml or .yml:
//
//	[[employees]]
//	kind = "salaried"
//	id = "e-1"
//	name = "Ada Lovelace"
//	monthly_salary = 3000.0
//
// Entries without an id are given a random UUID.
package rosterfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/payroll/pkg/employee"
	"github.com/bft-labs/payroll/pkg/roster"
)

// Format is a roster file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownKind is returned for an entry whose kind is not recognised.
	ErrUnknownKind = errors.New("rosterfile: unknown employee kind")

	// ErrMissingName is returned for an entry without a name.
	ErrMissingName = errors.New("rosterfile: employee name is required")
)

var newID = uuid.NewString

// File is the decoded form of a roster file.
type File struct {
	Employees []Entry `toml:"employees" yaml:"employees"`
}

// Entry describes one employee. Only the fields relevant to Kind are read.
type Entry struct {
	Kind           string  `toml:"kind" yaml:"kind"`
	ID             string  `toml:"id" yaml:"id"`
	Name           string  `toml:"name" yaml:"name"`
	MonthlySalary  float64 `toml:"monthly_salary" yaml:"monthly_salary"`
	HourlyRate     float64 `toml:"hourly_rate" yaml:"hourly_rate"`
	Hours          float64 `toml:"hours" yaml:"hours"`
	BaseSalary     float64 `toml:"base_salary" yaml:"base_salary"`
	Sales          float64 `toml:"sales" yaml:"sales"`
	CommissionRate float64 `toml:"commission_rate" yaml:"commission_rate"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads path and returns its employees in file order.
func Load(path string) ([]roster.Employee, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: read %s: %w", path, err)
	}
	emps, err := Decode(bytes.NewReader(b), FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return emps, nil
}

// Decode parses a roster file from r.
func Decode(r io.Reader, format Format) ([]roster.Employee, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("rosterfile: parse yaml: %w", err)
		}
	default:
		if err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("rosterfile: parse toml: %w", err)
		}
	}

	out := make([]roster.Employee, 0, len(f.Employees))
	for i, e := range f.Employees {
		emp, err := e.Employee()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, emp)
	}
	return out, nil
}

// Employee converts the entry into its employee kind.
func (e Entry) Employee() (roster.Employee, error) {
	if e.Name == "" {
		return nil, ErrMissingName
	}
	id := e.ID
	if id == "" {
		id = newID()
	}

	switch employee.Kind(strings.ToLower(e.Kind)) {
	case employee.KindSalaried:
		return employee.Salaried{ID: id, Name: e.Name, MonthlySalary: e.MonthlySalary}, nil
	case employee.KindHourly:
		return employee.Hourly{ID: id, Name: e.Name, HourlyRate: e.HourlyRate, Hours: e.Hours}, nil
	case employee.KindCommissioned:
		return employee.Commissioned{
			ID:             id,
			Name:           e.Name,
			BaseSalary:     e.BaseSalary,
			Sales:          e.Sales,
			CommissionRate: e.CommissionRate,
		}, nil
	default:
		return nil, fmt.Errorf("%q: %w", e.Kind, ErrUnknownKind)
	}
}

// Roster loads path into a new roster built with opts.
func Roster(path string, opts ...roster.Option) (*roster.Roster[roster.Employee], error) {
	emps, err := Load(path)
	if err != nil {
		return nil, err
	}
	r := roster.New[roster.Employee](opts...)
	for _, e := range emps {
		r.Add(e)
	}
	return r, nil
}
