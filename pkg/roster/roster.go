package roster

import (
	"fmt"
	"io"
	"iter"
)

// InitialCapacity is the capacity of a freshly created Roster.
const InitialCapacity = 4

// Employee is what a Roster stores: anything that can compute a salary and
// render itself as text.
type Employee interface {
	// Salary computes the employee's pay. Errors are propagated unchanged
	// by the roster's aggregations.
	Salary() (float64, error)

	fmt.Stringer
}

// Roster is an ordered, growable collection of employees.
type Roster[E Employee] struct {
	entries []E
	grows   int
	format  Format
}

// Option configures a Roster.
type Option func(*options)

type options struct {
	format Format
}

// WithFormat sets the labels used by PrintPayslips.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// New creates an empty Roster with InitialCapacity slots.
func New[E Employee](opts ...Option) *Roster[E] {
	o := options{format: EnglishFormat}
	for _, opt := range opts {
		opt(&o)
	}
	return &Roster[E]{
		entries: make([]E, 0, InitialCapacity),
		format:  o.format,
	}
}

// Add appends e. When the roster is full its capacity doubles first.
func (r *Roster[E]) Add(e E) {
	if len(r.entries) == cap(r.entries) {
		grown := make([]E, len(r.entries), 2*cap(r.entries))
		copy(grown, r.entries)
		r.entries = grown
		r.grows++
	}
	r.entries = append(r.entries, e)
}

// Len returns the number of employees added so far.
func (r *Roster[E]) Len() int {
	return len(r.entries)
}

// Cap returns the current backing capacity.
func (r *Roster[E]) Cap() int {
	return cap(r.entries)
}

// Grows returns how many times the backing storage has been reallocated.
func (r *Roster[E]) Grows() int {
	return r.grows
}

// Empty returns true if no employee has been added.
func (r *Roster[E]) Empty() bool {
	return len(r.entries) == 0
}

// At returns the i-th employee in insertion order. It panics if i is out of
// range, like a slice index.
func (r *Roster[E]) At(i int) E {
	return r.entries[i]
}

// All iterates over the employees in insertion order.
func (r *Roster[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range r.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Employees returns a copy of the entries in insertion order.
func (r *Roster[E]) Employees() []E {
	out := make([]E, len(r.entries))
	copy(out, r.entries)
	return out
}

// TotalPayroll sums the salary of every employee in insertion order.
// An empty roster totals 0. The first salary error stops the sum and is
// returned wrapped with the employee's position.
func (r *Roster[E]) TotalPayroll() (float64, error) {
	var total float64
	for i, e := range r.entries {
		if isNil(e) {
			return 0, fmt.Errorf("employee %d: %w", i, ErrNilEmployee)
		}
		s, err := e.Salary()
		if err != nil {
			return 0, fmt.Errorf("employee %d (%s): %w", i, e, err)
		}
		total += s
	}
	return total, nil
}

// PrintPayslips writes the title, one line per employee in insertion order,
// then the total payroll with two decimals and the currency suffix.
func (r *Roster[E]) PrintPayslips(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.format.Title); err != nil {
		return err
	}
	for i, e := range r.entries {
		if isNil(e) {
			return fmt.Errorf("employee %d: %w", i, ErrNilEmployee)
		}
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}

	total, err := r.TotalPayroll()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%.2f%s\n", r.format.TotalLabel, total, r.format.Currency)
	return err
}

func isNil[E Employee](e E) bool {
	return any(e) == nil
}
