package roster

import "errors"

// ErrNilEmployee is returned by TotalPayroll and PrintPayslips when the
// roster holds a nil entry.
var ErrNilEmployee = errors.New("roster: nil employee")
