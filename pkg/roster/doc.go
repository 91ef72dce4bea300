// Package roster provides a growable, ordered collection of employees and
// the payroll aggregation over it.
//
// A Roster starts empty with a capacity of 4 and doubles its backing storage
// whenever an Add finds it full. Entries are kept in insertion order and are
// never removed or replaced.
//
// # Usage
//
//	r := roster.New[roster.Employee]()
//	r.Add(employee.Salaried{Name: "Ada", MonthlySalary: 3000})
//	r.Add(employee.Hourly{Name: "Linus", HourlyRate: 20, Hours: 140})
//
//	total, err := r.TotalPayroll()
//	if err != nil {
//	    return err
//	}
//
//	if err := r.PrintPayslips(os.Stdout); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// A Roster is not safe for concurrent use. Callers sharing one across
// goroutines must synchronise access themselves.
package roster
