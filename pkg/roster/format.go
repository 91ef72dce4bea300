package roster

// Format holds the labels used by PrintPayslips.
type Format struct {
	// Title is written on the first line.
	Title string

	// TotalLabel precedes the formatted total.
	TotalLabel string

	// Currency is appended directly after the total.
	Currency string
}

// EnglishFormat is the default payslip layout.
var EnglishFormat = Format{
	Title:      "=== Payslip Summary ===",
	TotalLabel: "Total payroll: ",
	Currency:   "€",
}

// FrenchFormat reproduces the French payslip layout.
var FrenchFormat = Format{
	Title:      "=== Bulletin de paie ===",
	TotalLabel: "Masse salariale totale : ",
	Currency:   "€",
}

// FormatFor returns the preset for a locale ("en" or "fr").
// The second result is false for unknown locales.
func FormatFor(locale string) (Format, bool) {
	switch locale {
	case "", "en":
		return EnglishFormat, true
	case "fr":
		return FrenchFormat, true
	default:
		return Format{}, false
	}
}

// WithCurrency returns a copy of f with the currency suffix replaced.
func (f Format) WithCurrency(currency string) Format {
	f.Currency = currency
	return f
}
