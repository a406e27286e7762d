// Package format renders monetary and percentage values for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money returns a currency string with a dollar sign and thousands separators
// (e.g. "$1,234.56").
func Money(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// Percent renders an optional percentage to one decimal place. A nil value
// means the percentage is undefined (zero denominator) and renders as an em
// dash, matching how the dashboard displays it.
func Percent(pct *float64) string {
	if pct == nil {
		return "—"
	}
	return printer.Sprintf("%.1f%%", *pct)
}
