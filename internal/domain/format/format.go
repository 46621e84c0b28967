// Package format renders money, dates and quantities the way the console shows them (pt-BR).
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders v as Brazilian real, e.g. "R$ 1.234,50".
// Negative values are prefixed with "-".
func FormatCurrency(v decimal.Decimal) string {
	v = v.Round(2)
	f, _ := v.Abs().Float64()
	s := "R$ " + printer.Sprintf("%.2f", f)
	if v.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatDate returns an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// FormatQuantity prints the shortest decimal form with a comma separator: 2.50 -> "2,5".
func FormatQuantity(q decimal.Decimal) string {
	return strings.Replace(q.String(), ".", ",", 1)
}
