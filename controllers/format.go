package controllers

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"admindash/models"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatMoney renders an amount the way the shop reads it, e.g. "Rp 12.000".
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return printer.Sprintf("Rp %d", amount.IntPart())
	}
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("Rp %.2f", f)
}

// FormatDate renders a timestamp as a local calendar date, "-" when unset.
func FormatDate(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(DateLayout)
}

func FormatDateTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(DateTimeLayout)
}
