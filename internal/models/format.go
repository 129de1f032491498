package models

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators and two decimals
func FormatMoney(amount float64) string {
	return moneyPrinter.Sprintf("%.2f", amount)
}

// FormatRate renders a fraction as a percentage with one decimal, e.g. 0.02 -> "2.0%"
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// FormatSignedRate renders a fraction as a signed percentage, e.g. 0.073 -> "+7.3%"
func FormatSignedRate(rate float64) string {
	return fmt.Sprintf("%+.1f%%", rate*100)
}
