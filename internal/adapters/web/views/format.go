package views

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	pricePrinter = message.NewPrinter(language.English)
	lowerCaser   = cases.Lower(language.English)
)

// FormatPrice renders whole currency units with grouping: 480000 -> "$480,000".
func FormatPrice(price int64) string {
	return pricePrinter.Sprintf("$%d", price)
}

// navPath maps a nav label to its route: "Agency" -> "/agency".
func navPath(label string) string {
	return "/" + lowerCaser.String(label)
}
