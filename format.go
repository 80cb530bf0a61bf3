package charts

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders axis values with locale thousands grouping; values
// with a fractional part keep one decimal instead.
func FormatNumber(v float64) string {
	if v != math.Trunc(v) {
		return FormatStat(v)
	}
	return printer.Sprintf("%d", int64(v))
}

// FormatStat renders percentage-like secondary metrics with one decimal.
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
