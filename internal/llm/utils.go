package llm

import (
	"math"
	"strconv"
	"strings"
)

// FormatMoney renders an amount as the symbol plus a comma-grouped value
// with two decimals, e.g. "$450,000.00".
func FormatMoney(symbol string, amount float64) string {
	neg := amount < 0 || math.Signbit(amount)
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(symbol)
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(fracPart)
	return b.String()
}

// FormatCount renders a non-negative integer with comma grouping,
// e.g. 1200 -> "1,200".
func FormatCount(n int) string {
	return groupThousands(strconv.Itoa(n))
}

// FormatBathrooms drops the fraction when the count is whole: 1.0 -> "1",
// 1.5 -> "1.5".
func FormatBathrooms(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
