package planner

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingNumberRe = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)`)

// leadingNumber reads the numeric prefix of s, so "20", "20.5" and "15-25"
// give 20, 20.5 and 15. ok is false when s does not start with a number.
func leadingNumber(s string) (float64, bool) {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AverageSpend reads a spend answer: "15-25" is averaged, "$40+" and "20"
// are taken as is. Currency symbols are ignored.
func AverageSpend(spendRange string) float64 {
	cleaned := strings.NewReplacer("$", "", "£", "", "€", "", "–", "-", "+", "").Replace(spendRange)
	low, high, isRange := strings.Cut(cleaned, "-")
	a, okA := leadingNumber(low)
	if !isRange {
		if !okA {
			return 0
		}
		return a
	}
	b, okB := leadingNumber(high)
	switch {
	case okA && okB:
		return (a + b) / 2
	case okA:
		return a
	case okB:
		return b
	}
	return 0
}
