package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatGPA renders a GPA the way the legacy report printed doubles: the
// shortest round-tripping decimal with at least one fractional digit, and
// d.dddE-n below 1e-3.
func formatGPA(v float64) string {
	if v != 0 && v < 1e-3 {
		return formatScientific(v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatScientific turns "1.5E-04" into "1.5E-4" and "1E-04" into "1.0E-4".
func formatScientific(v float64) string {
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	sign := ""
	if strings.HasPrefix(exp, "-") {
		sign = "-"
	}
	digits := strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "E" + sign + digits
}

// upper applies full Unicode case mapping, so "ß" becomes "SS".
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
