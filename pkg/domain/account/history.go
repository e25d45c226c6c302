package account

import (
	"strconv"
	"strings"
)

// History entries are decimal strings carrying their sign, e.g. "500.0" for a
// deposit and "-300.0" for a withdrawal. Flat fees are recorded as integer
// strings ("-1", "-5"). The loan heuristics parse these back into numbers, so
// the formatting here is load-bearing: whole amounts always keep a trailing
// ".0" so that markers like the ZUS entry "-1775.0" match exactly.

func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatFee(fee float64) string {
	return "-" + strconv.Itoa(int(fee))
}

func parseEntry(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lastThreeAreDeposits(history []string) bool {
	if len(history) < 3 {
		return false
	}
	for _, entry := range history[len(history)-3:] {
		v, ok := parseEntry(entry)
		if !ok || v <= 0 {
			return false
		}
	}
	return true
}

func sumOfLastFiveExceeds(history []string, amount float64) bool {
	if len(history) < 5 {
		return false
	}
	var sum float64
	for _, entry := range history[len(history)-5:] {
		v, _ := parseEntry(entry)
		sum += v
	}
	return sum > amount
}
