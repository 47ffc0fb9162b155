// internal/planning/budget.go
package planning

import (
	"strconv"
	"strings"
)

// DefaultBudget is assumed when the customer budget is absent or
// unparseable.
const DefaultBudget = 100000

// ParseBudget normalizes a customer budget value to INR. Numeric
// values pass through. Strings may carry Indian currency units:
// "lakh"/"lkh" multiply by 1e5, "crore"/"cr" by 1e7. Anything else is
// parsed as a plain number. The function is total; failures fall back
// to DefaultBudget.
func ParseBudget(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return DefaultBudget
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseBudgetString(v)
	default:
		return DefaultBudget
	}
}

func parseBudgetString(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.Contains(s, "lkh") || strings.Contains(s, "lakh"):
		// Strip the longer token first so "lakh" is not mangled by
		// the "lkh" replacement.
		num := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "lakh", ""), "lkh", ""))
		if n, err := strconv.ParseFloat(num, 64); err == nil {
			return n * 100000
		}
		return DefaultBudget

	case strings.Contains(s, "cr"):
		num := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "crore", ""), "cr", ""))
		if n, err := strconv.ParseFloat(num, 64); err == nil {
			return n * 10000000
		}
		return DefaultBudget

	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
		return DefaultBudget
	}
}
