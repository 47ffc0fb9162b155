// internal/planning/budget_test.go
package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"nil falls back to default", nil, 100000},
		{"float passes through", float64(250000), 250000},
		{"int passes through", 50000, 50000},
		{"int64 passes through", int64(75000), 75000},
		{"plain numeric string", "50000", 50000},
		{"numeric string with whitespace", "  50000  ", 50000},
		{"lakh unit", "10 lakh", 1000000},
		{"lakh without space", "5lakh", 500000},
		{"lkh abbreviation", "2 lkh", 200000},
		{"fractional lakh", "1.5 lakh", 150000},
		{"crore unit", "2 crore", 20000000},
		{"cr abbreviation", "1 cr", 10000000},
		{"fractional crore", "0.5 cr", 5000000},
		{"uppercase units", "10 LAKH", 1000000},
		{"garbage string falls back", "a lot of money", 100000},
		{"garbage with lakh unit falls back", "many lakh", 100000},
		{"empty string falls back", "", 100000},
		{"unsupported type falls back", []string{"50000"}, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBudget(tt.value))
		})
	}
}

func TestLeadsTarget(t *testing.T) {
	tests := []struct {
		name     string
		budget   float64
		expected int
	}{
		{"standard budget", 100000, 100},
		{"large budget", 1000000, 1000},
		{"tiny budget floors at minimum", 5000, 10},
		{"zero budget floors at minimum", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeadsTarget(tt.budget))
		})
	}
}

func TestCACTarget(t *testing.T) {
	// 100000 budget / 100 leads = 1000 per lead
	assert.Equal(t, 1000, CACTarget(100000))
	// Small budget uses the floored lead target
	assert.Equal(t, 500, CACTarget(5000))
}
