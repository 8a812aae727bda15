package vacation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/unchain0/sistema-ferias/vacation"
)

func TestProportionalDeduction(t *testing.T) {
	tests := []struct {
		name    string
		revenue string
		days    int
		want    string
	}{
		{"full month equals full revenue", "3000", 30, "3000"},
		{"half month", "3000", 15, "1500"},
		{"single day", "3000", 1, "100"},
		{"non-round daily rate", "1000", 3, "100"},
		{"non-round rate over a full month", "1000", 30, "1000"},
		{"zero days", "3000", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vacation.ProportionalDeduction(vacation.MustParseDecimal(tt.revenue), tt.days)
			assert.True(t, got.Equal(vacation.MustParseDecimal(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestMustParseDecimal(t *testing.T) {
	assert.True(t, vacation.MustParseDecimal("12.5").Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, vacation.MustParseDecimal("nope").IsZero())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.5", "R$ 1.234,50"},
		{"0", "R$ 0,00"},
		{"999", "R$ 999,00"},
		{"1000000", "R$ 1.000.000,00"},
		{"-250.75", "-R$ 250,75"},
	}

	for _, tt := range tests {
		got := vacation.FormatCurrency(vacation.MustParseDecimal(tt.in))
		assert.Equal(t, tt.want, got)
	}
}
