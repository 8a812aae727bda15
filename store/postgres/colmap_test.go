package postgres

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snake converts a camelCase field name to snake_case, the reference for
// what each mapping entry must contain.
func snake(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestColumnMaps_RoundTrip(t *testing.T) {
	maps := map[string]map[string]string{
		"users":           userColumns,
		"professionals":   professionalColumns,
		"vacationPeriods": vacationPeriodColumns,
	}

	for entity, m := range maps {
		t.Run(entity, func(t *testing.T) {
			reverse := make(map[string]string, len(m))
			for field, col := range m {
				// Forward translation is mechanical camel->snake.
				assert.Equal(t, snake(field), col, "field %s", field)

				// Bidirectional: no two fields share a column.
				prev, dup := reverse[col]
				require.False(t, dup, "column %s mapped from both %s and %s", col, prev, field)
				reverse[col] = field
			}
			// Round trip: snake -> camel -> snake reproduces the column.
			for col, field := range reverse {
				assert.Equal(t, col, m[field])
			}
		})
	}
}

func TestColumn_PanicsOnUnknownField(t *testing.T) {
	assert.Panics(t, func() { column(userColumns, "noSuchField") })
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("0c7b9a1e-92f4-4c5b-9f7d-1a2b3c4d5e6f"))
	assert.False(t, isUUID("no-such-id"))
	assert.False(t, isUUID(""))
}
