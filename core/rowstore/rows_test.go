package rowstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	t.Run("Nil payload", func(t *testing.T) {
		rows, err := DecodeRows(nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Array payload", func(t *testing.T) {
		rows, err := DecodeRows(json.RawMessage(`[{"collector":"Ana"},{"collector":"Bo"}]`))
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Non-array payload", func(t *testing.T) {
		_, err := DecodeRows(json.RawMessage(`{"collector":"Ana"}`))
		var malformedErr *MalformedError
		assert.ErrorAs(t, err, &malformedErr)
	})
}

func TestRowAccessors(t *testing.T) {
	row := Row{
		"Collector": "  Ana  ",
		"hrs":       "2.5",
		"tasks":     float64(3),
		"active":    "TRUE",
	}

	// First accepted key wins; fallback keys and case-insensitive headers work.
	assert.Equal(t, "Ana", row.String("collector", "name"))
	assert.Equal(t, 2.5, row.Float("hours", "hrs"))
	assert.Equal(t, 3, row.Int("tasks"))
	assert.True(t, row.Bool("active"))

	assert.Equal(t, "", row.String("missing"))
	assert.Equal(t, 0.0, row.Float("missing"))
}
