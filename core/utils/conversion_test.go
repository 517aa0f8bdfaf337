package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"float64", 2.5, 2.5},
		{"int", 3, 3.0},
		{"string", "1.75", 1.75},
		{"string with spaces", " 4.0 ", 4.0},
		{"bytes", []byte("0.5"), 0.5},
		{"garbage string", "n/a", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToFloat64(tt.input))
		})
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 5, ToInt(int64(5)))
	assert.Equal(t, 5, ToInt(5.9)) // truncates
	assert.Equal(t, 5, ToInt("5"))
	assert.Equal(t, 5, ToInt([]byte("5")))
	assert.Equal(t, 0, ToInt("abc"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "hello", ToString([]byte("hello")))
	assert.Equal(t, "", ToString(nil))
	// JSON decodes all numbers to float64; whole values must not gain a decimal point.
	assert.Equal(t, "42", ToString(float64(42)))
	assert.Equal(t, "2.5", ToString(2.5))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool(" true "))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}
