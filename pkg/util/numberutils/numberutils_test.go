package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"12345", true},
		{"", false},
		{"-1", false},
		{"+1", false},
		{"1 ", false},
		{"1a", false},
		{"١٢", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDigits(tt.in), "IsDigits(%q)", tt.in)
	}
}

func TestIsIntInRange(t *testing.T) {
	assert.True(t, IsIntInRange(1, 1, 100))
	assert.True(t, IsIntInRange(100, 1, 100))
	assert.False(t, IsIntInRange(0, 1, 100))
	assert.False(t, IsIntInRange(101, 1, 100))
}

func TestToIDWithError(t *testing.T) {
	id, err := ToIDWithError("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ToIDWithError("-3")
	assert.ErrorIs(t, err, ErrNotAnIdentifier)

	_, err = ToIDWithError("99999999999999999999")
	assert.Error(t, err)
}
