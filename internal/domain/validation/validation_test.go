package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateListName(t *testing.T) {
	existing := []string{"Groceries", "Work"}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrInvalidLength},
		{name: "one character", input: "a"},
		{name: "exactly 100 characters", input: strings.Repeat("a", 100)},
		{name: "101 characters", input: strings.Repeat("a", 101), wantErr: ErrInvalidLength},
		{name: "100 multibyte characters", input: strings.Repeat("é", 100)},
		{name: "duplicate", input: "Groceries", wantErr: ErrDuplicateName},
		{name: "duplicate check is case sensitive", input: "groceries"},
		{name: "length is checked before uniqueness", input: "", wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListName(tt.input, existing)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateListName_LengthShortCircuitsDuplicate(t *testing.T) {
	long := strings.Repeat("x", 150)

	err := ValidateListName(long, []string{long})

	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.False(t, errors.Is(err, ErrDuplicateName))
}

func TestValidateListName_EveryExistingNameIsRejected(t *testing.T) {
	existing := []string{"a", "Groceries", strings.Repeat("z", 100)}

	for _, name := range existing {
		assert.ErrorIs(t, ValidateListName(name, existing), ErrDuplicateName, name)
	}
}

func TestValidateTodoName(t *testing.T) {
	assert.ErrorIs(t, ValidateTodoName(""), ErrInvalidLength)
	assert.NoError(t, ValidateTodoName("Milk"))
	assert.NoError(t, ValidateTodoName(strings.Repeat("m", 200)))
	assert.ErrorIs(t, ValidateTodoName(strings.Repeat("m", 201)), ErrInvalidLength)
}

func TestError_Message(t *testing.T) {
	err := ValidateListName("", nil)

	var validationErr *Error
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "The list name must be between 1 and 100 characters", err.Error())

	assert.Equal(t, "There's already a list with that name", ValidateListName("a", []string{"a"}).Error())
	assert.Equal(t, "The task must be between 1 and 200 characters", ValidateTodoName("").Error())
}
