// Package validation checks list and todo names before they reach storage.
package validation

import (
	"errors"
	"unicode/utf8"

	"todo-web/pkg/msg"
	"todo-web/pkg/util/numberutils"
)

const (
	ListNameMinLength = 1
	ListNameMaxLength = 100
	TodoNameMinLength = 1
	TodoNameMaxLength = 200
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrDuplicateName = errors.New("duplicate name")
)

// Error is a validation failure. It unwraps to ErrInvalidLength or ErrDuplicateName and renders the
// user-facing message from the message catalogue.
type Error struct {
	Err        error
	MessageKey string
	Args       []any
}

func (e *Error) Error() string {
	return msg.GetMessage(e.MessageKey, e.Args...)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidateListName checks the length of name first, then that it does not equal any of existingNames.
func ValidateListName(name string, existingNames []string) error {
	if !numberutils.IsIntInRange(utf8.RuneCountInString(name), ListNameMinLength, ListNameMaxLength) {
		return &Error{
			Err:        ErrInvalidLength,
			MessageKey: "list.error.name-length",
			Args:       []any{ListNameMinLength, ListNameMaxLength},
		}
	}

	for _, existing := range existingNames {
		if existing == name {
			return &Error{Err: ErrDuplicateName, MessageKey: "list.error.name-duplicate"}
		}
	}
	return nil
}

// ValidateTodoName checks the length of a todo name.
func ValidateTodoName(name string) error {
	if !numberutils.IsIntInRange(utf8.RuneCountInString(name), TodoNameMinLength, TodoNameMaxLength) {
		return &Error{
			Err:        ErrInvalidLength,
			MessageKey: "todo.error.name-length",
			Args:       []any{TodoNameMinLength, TodoNameMaxLength},
		}
	}
	return nil
}
