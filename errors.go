// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package nargs

import (
	"fmt"
	"strings"
)

var (
	// ErrTagRedeclared is returned by NewTag when a tag name is declared a
	// second time. Tag declarations are definition-time work; a collision
	// is a programming error, not a call-time condition.
	ErrTagRedeclared = &Error{
		Name:    "TagRedeclaredError",
		Message: "tag name already declared",
	}

	// ErrInvalidTagName is returned by NewTag for an empty tag name.
	ErrInvalidTagName = &Error{
		Name:    "InvalidTagNameError",
		Message: "tag name must not be empty",
	}

	// ErrUnexpectedNamedArg represents an unexpected named argument error.
	ErrUnexpectedNamedArg = &Error{Name: "UnexpectedNamedArgError"}

	// ErrType represents a type error.
	ErrType = &Error{Name: "TypeError"}
)

// Error represents an error value of this package. Derived errors created
// with NewError chain back to their package level sentinel through Cause,
// so errors.Is matches them against the Err* values above.
type Error struct {
	Name    string
	Message string
	Cause   error
}

// Error implements error interface.
func (e *Error) Error() string {
	name := e.Name
	if name == "" {
		name = "error"
	}
	return fmt.Sprintf("%s: %s", name, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given messages, keeping this
// Error's Name and setting this Error as its Cause.
func (e *Error) NewError(messages ...string) *Error {
	return &Error{
		Name:    e.Name,
		Message: strings.Join(messages, " "),
		Cause:   e,
	}
}

// NewArgumentTypeError creates a new Error from ErrType.
func NewArgumentTypeError(name, expectType, foundType string) *Error {
	return ErrType.NewError(
		fmt.Sprintf("invalid type for argument %s: expected %s, found %s",
			name, expectType, foundType))
}
