package isin

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidLength indicates input of the wrong length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter indicates a character outside the accepted set.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrOutOfRange indicates a numeric value above MaxValue.
	ErrOutOfRange = errors.New("value out of range")
)

// LengthError reports input whose length does not match the expected
// fixed width. It wraps ErrInvalidLength.
type LengthError struct {
	Len  int // Actual input length
	Want int // Expected length (Length or PrefixLength)
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: got %d characters, want %d", ErrInvalidLength.Error(), e.Len, e.Want)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// CharacterError reports a character outside the accepted set along
// with its position. It wraps ErrInvalidCharacter.
type CharacterError struct {
	Char byte // Offending byte
	Pos  int  // Zero-based position in the input
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter.Error(), e.Char, e.Pos)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// RangeError reports a value above MaxValue. It wraps ErrOutOfRange.
type RangeError struct {
	Value uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d exceeds maximum %d", ErrOutOfRange.Error(), e.Value, MaxValue)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// newLengthError creates a LengthError for fixed-width violations.
func newLengthError(got, want int) error {
	return &LengthError{Len: got, Want: want}
}

// newCharacterError creates a CharacterError for an offending byte.
func newCharacterError(char byte, pos int) error {
	return &CharacterError{Char: char, Pos: pos}
}

// newRangeError creates a RangeError for an unencodable value.
func newRangeError(value uint64) error {
	return &RangeError{Value: value}
}
