package isin

import (
	"errors"
	"testing"
)

func TestLengthError_Is(t *testing.T) {
	err := newLengthError(8, Length)

	if !errors.Is(err, ErrInvalidLength) {
		t.Error("LengthError should unwrap to ErrInvalidLength")
	}
	if errors.Is(err, ErrInvalidCharacter) {
		t.Error("LengthError should not match ErrInvalidCharacter")
	}
}

func TestCharacterError_Is(t *testing.T) {
	err := newCharacterError('$', 11)

	if !errors.Is(err, ErrInvalidCharacter) {
		t.Error("CharacterError should unwrap to ErrInvalidCharacter")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Error("CharacterError should not match ErrOutOfRange")
	}
}

func TestRangeError_Is(t *testing.T) {
	err := newRangeError(MaxValue + 1)

	if !errors.Is(err, ErrOutOfRange) {
		t.Error("RangeError should unwrap to ErrOutOfRange")
	}
	if errors.Is(err, ErrInvalidLength) {
		t.Error("RangeError should not match ErrInvalidLength")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "length",
			err:  newLengthError(8, 12),
			want: "invalid length: got 8 characters, want 12",
		},
		{
			name: "character",
			err:  newCharacterError('$', 11),
			want: `invalid character '$' at position 11`,
		},
		{
			name: "range",
			err:  newRangeError(4738381338321616896),
			want: "value out of range: 4738381338321616896 exceeds maximum 4738381338321616895",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
