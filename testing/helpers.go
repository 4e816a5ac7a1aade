// Package testing provides test fixtures for isin.
package testing

import (
	"github.com/webmobix/isin"
)

// Vector pairs an identifier with its numeric value.
type Vector struct {
	Identifier string
	Value      uint64
}

// Vectors returns known-good identifier/value pairs spanning the
// encodable range, including both boundaries.
func Vectors() []Vector {
	return []Vector{
		{"000000000000", 0},
		{"000000000001", 1},
		{"00000000000Z", 35},
		{"100000000000", 131621703842267136},
		{"GB0002634946", 2146165009038565926},
		{"US0378331005", 4051032581069391173},
		{"US5949181045", 4051557074483933909},
		{"ZZZZZZZZZZZZ", isin.MaxValue},
	}
}

// ChecksummedIdentifiers returns identifiers whose trailing character
// is the correct check digit for their prefix.
func ChecksummedIdentifiers() []string {
	return []string{
		"000000000000",
		"US0378331005",
		"US5949181045",
		"GB0002634946",
		"ZZZZZZZZZZZ7",
	}
}

// MustEncode encodes or panics. Use in fixtures where the identifier
// is known to be valid.
func MustEncode(id string) uint64 {
	value, err := isin.Encode(id)
	if err != nil {
		panic(err)
	}
	return value
}

// Complete appends the check digit to an 11-character prefix or panics.
func Complete(prefix string) string {
	id, err := isin.WithCheckDigit(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
