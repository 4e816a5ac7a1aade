// Package isin implements a reversible codec between ISIN-shaped
// identifiers and unsigned 64-bit integers, plus the ISO 6166 style
// check-digit routine used to validate them.
//
// An identifier is exactly 12 characters drawn from 0-9 and A-Z. Each
// character is a base-36 digit (0-9 map to 0-9, A-Z map to 10-35), so
// every identifier corresponds to exactly one integer in [0, MaxValue]
// and the mapping preserves lexicographic order.
//
// # Basic Usage
//
//	value, err := isin.Encode("US0378331005")
//	// value == 4051032581069391173
//
//	id, err := isin.Decode(value)
//	// id == "US0378331005"
//
//	isin.IsValid("US0378331005") // true
//	isin.Verify("US0378331005")  // true, check digit matches
//
//	digit, err := isin.CheckDigit("US037833100")
//	// digit == 5
//
// # Failure Model
//
// Two conventions coexist. Encode, Decode, CheckDigit and WithCheckDigit
// return errors wrapping ErrInvalidLength, ErrInvalidCharacter or
// ErrOutOfRange; use errors.Is to classify them. IsValid and Verify are
// predicates: they never fail and fold every malformed input into false,
// so callers can use them as cheap guards before the raising variants.
//
// # Case Policy
//
// The default codec accepts uppercase only; lowercase input is an
// ErrInvalidCharacter. A folding codec that normalizes a-z to the same
// 10-35 digit values is available via Use(CaseFold) or
// New(WithCasePolicy(CaseFold)). Decode always produces uppercase, so
// round-tripping lowercase input under CaseFold yields its uppercase
// form.
//
// # Events
//
// Every operation emits a capitan signal carrying the operation's
// input, result, duration and error. Attach capitan handlers to consume
// them; with no handlers attached emission is a no-op.
//
// All operations are pure and touch only their own stack-local state.
// Codecs are immutable after construction and safe for concurrent use
// without locking.
package isin

// Identifier geometry and value range.
const (
	// Length is the exact identifier length in characters.
	Length = 12

	// PrefixLength is the length of the check-digit input, an
	// identifier minus its trailing check digit.
	PrefixLength = Length - 1

	// Base is the positional radix of the identifier alphabet.
	Base = 36

	// MaxValue is Base^Length - 1, the largest encodable value.
	// It fits a uint64 with room to spare, so the accumulation
	// r = r*36 + digit never overflows.
	MaxValue uint64 = 4738381338321616895
)

// Alphabet lists the identifier characters in digit-value order.
// Alphabet[v] is the character for digit value v.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
