package isin

import (
	"context"
	"time"
)

// Codec converts between identifiers and numeric values under a fixed
// case policy. The zero-configuration codec from New is strict; see
// WithCasePolicy for folding. Codecs are immutable and safe for
// concurrent use.
type Codec struct {
	policy CasePolicy
}

// New creates a Codec. With no options the codec uses CaseStrict.
func New(opts ...Option) *Codec {
	c := &Codec{policy: CaseStrict}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCodec backs the package-level functions.
var defaultCodec = New()

// Policy returns the codec's case policy.
func (c *Codec) Policy() CasePolicy {
	return c.policy
}

// Encode converts a 12-character identifier to its numeric value.
// Returns an error wrapping ErrInvalidLength when len(id) != Length,
// or ErrInvalidCharacter at the first byte outside the accepted set.
func (c *Codec) Encode(id string) (uint64, error) {
	start := time.Now()
	value, err := c.encode(id)
	emitEncodeComplete(context.Background(), c.policy, id, value, time.Since(start), err)
	return value, err
}

func (c *Codec) encode(id string) (uint64, error) {
	if len(id) != Length {
		return 0, newLengthError(len(id), Length)
	}

	var value uint64
	for i := 0; i < len(id); i++ {
		digit, ok := c.digitValue(id[i])
		if !ok {
			return 0, newCharacterError(id[i], i)
		}
		value = value*Base + digit
	}

	return value, nil
}

// Decode converts a numeric value back to its 12-character identifier.
// The result is always uppercase and left-padded with '0'. Returns an
// error wrapping ErrOutOfRange when value > MaxValue.
func (c *Codec) Decode(value uint64) (string, error) {
	start := time.Now()
	id, err := c.decode(value)
	emitDecodeComplete(context.Background(), c.policy, value, id, time.Since(start), err)
	return id, err
}

func (c *Codec) decode(value uint64) (string, error) {
	if value > MaxValue {
		return "", newRangeError(value)
	}

	// Exactly Length iterations, not "until zero": the loop count is
	// what guarantees fixed-width zero-padded output.
	var buf [Length]byte
	for i := Length - 1; i >= 0; i-- {
		buf[i] = Alphabet[value%Base]
		value /= Base
	}

	return string(buf[:]), nil
}

// MustDecode is like Decode but panics on out-of-range values.
// Use for values already known to be encodable, such as constants.
func (c *Codec) MustDecode(value uint64) string {
	id, err := c.Decode(value)
	if err != nil {
		panic(err)
	}
	return id
}

// digitValue maps a byte to its base-36 digit value. Lowercase letters
// are accepted only under CaseFold.
func (c *Codec) digitValue(b byte) (uint64, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0'), true
	case b >= 'A' && b <= 'Z':
		return uint64(b-'A') + 10, true
	case b >= 'a' && b <= 'z':
		if c.policy == CaseFold {
			return uint64(b-'a') + 10, true
		}
	}
	return 0, false
}

// Encode converts an identifier to its numeric value using the default
// strict codec.
func Encode(id string) (uint64, error) {
	return defaultCodec.Encode(id)
}

// Decode converts a numeric value to its identifier using the default
// strict codec.
func Decode(value uint64) (string, error) {
	return defaultCodec.Decode(value)
}

// MustDecode is like Decode but panics on out-of-range values.
func MustDecode(value uint64) string {
	return defaultCodec.MustDecode(value)
}
