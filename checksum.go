package isin

import (
	"context"
	"time"
)

// CheckDigit computes the ISO 6166 style check digit over an
// 11-character prefix. Returns an error wrapping ErrInvalidLength when
// len(prefix) != PrefixLength, or ErrInvalidCharacter via the same
// classification Encode uses.
//
// The arithmetic follows the reference implementation rather than the
// textbook description: each character contributes a single term from
// its 0-35 digit value. Moving right to left with an alternating flag
// that starts unset, a flagged value is doubled and, above 9, reduced
// to the sum of its two decimal digits; the running total then
// accumulates the decimal digit sum of the term. For plain digits this
// is exactly Luhn. The check digit is (10 - total mod 10) mod 10.
func (c *Codec) CheckDigit(prefix string) (int, error) {
	start := time.Now()
	digit, err := c.checkDigit(prefix)
	emitCheckDigitComplete(context.Background(), c.policy, prefix, digit, time.Since(start), err)
	return digit, err
}

func (c *Codec) checkDigit(prefix string) (int, error) {
	if len(prefix) != PrefixLength {
		return 0, newLengthError(len(prefix), PrefixLength)
	}

	sum := 0
	alternate := false
	for i := len(prefix) - 1; i >= 0; i-- {
		digit, ok := c.digitValue(prefix[i])
		if !ok {
			return 0, newCharacterError(prefix[i], i)
		}
		n := int(digit)
		if alternate {
			n *= 2
			if n > 9 {
				n = n/10 + n%10
			}
		}
		sum += n/10 + n%10
		alternate = !alternate
	}

	return (10 - sum%10) % 10, nil
}

// Verify reports whether the trailing character of a 12-character
// identifier matches the check digit computed over its first 11
// characters. Never fails: wrong length, invalid characters and an
// alphabetic trailing character all yield false.
func (c *Codec) Verify(id string) bool {
	start := time.Now()
	valid := c.verify(id)
	emitVerifyComplete(context.Background(), c.policy, id, valid, time.Since(start))
	return valid
}

func (c *Codec) verify(id string) bool {
	if len(id) != Length {
		return false
	}
	last := id[Length-1]
	if last < '0' || last > '9' {
		return false
	}
	digit, err := c.checkDigit(id[:PrefixLength])
	if err != nil {
		return false
	}
	return int(last-'0') == digit
}

// WithCheckDigit appends the computed check digit to an 11-character
// prefix, returning the complete 12-character identifier.
func (c *Codec) WithCheckDigit(prefix string) (string, error) {
	digit, err := c.CheckDigit(prefix)
	if err != nil {
		return "", err
	}
	return prefix + string(byte('0'+digit)), nil
}

// CheckDigit computes the check digit over an 11-character prefix
// using the default strict codec.
func CheckDigit(prefix string) (int, error) {
	return defaultCodec.CheckDigit(prefix)
}

// Verify reports whether an identifier's trailing check digit matches,
// using the default strict codec.
func Verify(id string) bool {
	return defaultCodec.Verify(id)
}

// WithCheckDigit completes an 11-character prefix with its check digit
// using the default strict codec.
func WithCheckDigit(prefix string) (string, error) {
	return defaultCodec.WithCheckDigit(prefix)
}
