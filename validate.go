package isin

// CharClass categorizes a single identifier character.
type CharClass string

const (
	// ClassDigit covers '0'-'9', digit values 0-9.
	ClassDigit CharClass = "digit"

	// ClassLetter covers 'A'-'Z' (and 'a'-'z' under CaseFold),
	// digit values 10-35.
	ClassLetter CharClass = "letter"

	// ClassInvalid covers everything else.
	ClassInvalid CharClass = "invalid"
)

// Classify maps a byte to its digit value and character class.
// Invalid bytes yield -1 and ClassInvalid. Never fails.
func (c *Codec) Classify(b byte) (int, CharClass) {
	digit, ok := c.digitValue(b)
	if !ok {
		return -1, ClassInvalid
	}
	if digit < 10 {
		return int(digit), ClassDigit
	}
	return int(digit), ClassLetter
}

// IsValid reports whether id is a well-formed identifier: exactly
// Length characters, each a digit or letter. Unlike Encode it never
// fails; malformed input folds into false.
func (c *Codec) IsValid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		if _, ok := c.digitValue(id[i]); !ok {
			return false
		}
	}
	return true
}

// Classify maps a byte to its digit value and character class using
// the default strict codec.
func Classify(b byte) (int, CharClass) {
	return defaultCodec.Classify(b)
}

// IsValid reports whether id is a well-formed identifier using the
// default strict codec.
func IsValid(id string) bool {
	return defaultCodec.IsValid(id)
}
