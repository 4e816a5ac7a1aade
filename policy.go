package isin

// CasePolicy selects how lowercase input is treated.
// Pass to New via WithCasePolicy, or to Use directly.
type CasePolicy string

const (
	// CaseStrict accepts uppercase only. Lowercase letters are
	// rejected as invalid characters.
	CaseStrict CasePolicy = "strict"

	// CaseFold accepts lowercase letters and normalizes them to the
	// same 10-35 digit values as their uppercase forms. Decode still
	// emits uppercase, so round-trips uppercase lowercase input.
	CaseFold CasePolicy = "fold"
)

// validCasePolicies contains all valid policies for validation.
var validCasePolicies = map[CasePolicy]bool{
	CaseStrict: true,
	CaseFold:   true,
}

// IsValidCasePolicy returns true if the policy is a known case policy.
func IsValidCasePolicy(policy CasePolicy) bool {
	return validCasePolicies[policy]
}

// Option configures a Codec during construction.
type Option func(*Codec)

// WithCasePolicy sets the codec's case policy. Unknown policies behave
// as CaseStrict.
func WithCasePolicy(policy CasePolicy) Option {
	return func(c *Codec) {
		c.policy = policy
	}
}
