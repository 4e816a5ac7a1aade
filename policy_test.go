package isin

import "testing"

func TestIsValidCasePolicy(t *testing.T) {
	tests := []struct {
		policy CasePolicy
		want   bool
	}{
		{CaseStrict, true},
		{CaseFold, true},
		{"unknown", false},
		{"", false},
		{"STRICT", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			if got := IsValidCasePolicy(tt.policy); got != tt.want {
				t.Errorf("IsValidCasePolicy(%q) = %v, want %v", tt.policy, got, tt.want)
			}
		})
	}
}

func TestWithCasePolicy_UnknownBehavesStrict(t *testing.T) {
	c := New(WithCasePolicy("bogus"))

	if c.IsValid("us0378331005") {
		t.Error("unknown policy should reject lowercase like CaseStrict")
	}
	if !c.IsValid("US0378331005") {
		t.Error("unknown policy should accept uppercase like CaseStrict")
	}
}
