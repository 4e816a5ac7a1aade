package isin_test

import (
	"testing"

	"github.com/webmobix/isin"
)

func TestUse_CachesByPolicy(t *testing.T) {
	isin.Reset()
	defer isin.Reset()

	strict1, err := isin.Use(isin.CaseStrict)
	if err != nil {
		t.Fatalf("Use(CaseStrict): %v", err)
	}
	strict2, err := isin.Use(isin.CaseStrict)
	if err != nil {
		t.Fatalf("Use(CaseStrict) second call: %v", err)
	}
	if strict1 != strict2 {
		t.Error("Use should return the cached codec for the same policy")
	}

	fold, err := isin.Use(isin.CaseFold)
	if err != nil {
		t.Fatalf("Use(CaseFold): %v", err)
	}
	if fold == strict1 {
		t.Error("Use should return distinct codecs for distinct policies")
	}
	if fold.Policy() != isin.CaseFold {
		t.Errorf("Policy() = %q, want %q", fold.Policy(), isin.CaseFold)
	}
}

func TestUse_UnknownPolicy(t *testing.T) {
	if _, err := isin.Use("bogus"); err == nil {
		t.Error("Use should reject unknown policies")
	}
}

func TestReset(t *testing.T) {
	before, err := isin.Use(isin.CaseStrict)
	if err != nil {
		t.Fatal(err)
	}

	isin.Reset()

	after, err := isin.Use(isin.CaseStrict)
	if err != nil {
		t.Fatal(err)
	}
	if before == after {
		t.Error("Reset should discard cached codecs")
	}
}
