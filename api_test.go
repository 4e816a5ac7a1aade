package isin_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/webmobix/isin"
)

// Guard tests exercising only the exported surface, the way callers
// are expected to combine predicates with the raising conversions.

func TestGuardThenEncode(t *testing.T) {
	id := "US0378331005"

	if !isin.IsValid(id) {
		t.Fatalf("IsValid(%q) = false", id)
	}
	if !isin.Verify(id) {
		t.Fatalf("Verify(%q) = false", id)
	}

	value, err := isin.Encode(id)
	if err != nil {
		t.Fatalf("Encode after successful guard: %v", err)
	}
	back, err := isin.Decode(value)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != id {
		t.Errorf("round trip = %q, want %q", back, id)
	}
}

func TestPredicateNeverRaises(t *testing.T) {
	// Inputs that make the raising functions fail must only make the
	// predicates return false.
	for _, id := range []string{"", "TOOSHORT", "US037833100$", "us0378331005"} {
		if isin.IsValid(id) {
			t.Errorf("IsValid(%q) = true", id)
		}
		if isin.Verify(id) {
			t.Errorf("Verify(%q) = true", id)
		}
		if _, err := isin.Encode(id); err == nil {
			t.Errorf("Encode(%q) succeeded", id)
		}
	}
}

func TestFoldRoundTripNormalizes(t *testing.T) {
	fold, err := isin.Use(isin.CaseFold)
	if err != nil {
		t.Fatal(err)
	}

	value, err := fold.Encode("us0378331005")
	if err != nil {
		t.Fatalf("Encode lowercase: %v", err)
	}
	id, err := fold.Decode(value)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Decode always emits uppercase, so lowercase input round-trips
	// to its normalized form.
	if id != "US0378331005" {
		t.Errorf("Decode = %q, want %q", id, "US0378331005")
	}
}

func ExampleEncode() {
	value, _ := isin.Encode("US0378331005")
	fmt.Println(value)
	// Output: 4051032581069391173
}

func ExampleDecode() {
	id, _ := isin.Decode(4051032581069391173)
	fmt.Println(id)
	// Output: US0378331005
}

func ExampleCheckDigit() {
	digit, _ := isin.CheckDigit("US037833100")
	fmt.Println(digit)
	// Output: 5
}

func ExampleVerify() {
	fmt.Println(isin.Verify("US0378331005"))
	fmt.Println(isin.Verify("US0378331006"))
	// Output:
	// true
	// false
}

func ExampleEncode_invalid() {
	_, err := isin.Encode("TOOSHORT")
	fmt.Println(errors.Is(err, isin.ErrInvalidLength))
	// Output: true
}
