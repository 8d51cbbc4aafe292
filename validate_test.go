package olc

import "testing"

// TestValidity runs the syntactic predicates over the canonical fixture set.
func TestValidity(t *testing.T) {
	cases := []struct {
		code               string
		valid, short, full bool
	}{
		// Full codes.
		{"8FWC2345+G6", true, false, true},
		{"8fwc2345+g6", true, false, true}, // case-insensitive
		{"8FWC2345+", true, false, true},
		{"8FWCX400+", true, false, true},
		{"8FWC0000+", true, false, true}, // padded
		{"7FG49Q00+", true, false, true},
		{"7FG49QCJ+2V", true, false, true},

		// Short codes.
		{"WC2345+G6", true, true, false},
		{"2345+G6", true, true, false},
		{"45+G6", true, true, false},
		{"+G6", true, true, false},
		{"8F+", true, true, false},

		// Invalid codes.
		{"", false, false, false},
		{"+", false, false, false},
		{"G+", false, false, false},           // separator at odd position
		{"8FWC2345+G", false, false, false},   // single digit after separator
		{"8FWC2345+G6+", false, false, false}, // two separators
		{"8FWC2345G6+", false, false, false},  // separator past position 8
		{"8FWC2345G6", false, false, false},   // no separator
		{"8FWC2_45+G6", false, false, false},  // character outside the alphabet
		{"8FWC2345+G6 ", false, false, false}, // trailing space
		{"8FWC2η45+G6", false, false, false},  // non-ASCII
		{"0FWC2345+G6", false, false, false},  // leading padding
		{"8F0C2345+G6", false, false, false},  // padding not reaching the separator
		{"8FWC0000+G6", false, false, false},  // digits after a padded separator
		{"8FW00000+", false, false, false},    // odd number of digits before padding

		// Syntactically fine but geographically impossible; caught by IsFull.
		{"XFWC2345+G6", true, false, false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.code); got != tc.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tc.code, got, tc.valid)
		}
		if got := IsShort(tc.code); got != tc.short {
			t.Errorf("IsShort(%q) = %v, want %v", tc.code, got, tc.short)
		}
		if got := IsFull(tc.code); got != tc.full {
			t.Errorf("IsFull(%q) = %v, want %v", tc.code, got, tc.full)
		}
	}
}

// TestGeographicallyImpossibleCodes covers codes that pass the syntax checks
// but decode outside the legal coordinate ranges.
func TestGeographicallyImpossibleCodes(t *testing.T) {
	for _, code := range []string{
		"XFWC2345+G6", // first latitude digit decodes to >= 90
		"CXWC2345+G6", // first longitude digit decodes to >= 180
	} {
		if !IsValid(code) {
			t.Errorf("IsValid(%q) = false, want true", code)
		}
		if IsFull(code) {
			t.Errorf("IsFull(%q) = true, want false", code)
		}
	}
}

// TestPredicatesNeverPanic feeds the predicates hostile input; they must stay
// total.
func TestPredicatesNeverPanic(t *testing.T) {
	inputs := []string{"", "+", "++", "\x00", "\xff\xfe", "++++++++++", "22222222+2\xf0"}
	for _, in := range inputs {
		_ = IsValid(in)
		_ = IsShort(in)
		_ = IsFull(in)
	}
}
