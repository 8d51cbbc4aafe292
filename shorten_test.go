package olc

import (
	"errors"
	"testing"
)

// TestShorten walks the same full code through references at increasing
// distances from its center; each step allows fewer digits to be trimmed.
func TestShorten(t *testing.T) {
	cases := []struct {
		code                string
		latitude, longitude float64
		want                string
	}{
		// Reference at the code center.
		{"9C3W9QCJ+2VX", 51.3701125, -1.217765625, "+2VX"},
		// Reference still within 0.3 of the next resolution up.
		{"9C3W9QCJ+2VX", 51.3708675, -1.217765625, "CJ+2VX"},
		{"9C3W9QCJ+2VX", 51.3852125, -1.217765625, "9QCJ+2VX"},
		// Longitude distance behaves the same way.
		{"9C3W9QCJ+2VX", 51.3701125, -1.217010625, "CJ+2VX"},
		// Too far to shorten at all.
		{"8FWC2345+G6", 47.0, 8.0, "8FWC2345+G6"},
	}
	for _, tc := range cases {
		got, err := Shorten(tc.code, tc.latitude, tc.longitude)
		if err != nil {
			t.Fatalf("Shorten(%q, %v, %v): %v", tc.code, tc.latitude, tc.longitude, err)
		}
		if got != tc.want {
			t.Errorf("Shorten(%q, %v, %v) = %q, want %q",
				tc.code, tc.latitude, tc.longitude, got, tc.want)
		}
	}
}

// TestShortenRejects covers the InvalidArgument surface of Shorten.
func TestShortenRejects(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"short code", "9QCJ+2VX"},
		{"malformed code", "9C3W9QCJ+V"},
		{"padded code", "7FG49Q00+"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Shorten(tc.code, 51.37, -1.2)
			if err == nil {
				t.Fatalf("Shorten(%q): expected error", tc.code)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Shorten(%q): error %v does not wrap ErrInvalidArgument", tc.code, err)
			}
		})
	}
}

// TestRecoverNearest checks prefix reconstruction against a fixture and the
// full-code passthrough.
func TestRecoverNearest(t *testing.T) {
	got, err := RecoverNearest("9G8F+6X", 47.4, 8.6)
	if err != nil {
		t.Fatalf("RecoverNearest: %v", err)
	}
	if want := "8FVC9G8F+6X"; got != want {
		t.Errorf("RecoverNearest(9G8F+6X, 47.4, 8.6) = %q, want %q", got, want)
	}

	// A full code passes through unchanged, whatever the reference.
	got, err = RecoverNearest("8FVC9G8F+6X", 0, 0)
	if err != nil {
		t.Fatalf("RecoverNearest full: %v", err)
	}
	if got != "8FVC9G8F+6X" {
		t.Errorf("full code changed: %q", got)
	}
}

// TestRecoverNearestRejects verifies codes that are neither short nor full
// fail with InvalidArgument.
func TestRecoverNearestRejects(t *testing.T) {
	for _, code := range []string{"", "G6", "9C3W9QCJ+V"} {
		_, err := RecoverNearest(code, 51.37, -1.2)
		if err == nil {
			t.Fatalf("RecoverNearest(%q): expected error", code)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("RecoverNearest(%q): error %v does not wrap ErrInvalidArgument", code, err)
		}
	}
}

// TestRecoverAcrossCellBoundary places the reference just south of a cell
// boundary while the code center sits just north of it; recovery must shift
// one cell toward the reference instead of snapping to the wrong cell.
func TestRecoverAcrossCellBoundary(t *testing.T) {
	full := mustEncode(t, 47.0001, 8.5, 10)
	short := full[4:]
	got, err := RecoverNearest(short, 46.9999, 8.5)
	if err != nil {
		t.Fatalf("RecoverNearest(%q): %v", short, err)
	}
	if got != full {
		t.Errorf("RecoverNearest(%q, 46.9999, 8.5) = %q, want %q", short, got, full)
	}
}

// TestShortenRecoverRoundTrip asserts the inverse property: recovering a
// shortened code with the same reference yields the original full code.
func TestShortenRecoverRoundTrip(t *testing.T) {
	points := []struct{ latitude, longitude float64 }{
		{51.3701125, -1.217765625},
		{47.365562, 8.52479},
		{-33.8688, 151.2093},
		{64.95, -147.7},
	}
	for _, p := range points {
		full := mustEncode(t, p.latitude, p.longitude, 10)
		short, err := Shorten(full, p.latitude, p.longitude)
		if err != nil {
			t.Fatalf("Shorten(%q): %v", full, err)
		}
		got, err := RecoverNearest(short, p.latitude, p.longitude)
		if err != nil {
			t.Fatalf("RecoverNearest(%q): %v", short, err)
		}
		if got != full {
			t.Errorf("round trip (%v, %v): %q -> %q -> %q", p.latitude, p.longitude, full, short, got)
		}
	}
}
