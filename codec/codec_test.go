package codec

import (
	"testing"

	"github.com/windlessuser/olc"
)

func fixtureArea(t *testing.T) olc.Area {
	t.Helper()
	a, err := olc.Decode("7FG49QCJ+2VX")
	if err != nil {
		t.Fatalf("Decode fixture: %v", err)
	}
	return a
}

// TestRoundTrip exercises every codec against a decoded fixture area.
func TestRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"json":     JSON{},
		"cbor":     MustCBOR(false),
		"cbor-det": MustCBOR(true),
		"msgpack":  Msgpack{},
		"limit":    Limit{Inner: JSON{}, MaxDecode: 1 << 10},
	}
	want := fixtureArea(t)
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(want)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != want {
				t.Errorf("round trip mismatch: got %+v want %+v", got, want)
			}
		})
	}
}

// TestDeterministicCBORStable checks that the deterministic mode produces
// byte-identical output across calls.
func TestDeterministicCBORStable(t *testing.T) {
	c := MustCBOR(true)
	a := fixtureArea(t)
	b1, err := c.Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b2, err := c.Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(b1) != string(b2) {
		t.Errorf("deterministic CBOR differed across calls")
	}
}

// TestLimitRejectsOversized ensures the wrapper fails before the inner codec
// sees the payload.
func TestLimitRejectsOversized(t *testing.T) {
	c := Limit{Inner: JSON{}, MaxDecode: 4}
	if _, err := c.Decode(make([]byte, 5)); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}
