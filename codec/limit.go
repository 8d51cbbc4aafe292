package codec

import (
	"fmt"

	"github.com/windlessuser/olc"
)

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Typical use: protect against oversized/corrupt entries coming back from a
// shared byte store.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted payload length in bytes for
	// Decode. Larger payloads fail without invoking Inner.
	MaxDecode int
}

func (c Limit) Encode(a olc.Area) ([]byte, error) { return c.Inner.Encode(a) }

func (c Limit) Decode(b []byte) (olc.Area, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return olc.Area{}, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
