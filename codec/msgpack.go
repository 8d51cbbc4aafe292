package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/windlessuser/olc"
)

// Msgpack serializes areas using vmihailenco/msgpack/v5. The zero value is
// ready to use. Compact and fast; the default field names differ from the
// JSON tags on olc.Area, so the two codecs are not wire-compatible.
type Msgpack struct{}

func (Msgpack) Encode(a olc.Area) ([]byte, error) {
	return msgpack.Marshal(a)
}

func (Msgpack) Decode(b []byte) (olc.Area, error) {
	var a olc.Area
	err := msgpack.Unmarshal(b, &a)
	return a, err
}
