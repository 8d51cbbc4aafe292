package codec

import (
	"encoding/json"

	"github.com/windlessuser/olc"
)

// JSON serializes areas with encoding/json. The zero value is ready to use.
type JSON struct{}

func (JSON) Encode(a olc.Area) ([]byte, error) { return json.Marshal(a) }
func (JSON) Decode(b []byte) (olc.Area, error) {
	var a olc.Area
	err := json.Unmarshal(b, &a)
	return a, err
}
