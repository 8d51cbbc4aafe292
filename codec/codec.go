// Package codec serializes decoded code areas to bytes for storage or
// transport. Implementations must round-trip: Decode(Encode(a)) == a for any
// Area produced by the olc package.
package codec

import "github.com/windlessuser/olc"

// Codec encodes/decodes an olc.Area to []byte.
type Codec interface {
	Encode(olc.Area) ([]byte, error)
	Decode([]byte) (olc.Area, error)
}
