package olc

import "math"

// Area is the rectangle a code decodes to: the south-west and north-east
// corners, the center, and the number of significant digits in the code.
// Values are immutable once constructed; a decode call returns a fresh Area.
type Area struct {
	LatitudeLo      float64 `json:"latitude_lo"`
	LongitudeLo     float64 `json:"longitude_lo"`
	LatitudeHi      float64 `json:"latitude_hi"`
	LongitudeHi     float64 `json:"longitude_hi"`
	LatitudeCenter  float64 `json:"latitude_center"`
	LongitudeCenter float64 `json:"longitude_center"`
	CodeLength      int     `json:"code_length"`
}

// newArea derives the center from the bounds, clamped so it never exceeds the
// latitude/longitude maxima.
func newArea(latLo, lngLo, latHi, lngHi float64, codeLength int) Area {
	return Area{
		LatitudeLo:      latLo,
		LongitudeLo:     lngLo,
		LatitudeHi:      latHi,
		LongitudeHi:     lngHi,
		LatitudeCenter:  math.Min(latLo+(latHi-latLo)/2, latitudeMax),
		LongitudeCenter: math.Min(lngLo+(lngHi-lngLo)/2, longitudeMax),
		CodeLength:      codeLength,
	}
}

// Contains reports whether the point lies within the area. Bounds are
// half-open: the low edges are inside, the high edges are not.
func (a Area) Contains(latitude, longitude float64) bool {
	return a.LatitudeLo <= latitude && latitude < a.LatitudeHi &&
		a.LongitudeLo <= longitude && longitude < a.LongitudeHi
}
