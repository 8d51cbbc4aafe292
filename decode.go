package olc

import "strings"

// Decode converts a full Open Location Code into the Area it names. Short
// codes cannot be decoded directly; recover them with RecoverNearest first.
func Decode(code string) (Area, error) {
	if !IsFull(code) {
		return Area{}, &CodeError{Code: code, Reason: "not a valid full code"}
	}
	// The validator guarantees at most one separator and a single padding
	// run, so stripping both leaves only significant digits.
	digits := strings.ToUpper(code)
	digits = strings.ReplaceAll(digits, string(Separator), "")
	digits = strings.ReplaceAll(digits, string(Padding), "")

	area := decodePairs(digits[:min(len(digits), pairCodeLength)])
	if len(digits) <= pairCodeLength {
		return area, nil
	}
	grid := decodeGrid(digits[pairCodeLength:])
	return newArea(
		area.LatitudeLo+grid.LatitudeLo,
		area.LongitudeLo+grid.LongitudeLo,
		area.LatitudeLo+grid.LatitudeHi,
		area.LongitudeLo+grid.LongitudeHi,
		area.CodeLength+grid.CodeLength,
	), nil
}

// decodePairs decodes up to 10 digits of alternating lat/lng base-20 places,
// shifting both axes back into signed ranges.
func decodePairs(pairs string) Area {
	latLo, latHi := decodeAxis(pairs, 0)
	lngLo, lngHi := decodeAxis(pairs, 1)
	return newArea(
		latLo-latitudeMax,
		lngLo-longitudeMax,
		latHi-latitudeMax,
		lngHi-longitudeMax,
		len(pairs),
	)
}

// decodeAxis accumulates every second digit starting at offset (0 for
// latitude, 1 for longitude). The high bound is the low bound plus the
// resolution of the last digit consumed; both remain offset into positive
// ranges.
func decodeAxis(pairs string, offset int) (lo, hi float64) {
	var value float64
	i := 0
	for ; i*2+offset < len(pairs); i++ {
		value += float64(digitValue(pairs[i*2+offset])) * pairResolutions[i]
	}
	return value, value + pairResolutions[i-1]
}

// decodeGrid decodes the digits past position 10 as 4x5 sub-grid cells. The
// returned bounds are offsets to add onto the pair-decoded low corner.
func decodeGrid(digits string) Area {
	var latLo, lngLo float64
	latPlaceValue := float64(gridSizeDegrees)
	lngPlaceValue := float64(gridSizeDegrees)
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		row := d / gridColumns
		col := d % gridColumns
		latPlaceValue /= gridRows
		lngPlaceValue /= gridColumns
		latLo += float64(row) * latPlaceValue
		lngLo += float64(col) * lngPlaceValue
	}
	return newArea(latLo, lngLo, latLo+latPlaceValue, lngLo+lngPlaceValue, len(digits))
}
