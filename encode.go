package olc

import (
	"math"
	"strings"
)

// Encode converts a location into an Open Location Code of codeLength
// significant digits. codeLength 0 selects the default of 10, which names a
// cell of roughly 13.5x13.5 meters at the equator. Lengths below 8 must be
// even; lengths above 14 are sub-centimeter and rarely useful.
//
// Latitude is clipped to [-90, 90] and longitude normalized to [-180, 180).
// Latitude 90 exactly is nudged down by the precision of the requested length
// so the returned code still decodes to a half-open interval.
func Encode(latitude, longitude float64, codeLength int) (string, error) {
	if codeLength <= 0 {
		codeLength = pairCodeLength
	}
	if codeLength < 2 || (codeLength < separatorPosition && codeLength%2 == 1) {
		return "", &LengthError{Length: codeLength}
	}
	latitude = clipLatitude(latitude)
	longitude = normalizeLongitude(longitude)
	if latitude == latitudeMax {
		latitude -= latitudePrecision(codeLength)
	}

	var code strings.Builder
	encodePairs(&code, latitude, longitude, min(codeLength, pairCodeLength))
	if codeLength > pairCodeLength {
		encodeGrid(&code, latitude, longitude, codeLength-pairCodeLength)
	}
	return code.String(), nil
}

// encodePairs emits up to 10 digits of alternating latitude/longitude base-20
// places, inserting the separator after the eighth digit and padding short
// sequences up to it.
func encodePairs(code *strings.Builder, latitude, longitude float64, digits int) {
	// Shift both axes into positive ranges.
	adjustedLatitude := latitude + latitudeMax
	adjustedLongitude := longitude + longitudeMax

	emitted := 0
	for emitted < digits {
		placeValue := pairResolutions[emitted/2]

		digit := int(math.Floor(adjustedLatitude / placeValue))
		adjustedLatitude -= float64(digit) * placeValue
		code.WriteByte(Alphabet[digit])
		emitted++

		digit = int(math.Floor(adjustedLongitude / placeValue))
		adjustedLongitude -= float64(digit) * placeValue
		code.WriteByte(Alphabet[digit])
		emitted++

		if emitted == separatorPosition && emitted < digits {
			code.WriteByte(Separator)
		}
	}
	for code.Len() < separatorPosition {
		code.WriteByte(Padding)
	}
	if code.Len() == separatorPosition {
		code.WriteByte(Separator)
	}
}

// encodeGrid refines the final pair cell with one 4x5 sub-grid digit per
// requested place.
func encodeGrid(code *strings.Builder, latitude, longitude float64, digits int) {
	latPlaceValue := float64(gridSizeDegrees)
	lngPlaceValue := float64(gridSizeDegrees)
	// Only the remainder within the last pair cell matters here.
	adjustedLatitude := math.Mod(latitude+latitudeMax, latPlaceValue)
	adjustedLongitude := math.Mod(longitude+longitudeMax, lngPlaceValue)

	for i := 0; i < digits; i++ {
		row := int(math.Floor(adjustedLatitude / (latPlaceValue / gridRows)))
		col := int(math.Floor(adjustedLongitude / (lngPlaceValue / gridColumns)))
		latPlaceValue /= gridRows
		lngPlaceValue /= gridColumns
		adjustedLatitude -= float64(row) * latPlaceValue
		adjustedLongitude -= float64(col) * lngPlaceValue
		code.WriteByte(Alphabet[row*gridColumns+col])
	}
}
