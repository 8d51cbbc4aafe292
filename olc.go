package olc

import "math"

// Code symbols are part of the interchange contract: any implementation must
// reproduce them exactly. Input is case-insensitive, output is upper case.
const (
	// Separator breaks the code into two parts to aid memorability.
	Separator = '+'

	// Padding fills a short pair-digit sequence up to the separator.
	Padding = '0'

	// Alphabet is the base-20 digit set. It avoids vowels and easily
	// confused characters so codes rarely spell words.
	Alphabet = "23456789CFGHJMPQRVWX"
)

const (
	encodingBase = len(Alphabet) // 20

	// Number of digits before the separator in a full code.
	separatorPosition = 8

	latitudeMax  = 90
	longitudeMax = 180

	// Maximum number of digits encoded as lat/lng pairs. A 10-digit code
	// covers roughly 13.5x13.5 meters at the equator; beyond that the grid
	// refinement method takes over.
	pairCodeLength = 10

	// Grid refinement dimensions: each digit past pairCodeLength selects
	// one cell of a 4-column x 5-row sub-grid.
	gridColumns = 4
	gridRows    = 5

	// Size in degrees of the first grid refinement cell, equal to the
	// resolution of the final pair digit.
	gridSizeDegrees = 0.000125

	// Codes with fewer significant digits carry too little precision to be
	// shortened safely.
	minTrimmableCodeLength = 6
)

// pairResolutions holds degrees per digit at each pair place. Each pair of
// digits consumes one entry, so entry i covers digits 2i and 2i+1.
var pairResolutions = [...]float64{20.0, 1.0, 0.05, 0.0025, 0.000125}

// digitValues maps an ASCII byte to its alphabet index, or -1. Both cases are
// mapped so lookups never need an upper-casing pass.
var digitValues [128]int8

func init() {
	for i := range digitValues {
		digitValues[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		digitValues[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			digitValues[c+'a'-'A'] = int8(i)
		}
	}
}

// digitValue returns the alphabet index of c, or -1 when c is not a code
// digit. Bytes outside ASCII (UTF-8 continuation bytes included) are -1.
func digitValue(c byte) int {
	if c >= 128 {
		return -1
	}
	return int(digitValues[c])
}

// clipLatitude clamps a latitude into [-90, 90].
func clipLatitude(latitude float64) float64 {
	return math.Min(latitudeMax, math.Max(-latitudeMax, latitude))
}

// normalizeLongitude wraps a longitude into [-180, 180).
func normalizeLongitude(longitude float64) float64 {
	for longitude < -longitudeMax {
		longitude += 2 * longitudeMax
	}
	for longitude >= longitudeMax {
		longitude -= 2 * longitudeMax
	}
	return longitude
}

// latitudePrecision returns the cell height in degrees implied by a code
// length. Latitude and longitude agree up to 10 digits; past that the grid
// has more rows than columns, so latitude shrinks faster.
func latitudePrecision(codeLength int) float64 {
	if codeLength <= pairCodeLength {
		return math.Pow(float64(encodingBase), float64(codeLength/-2+2))
	}
	return math.Pow(float64(encodingBase), -3) / math.Pow(gridRows, float64(codeLength-pairCodeLength))
}
