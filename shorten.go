package olc

import (
	"fmt"
	"math"
	"strings"
)

// Shorten removes leading digits from a full code relative to a reference
// location. How many digits can go depends on the distance between the code
// center and the reference: the closer the reference, the shorter the result.
// At least four digits are removed, at most eight. If the reference is too
// far away to shorten safely, the original code is returned unchanged.
//
// The code must be full, unpadded, and at least six digits long.
func Shorten(code string, latitude, longitude float64) (string, error) {
	if !IsFull(code) {
		return "", &CodeError{Code: code, Reason: "not a valid full code"}
	}
	if strings.ContainsRune(code, Padding) {
		return "", &CodeError{Code: code, Reason: "cannot shorten padded codes"}
	}
	code = strings.ToUpper(code)
	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	if area.CodeLength < minTrimmableCodeLength {
		return "", &CodeError{
			Code:   code,
			Reason: fmt.Sprintf("code length must be at least %d to shorten", minTrimmableCodeLength),
		}
	}

	latitude = clipLatitude(latitude)
	longitude = normalizeLongitude(longitude)
	distance := math.Max(
		math.Abs(area.LatitudeCenter-latitude),
		math.Abs(area.LongitudeCenter-longitude),
	)
	// A reference within half the trimmed resolution would round back to the
	// same cell; 0.3 instead of 0.5 leaves a margin so a slightly different
	// reference still recovers the same code.
	for i := len(pairResolutions) - 2; i >= 1; i-- {
		if distance < pairResolutions[i]*0.3 {
			return code[(i+1)*2:], nil
		}
	}
	return code, nil
}

// RecoverNearest expands a short code into the nearest matching full code,
// using the reference location to reconstruct the removed leading digits.
// The result is the nearest match, which is not necessarily inside the same
// cell as the reference. A valid full code is returned unchanged.
func RecoverNearest(shortCode string, referenceLatitude, referenceLongitude float64) (string, error) {
	if !IsShort(shortCode) {
		if IsFull(shortCode) {
			return shortCode, nil
		}
		return "", &CodeError{Code: shortCode, Reason: "neither a short nor a full code"}
	}
	referenceLatitude = clipLatitude(referenceLatitude)
	referenceLongitude = normalizeLongitude(referenceLongitude)

	shortCode = strings.ToUpper(shortCode)
	// Number of leading digits to reconstruct, and the cell size they imply.
	paddingLength := separatorPosition - strings.IndexRune(shortCode, Separator)
	resolution := math.Pow(float64(encodingBase), float64(2-paddingLength/2))
	halfResolution := resolution / 2

	// Snap the reference down to a resolution-aligned cell and borrow that
	// cell's leading digits.
	roundedLatitude := math.Floor(referenceLatitude/resolution) * resolution
	roundedLongitude := math.Floor(referenceLongitude/resolution) * resolution
	prefix, err := Encode(roundedLatitude, roundedLongitude, 0)
	if err != nil {
		return "", err
	}
	area, err := Decode(prefix[:paddingLength] + shortCode)
	if err != nil {
		return "", err
	}

	// The reference can sit just across a cell boundary from the true
	// nearest match; when the candidate center is more than half a cell
	// away on an axis, the match one cell toward the reference is closer.
	latitudeCenter := area.LatitudeCenter
	if diff := latitudeCenter - referenceLatitude; diff > halfResolution {
		latitudeCenter -= resolution
	} else if diff < -halfResolution {
		latitudeCenter += resolution
	}
	longitudeCenter := area.LongitudeCenter
	if diff := longitudeCenter - referenceLongitude; diff > halfResolution {
		longitudeCenter -= resolution
	} else if diff < -halfResolution {
		longitudeCenter += resolution
	}

	return Encode(latitudeCenter, longitudeCenter, area.CodeLength)
}
