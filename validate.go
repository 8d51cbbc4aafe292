package olc

import "strings"

// IsValid reports whether code is syntactically a valid Open Location Code,
// full or short. All characters must come from the code alphabet (either
// case) with exactly one separator at an even position no later than the
// eighth digit. Padding may appear as a single even-length run immediately
// before the separator, which must then be the final character.
func IsValid(code string) bool {
	if code == "" {
		return false
	}
	sep := strings.IndexRune(code, Separator)
	if sep < 0 {
		return false
	}
	// Exactly one separator, and not as the whole code.
	if strings.ContainsRune(code[sep+1:], Separator) {
		return false
	}
	if len(code) == 1 {
		return false
	}
	if sep > separatorPosition || sep%2 == 1 {
		return false
	}

	if pad := strings.IndexRune(code, Padding); pad >= 0 {
		// Codes cannot start with padding, and the digits before it form
		// complete pairs.
		if pad == 0 || pad%2 == 1 {
			return false
		}
		if pad > separatorPosition-2 {
			return false
		}
		// One contiguous run reaching the separator, nothing after it.
		if code[len(code)-1] != Separator {
			return false
		}
		for i := pad; i < sep; i++ {
			if code[i] != Padding {
				return false
			}
		}
	}

	// A single trailing digit after the separator is not decodable.
	if len(code)-sep-1 == 1 {
		return false
	}

	for i := 0; i < len(code); i++ {
		if i == sep || code[i] == Padding {
			continue
		}
		if digitValue(code[i]) < 0 {
			return false
		}
	}
	return true
}

// IsShort reports whether code is a valid short code: one with leading digits
// removed, decodable only relative to a reference location.
func IsShort(code string) bool {
	if !IsValid(code) {
		return false
	}
	return strings.IndexRune(code, Separator) < separatorPosition
}

// IsFull reports whether code is a valid full code. Beyond syntax this checks
// that the leading digits stay inside the legal coordinate ranges: not every
// combination of alphabet characters names a point on the planet.
func IsFull(code string) bool {
	if !IsValid(code) || IsShort(code) {
		return false
	}
	// First digit is a latitude place worth 20 degrees; it must decode
	// below 90.
	if digitValue(code[0])*encodingBase >= latitudeMax*2 {
		return false
	}
	if len(code) > 1 && digitValue(code[1])*encodingBase >= longitudeMax*2 {
		return false
	}
	return true
}
