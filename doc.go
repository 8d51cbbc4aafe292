// Package olc converts between geographic coordinates and Open Location Codes
// (plus codes): short, base-20 strings over a reduced alphabet that name
// rectangular areas rather than points. Codes encode and decode offline, and
// can be shortened relative to a nearby reference location.
//
// Components:
//   - Core codec: Encode/Decode between lat/lng and codes at variable precision.
//   - Validation: IsValid/IsShort/IsFull are pure predicates, never errors.
//   - Relative addressing: Shorten trims leading digits near a reference point;
//     RecoverNearest reconstructs them from one.
//
// Structure of a code:
//
//	8FVC9G8F+6X
//	^^^^^^^^     pair digits (alternating lat/lng, base 20)
//	        ^    separator, always at position 8 in a full code
//	         ^^  grid digits (one 4x5 sub-grid cell each, from digit 11 on)
//
// The first 10 digits are emitted in lat/lng pairs; each pair divides the cell
// area by 400. Digits beyond 10 refine by one 4-column x 5-row grid cell each.
// Codes shorter than 8 digits are right-padded with '0' before the separator
// ("7FG49Q00+" names a 0.05 x 0.05 degree cell).
//
// Every operation is a pure function of its arguments; the package holds no
// mutable state and is safe for concurrent use.
package olc
