// Package rms tracks semantic state while reading a random map script: the
// target compatibility mode, the nesting stack, symbol tables, and the
// header-comment metadata region.
package rms

import (
	"strings"
)

// Compatibility is the target game version for a map script. The order
// matters: lints compare modes with >= to decide whether a feature is
// available.
type Compatibility uint8

const (
	// CompatAll tries to be maximally compatible. Basically the same as
	// targeting Conquerors.
	CompatAll Compatibility = iota
	// CompatConquerors targets The Conquerors.
	CompatConquerors
	// CompatHDEdition targets HD Edition, assuming all DLCs.
	CompatHDEdition
	// CompatUserPatch14 targets UserPatch 1.4.
	CompatUserPatch14
	// CompatUserPatch15 targets UserPatch 1.5.
	CompatUserPatch15
	// CompatWololoKingdoms targets WololoKingdoms: UserPatch 1.5 plus
	// constants for HD Edition DLC units and terrains.
	CompatWololoKingdoms
	// CompatDefinitiveEdition targets the Definitive Edition.
	CompatDefinitiveEdition
)

// DefaultCompatibility is used when nothing else is specified.
const DefaultCompatibility = CompatConquerors

func (c Compatibility) String() string {
	switch c {
	case CompatAll:
		return "All"
	case CompatConquerors:
		return "Conquerors"
	case CompatHDEdition:
		return "HD Edition"
	case CompatUserPatch14:
		return "UserPatch 1.4"
	case CompatUserPatch15:
		return "UserPatch 1.5"
	case CompatWololoKingdoms:
		return "WololoKingdoms"
	case CompatDefinitiveEdition:
		return "Definitive Edition"
	}
	return "Unknown"
}

// ParseCompatibility recognises the compatibility names used in header
// comments and on the command line. The second result is false for
// unrecognised values.
func ParseCompatibility(value string) (Compatibility, bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "all":
		return CompatAll, true
	case "hd edition", "hd":
		return CompatHDEdition, true
	case "conquerors", "aoc":
		return CompatConquerors, true
	case "userpatch 1.5", "up 1.5":
		return CompatUserPatch15, true
	case "userpatch 1.4", "up 1.4", "userpatch", "up":
		return CompatUserPatch14, true
	case "wololokingdoms", "wk":
		return CompatWololoKingdoms, true
	case "definitive edition", "de":
		return CompatDefinitiveEdition, true
	}
	return CompatAll, false
}
