// Package dominions holds the catalog and scenario entities of the map generator
package dominions

import "fmt"

// Era is the age a nation belongs to. Values match the catalog's stored era.
type Era int32

// Eras
const (
	EraUnspecified Era = 0
	EraEarly       Era = 1
	EraMiddle      Era = 2
	EraLate        Era = 3
)

// Era display codes as they appear in faction references
const (
	EraCodeEarly  = "EA"
	EraCodeMiddle = "MA"
	EraCodeLate   = "LA"
)

var eraCodes = map[string]Era{
	EraCodeEarly:  EraEarly,
	EraCodeMiddle: EraMiddle,
	EraCodeLate:   EraLate,
}

// EraCodes lists the accepted era codes in era order
func EraCodes() []string {
	return []string{EraCodeEarly, EraCodeMiddle, EraCodeLate}
}

// ParseEra maps an era code (EA, MA, LA) to its Era
func ParseEra(code string) (Era, bool) {
	era, ok := eraCodes[code]
	return era, ok
}

// Code returns the display code of the era
func (e Era) Code() string {
	switch e {
	case EraEarly:
		return EraCodeEarly
	case EraMiddle:
		return EraCodeMiddle
	case EraLate:
		return EraCodeLate
	default:
		return fmt.Sprintf("ERA_%d", int32(e))
	}
}

// Valid reports whether e is one of the three known eras
func (e Era) Valid() bool {
	return e >= EraEarly && e <= EraLate
}
