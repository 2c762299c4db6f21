package scoring

import "strings"

// Profile is one species' water-temperature tolerance band in degrees
// Fahrenheit. Optimal sits inside [Min, Max]; outside the band the fish
// feed reluctantly or not at all.
type Profile struct {
	MinF float64
	OptF float64
	MaxF float64
}

// profiles is the static thermal lookup table, keyed by lowercased species
// name. Bands follow the inshore Gulf coast species this catalog targets.
var profiles = map[string]Profile{
	"redfish":          {MinF: 48, OptF: 72, MaxF: 90},
	"snook":            {MinF: 60, OptF: 78, MaxF: 90},
	"spotted seatrout": {MinF: 48, OptF: 70, MaxF: 88},
	"tarpon":           {MinF: 68, OptF: 80, MaxF: 92},
	"flounder":         {MinF: 45, OptF: 66, MaxF: 85},
	"sheepshead":       {MinF: 42, OptF: 62, MaxF: 82},
	"mangrove snapper": {MinF: 62, OptF: 79, MaxF: 92},
}

// defaultProfile covers a species name with no table entry: a broad
// temperate band so scoring stays total instead of failing.
var defaultProfile = Profile{MinF: 50, OptF: 72, MaxF: 90}

// ProfileFor returns the thermal profile for a species name. Lookup is
// case-insensitive; unknown species get a broad default band.
func ProfileFor(species string) Profile {
	if p, ok := profiles[strings.ToLower(species)]; ok {
		return p
	}
	return defaultProfile
}

// KnownSpecies reports whether a species has an explicit thermal profile.
// The catalog validator uses it to catch entries that would silently score
// against the default band.
func KnownSpecies(species string) bool {
	_, ok := profiles[strings.ToLower(species)]
	return ok
}
