package catalog

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/scoring"
)

// Validate checks the embedded catalog against the invariants the scoring
// engine assumes. It runs in tests and in the validate command so a bad
// entry is caught at release time, not at request time.
func Validate() error {
	return validateSpots(spots)
}

func validateSpots(list []domain.Spot) error {
	ids := make(map[string]struct{}, len(list))
	names := make(map[string]struct{}, len(list))

	for _, s := range list {
		if s.ID == "" {
			return fmt.Errorf("spot %q has an empty id", s.Name)
		}
		if s.ID != strings.ToLower(s.ID) || strings.ContainsAny(s.ID, " _") {
			return fmt.Errorf("spot id %q must be lowercase and hyphenated", s.ID)
		}
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("duplicate spot id %q", s.ID)
		}
		ids[s.ID] = struct{}{}

		if s.Name == "" {
			return fmt.Errorf("spot %q has an empty name", s.ID)
		}
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("duplicate spot name %q", s.Name)
		}
		names[s.Name] = struct{}{}

		if s.Lat < -90 || s.Lat > 90 {
			return fmt.Errorf("spot %q latitude %v out of range", s.ID, s.Lat)
		}
		if s.Lon < -180 || s.Lon > 180 {
			return fmt.Errorf("spot %q longitude %v out of range", s.ID, s.Lon)
		}

		if len(s.Species) == 0 {
			return fmt.Errorf("spot %q lists no species", s.ID)
		}
		for _, sp := range s.Species {
			if !scoring.KnownSpecies(sp) {
				return fmt.Errorf("spot %q species %q has no thermal profile", s.ID, sp)
			}
		}

		if s.Description == "" {
			return fmt.Errorf("spot %q has no description", s.ID)
		}
		if len(s.Habitat) == 0 {
			return fmt.Errorf("spot %q lists no habitat", s.ID)
		}
		if len(s.Tips) == 0 {
			return fmt.Errorf("spot %q has no tips", s.ID)
		}

		switch s.TidePref {
		case domain.PrefersIncoming, domain.PrefersOutgoing:
		default:
			return fmt.Errorf("spot %q tide preference %q is not incoming or outgoing", s.ID, s.TidePref)
		}
	}
	return nil
}
