// Package catalog holds the static fishing-spot inventory. Spots are
// compiled in rather than loaded from storage: the list changes at the pace
// of a code release and every entry is reviewed against the validation
// rules before it ships.
package catalog

import (
	"sort"

	"github.com/couchcryptid/fishcast/internal/domain"
)

// spots is the Tampa Bay inventory, ordered roughly north to south. Order
// is meaningful: rating output follows catalog order before any sort a
// caller applies.
var spots = []domain.Spot{
	{
		ID:          "gandy-shadows",
		Name:        "Gandy Bridge Shadow Lines",
		Lat:         27.877,
		Lon:         -82.568,
		Species:     []string{"Snook", "Spotted Seatrout", "Mangrove Snapper"},
		Description: "Light-and-shadow edges along the Gandy spans where bait stacks up on moving water.",
		Habitat:     []string{"bridge pilings", "shadow lines", "channel edge"},
		TidePref:    domain.PrefersIncoming,
		Tips: []string{
			"Work jigs parallel to the shadow line, not across it.",
			"The last two hours of the incoming push bait against the pilings.",
		},
	},
	{
		ID:          "picnic-island",
		Name:        "Picnic Island Flats",
		Lat:         27.853,
		Lon:         -82.538,
		Species:     []string{"Flounder", "Sheepshead", "Redfish"},
		Description: "Sand-hole pocked flats beside the pier with quick access to the shipping channel drop.",
		Habitat:     []string{"sand holes", "pier structure", "spoil edge"},
		TidePref:    domain.PrefersOutgoing,
		Tips: []string{
			"Drag soft plastics through the white sand holes for flounder.",
			"Fiddler crabs around the pier legs for sheepshead in the cool months.",
		},
	},
	{
		ID:          "weedon-island",
		Name:        "Weedon Island Preserve",
		Lat:         27.850,
		Lon:         -82.602,
		Species:     []string{"Redfish", "Snook", "Spotted Seatrout"},
		Description: "Mangrove creeks and grass flats on the east side of the bay, classic sight-fishing water.",
		Habitat:     []string{"mangrove shoreline", "grass flats", "oyster bars"},
		TidePref:    domain.PrefersIncoming,
		Tips: []string{
			"Flooding tide pushes reds tight to the mangrove roots.",
			"Fish the outside points early before boat traffic builds.",
		},
	},
	{
		ID:          "macdill-flats",
		Name:        "MacDill Grass Flats",
		Lat:         27.821,
		Lon:         -82.503,
		Species:     []string{"Redfish", "Spotted Seatrout"},
		Description: "Broad turtle-grass flats off the peninsula's south tip, best poled or waded quietly.",
		Habitat:     []string{"grass flats", "potholes", "sandbar"},
		TidePref:    domain.PrefersIncoming,
		Tips: []string{
			"Look for tailing reds on the first of the flood at daybreak.",
			"Potholes hold the bigger seatrout when the sun gets high.",
		},
	},
	{
		ID:          "cockroach-bay",
		Name:        "Cockroach Bay",
		Lat:         27.692,
		Lon:         -82.512,
		Species:     []string{"Redfish", "Spotted Seatrout", "Snook"},
		Description: "Skinny backcountry bay dotted with mangrove islands, a poling-skiff preserve.",
		Habitat:     []string{"mangrove islands", "shallow flats", "oyster bars"},
		TidePref:    domain.PrefersIncoming,
		Tips: []string{
			"Stake out a point and let the tide bring the fish to you.",
			"Negative winter lows concentrate reds in the channels.",
		},
	},
	{
		ID:          "skyway-approach",
		Name:        "Skyway Bridge Approaches",
		Lat:         27.621,
		Lon:         -82.655,
		Species:     []string{"Tarpon", "Mangrove Snapper", "Sheepshead"},
		Description: "Deep structure along the Skyway spans and fishing piers at the mouth of the bay.",
		Habitat:     []string{"bridge pilings", "rock riprap", "deep channel"},
		TidePref:    domain.PrefersOutgoing,
		Tips: []string{
			"Tarpon ride the outgoing hill tide along the channel edge in early summer.",
			"Scale down leader for snapper once the water clears.",
		},
	},
	{
		ID:          "fort-desoto",
		Name:        "Fort De Soto Bunces Pass",
		Lat:         27.618,
		Lon:         -82.729,
		Species:     []string{"Snook", "Redfish", "Flounder"},
		Description: "Swift pass between barrier islands where bait flushes off the flats on every tide change.",
		Habitat:     []string{"pass", "sandbars", "swash channel"},
		TidePref:    domain.PrefersOutgoing,
		Tips: []string{
			"Drift the outgoing with whitebait along the bar's down-current seam.",
			"Snook stack in the swash channel at night around the new moon.",
		},
	},
	{
		ID:          "egmont-channel",
		Name:        "Egmont Key Channel Edge",
		Lat:         27.596,
		Lon:         -82.760,
		Species:     []string{"Tarpon", "Mangrove Snapper"},
		Description: "The main shipping channel edge off Egmont Key, big water for big fish.",
		Habitat:     []string{"shipping channel", "hard bottom", "current seam"},
		TidePref:    domain.PrefersOutgoing,
		Tips: []string{
			"Watch for rolling tarpon on the slack before the outgoing starts to run.",
			"Heavy jigs hold bottom for snapper when the current is honest.",
		},
	},
}

// Spots returns the catalog as a fresh slice so callers can reorder or
// filter without touching the embedded inventory.
func Spots() []domain.Spot {
	out := make([]domain.Spot, len(spots))
	copy(out, spots)
	return out
}

// ByID looks a spot up by its identifier.
func ByID(id string) (domain.Spot, bool) {
	for _, s := range spots {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Spot{}, false
}

// SpeciesList returns every species named anywhere in the catalog, sorted
// and deduplicated with catalog casing kept.
func SpeciesList() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range spots {
		for _, sp := range s.Species {
			if _, ok := seen[sp]; ok {
				continue
			}
			seen[sp] = struct{}{}
			out = append(out, sp)
		}
	}
	sort.Strings(out)
	return out
}
