// Package domain models normalized fishing conditions for a coastal region:
// daily weather summaries, predicted tide events, the static spot catalog,
// and the synthetic fallbacks that stand in when a live feed is unavailable.
//
// # Data Sources
//
// Weather comes from an Open-Meteo style forecast endpoint. The payload is
// column-oriented: one flat array per daily field (max/min temperature,
// precipitation sum, max wind speed, dominant wind direction, WMO weather
// code), all indexed by a shared time array, plus a single hourly array of
// sea-level pressure carrying 24 samples per forecast day in day order.
//
// Tides come from a NOAA CO-OPS style predictions endpoint (product
// "predictions", interval "hilo", datum MLLW, English units). Each row is a
// combined local date-time string, a signed decimal height string, and an
// "H"/"L" type tag. The feed reports some failures as HTTP 200 with an
// embedded error object in place of the prediction list.
//
// # Tide Time Convention
//
//	"2024-06-15 06:30"  →  date "2024-06-15", hour 6, minute 30
//
// Stamps are station-local clock values. They are split by plain string
// slicing (first space, first colon) rather than parsed into a time.Time:
// a timezone-aware parse would reinterpret the station's local clock and
// silently shift events by the host's offset. See [NormalizeTides].
//
// # Pressure Convention
//
// A day's pressure is the arithmetic mean of its non-null hourly samples,
// rounded to the nearest millibar; a day with no usable samples gets the
// 1013 mb standard atmosphere. The trend compares the hour-6 sample to the
// hour-18 sample: a move above +1.5 mb is rising, below -1.5 mb falling,
// otherwise stable. A missing comparison sample falls back to the day mean.
//
// # Fallback Data
//
// When a feed is down, [FallbackDays] and [FallbackTides] produce synthetic
// stand-ins anchored to today: a fixed mild-weather archetype and a mixed
// semidiurnal tide pattern that drifts 0.83 hours later each day to track
// the lunar day. Fallback values are optimistic-neutral rather than a
// climatology model; they exist so downstream scoring never observes partial
// or malformed state.
package domain
