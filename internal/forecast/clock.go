package forecast

import "github.com/jonboulle/clockwork"

// clock drives cache expiry so tests can advance time without sleeping.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
