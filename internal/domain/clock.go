package domain

import "github.com/jonboulle/clockwork"

// clock is the time source for advisory ProcessedAt stamps. Production code
// uses the real clock; tests and fixture generators inject a fake via SetClock
// for deterministic output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for advisory building. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
