// Package clock stamps report times. Stores take a Clock so tests can pin
// the time.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-battle/internal/pkg/clock Clock

// Clock tells the time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock in UTC
func New() Clock {
	return systemClock{}
}
