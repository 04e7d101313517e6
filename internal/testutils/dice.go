package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a deterministic dice.Roller. Each roll consumes the next
// scripted fraction in [0, 1) and maps it onto the requested die; once the
// script is exhausted the fallback fraction is used forever.
type ScriptedRoller struct {
	mu        sync.Mutex
	fractions []float64
	fallback  float64
	calls     int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that replays fractions, then fallback.
func NewScriptedRoller(fallback float64, fractions ...float64) *ScriptedRoller {
	return &ScriptedRoller{
		fractions: fractions,
		fallback:  fallback,
	}
}

// LowRoller always rolls the lowest face, so every chance roll succeeds and
// every range roll lands on its minimum.
func LowRoller() *ScriptedRoller {
	return NewScriptedRoller(0)
}

// HighRoller always rolls the highest face, so any chance below 1 fails.
func HighRoller() *ScriptedRoller {
	return NewScriptedRoller(0.9999999999)
}

// Roll returns a face in [1, size].
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.fallback
	if r.calls < len(r.fractions) {
		f = r.fractions[r.calls]
	}
	r.calls++

	face := int(f*float64(size)) + 1
	if face > size {
		face = size
	}
	if face < 1 {
		face = 1
	}
	return face, nil
}

// RollN rolls count dice of the given size.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Calls returns how many dice were rolled.
func (r *ScriptedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
