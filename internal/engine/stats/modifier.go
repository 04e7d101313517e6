package stats

import "fmt"

// ModifierKind selects the pipeline tier a modifier is applied in.
type ModifierKind int

const (
	// Relative multiplies the scaled value by (1+m) before flat bonuses.
	Relative ModifierKind = iota
	// Additive adds m to the scaled value.
	Additive
	// Multiplicative multiplies by (1+m) after flat bonuses.
	Multiplicative
	// Absolute adds m after everything else.
	Absolute
)

// Infinite marks a modifier that never expires.
const Infinite = -1

func (k ModifierKind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("ModifierKind(%d)", int(k))
	}
}

// ParseModifierKind is the inverse of String.
func ParseModifierKind(s string) (ModifierKind, bool) {
	switch s {
	case "relative":
		return Relative, true
	case "additive":
		return Additive, true
	case "multiplicative":
		return Multiplicative, true
	case "absolute":
		return Absolute, true
	}
	return 0, false
}

// Modifier is a single stacked change to a stat or pool.
type Modifier struct {
	Kind      ModifierKind
	Magnitude float64
	Source    string
	Duration  int
}

// Expired reports whether a finite modifier has run out.
func (m Modifier) Expired() bool {
	return m.Duration != Infinite && m.Duration <= 0
}

// Combine folds mods into value in the fixed tier order: every Relative
// multiplies, then the Additive sum, then every Multiplicative multiplies,
// then the Absolute sum. Within a tier list order is preserved.
func Combine(value float64, mods []Modifier) float64 {
	for _, m := range mods {
		if m.Kind == Relative {
			value *= 1 + m.Magnitude
		}
	}

	var additive float64
	for _, m := range mods {
		if m.Kind == Additive {
			additive += m.Magnitude
		}
	}
	value += additive

	for _, m := range mods {
		if m.Kind == Multiplicative {
			value *= 1 + m.Magnitude
		}
	}

	var absolute float64
	for _, m := range mods {
		if m.Kind == Absolute {
			absolute += m.Magnitude
		}
	}
	return value + absolute
}
