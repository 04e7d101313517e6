// Package stats computes effective character attributes from a level-scaled
// base value and stacked modifiers.
package stats

// MaxLevel caps level scaling.
const MaxLevel = 50

// tiers holds the growth multiplier applied per level step, indexed by
// decade of the level being left (1-9, 10-19, 20-29, 30-39, 40-49).
var tiers = [...]int{1, 2, 3, 5, 9}

// Scale returns base grown to level along the per-decade curve.
func Scale(base, growth float64, level int) float64 {
	if level > MaxLevel {
		level = MaxLevel
	}

	weight := 0
	for l := 1; l < level; l++ {
		weight += tiers[l/10]
	}
	return base + growth*float64(weight)
}

// Source exposes modifiers that live outside a stat, such as those granted by
// passive effects on the stat's owner.
type Source interface {
	Modifiers(name Name) []Modifier
}

// Stat is a named attribute with level growth and its own modifier list.
// Its value is recomputed on every read.
type Stat struct {
	Name      Name
	Base      float64
	Growth    float64
	modifiers []Modifier
}

// New creates a stat without modifiers.
func New(name Name, base, growth float64) *Stat {
	return &Stat{Name: name, Base: base, Growth: growth}
}

// AddModifier appends m to the stat's own list.
func (s *Stat) AddModifier(m Modifier) {
	s.modifiers = append(s.modifiers, m)
}

// RemoveSource drops every own modifier created by source and returns how
// many were removed.
func (s *Stat) RemoveSource(source string) int {
	kept := s.modifiers[:0]
	removed := 0
	for _, m := range s.modifiers {
		if m.Source == source {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.modifiers = kept
	return removed
}

// Modifiers returns a copy of the stat's own modifiers.
func (s *Stat) Modifiers() []Modifier {
	out := make([]Modifier, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

// Scaled returns the level-scaled base value without modifiers.
func (s *Stat) Scaled(level int) float64 {
	return Scale(s.Base, s.Growth, level)
}

// Value returns the effective value at level. Own modifiers come first,
// followed by those src exposes for the stat and for each of its family pools.
func (s *Stat) Value(level int, src Source) float64 {
	mods := s.Modifiers()
	if src != nil {
		mods = append(mods, src.Modifiers(s.Name)...)
		for _, pool := range Families(s.Name) {
			mods = append(mods, src.Modifiers(pool)...)
		}
	}
	return Combine(s.Scaled(level), mods)
}

// Tick advances every finite modifier by one turn and prunes expired ones.
func (s *Stat) Tick() {
	kept := s.modifiers[:0]
	for _, m := range s.modifiers {
		if m.Duration != Infinite {
			m.Duration--
		}
		if m.Expired() {
			continue
		}
		kept = append(kept, m)
	}
	s.modifiers = kept
}

// Pool evaluates a modifier pool that has no stat of its own, starting from
// base.
func Pool(name Name, base float64, src Source) float64 {
	if src == nil {
		return base
	}
	mods := src.Modifiers(name)
	for _, pool := range Families(name) {
		mods = append(mods, src.Modifiers(pool)...)
	}
	return Combine(base, mods)
}
