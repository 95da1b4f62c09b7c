// Package effect tracks timed combat side effects (burn, regen, defense
// shred) applied to one battler. Effects are battle-scoped: a Set lives for
// one battle and is discarded with it.
package effect

import "github.com/tinyxi/pethatch/internal/game/species"

// Active tracks one applied effect.
type Active struct {
	Kind            species.EffectKind
	Magnitude       int
	RoundsRemaining int
}

// Set tracks all effects currently applied to one battler.
// It is not safe for concurrent use; the battle resolver serialises access.
type Set struct {
	effects map[species.EffectKind]*Active
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{effects: make(map[species.EffectKind]*Active)}
}

// Apply adds or refreshes an effect. Re-applying keeps the larger magnitude
// and the longer remaining duration.
//
// Precondition: rounds >= 1; magnitude >= 0.
// Postcondition: Has(kind) is true.
func (s *Set) Apply(kind species.EffectKind, magnitude, rounds int) {
	if existing, ok := s.effects[kind]; ok {
		if magnitude > existing.Magnitude {
			existing.Magnitude = magnitude
		}
		if rounds > existing.RoundsRemaining {
			existing.RoundsRemaining = rounds
		}
		return
	}
	s.effects[kind] = &Active{Kind: kind, Magnitude: magnitude, RoundsRemaining: rounds}
}

// Has reports whether the effect is active.
func (s *Set) Has(kind species.EffectKind) bool {
	_, ok := s.effects[kind]
	return ok
}

// Magnitude returns the active magnitude for kind, or 0 when absent.
func (s *Set) Magnitude(kind species.EffectKind) int {
	if e, ok := s.effects[kind]; ok {
		return e.Magnitude
	}
	return 0
}

// Tick decrements every effect's remaining duration by one round and removes
// the ones that expire. Called exactly once per full battle round.
//
// Postcondition: For every kind in the returned slice, Has(kind) is false.
func (s *Set) Tick() []species.EffectKind {
	var expired []species.EffectKind
	for kind, e := range s.effects {
		e.RoundsRemaining--
		if e.RoundsRemaining <= 0 {
			expired = append(expired, kind)
			delete(s.effects, kind)
		}
	}
	return expired
}
