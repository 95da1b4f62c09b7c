// Package pet defines the pet aggregate and its lifecycle operations:
// status decay, training, feeding, healing, level progression, and evolution.
//
// Combat stats are always derived from (species, level, stage) through the
// species growth model; nothing in this package hand-edits a stat outside
// RecomputeStats.
package pet

import (
	"time"

	"github.com/tinyxi/pethatch/internal/game/species"
)

const (
	// MaxHunger and MaxMood bound the well-being resources.
	MaxHunger = 100
	MaxMood   = 100

	// ExpPerLevel scales the experience required for the next level:
	// threshold = level * ExpPerLevel.
	ExpPerLevel = 100

	// BattleCooldown is the minimum wall-clock gap between PVP battles.
	BattleCooldown = 30 * time.Minute

	// skillLevelInterval is the level cadence for new skill draws.
	skillLevelInterval = 5

	startingHunger = 50
	startingMood   = 50
	startingCoins  = 50
)

// Pet is one user's pet: identity, progression, derived combat stats,
// well-being resources, and combat metadata.
//
// Invariants: 0 <= HP <= MaxHP; Level >= 1; Exp < Level*ExpPerLevel after any
// level-up resolution; Hunger and Mood in [0, 100]; Coins >= 0.
type Pet struct {
	// Nickname is the owner-chosen name; empty means the species display
	// name is used.
	Nickname  string
	SpeciesID string
	Stage     species.Stage
	// Owner is the owner's display name, informational only.
	Owner string

	Level  int
	Exp    int
	Skills []string // unlock order preserved

	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Speed   int

	CritRate   float64
	CritDamage float64

	Hunger int
	Mood   int
	Coins  int

	// AutoHealThreshold is the HP floor below which the pet spends its
	// battle turn on a healing item. 0 disables auto-healing.
	AutoHealThreshold int

	LastBattleTime time.Time
	LastUpdated    time.Time
	CreatedAt      time.Time
}

// New creates a freshly adopted pet of the given species at level 1 with full
// HP and base stats.
//
// Precondition: def must be registered in reg; now is the adoption time.
// Postcondition: Returned pet satisfies all Pet invariants; HP == MaxHP.
func New(reg *species.Registry, speciesID, nickname, owner string, now time.Time) (*Pet, bool) {
	if _, ok := reg.Get(speciesID); !ok {
		return nil, false
	}
	p := &Pet{
		Nickname:    nickname,
		SpeciesID:   speciesID,
		Stage:       species.StageBase,
		Owner:       owner,
		Level:       1,
		Hunger:      startingHunger,
		Mood:        startingMood,
		Coins:       startingCoins,
		LastUpdated: now,
		CreatedAt:   now,
	}
	p.RecomputeStats(reg)
	p.HP = p.MaxHP
	return p, true
}

// Name returns the pet's display name: the nickname if set, otherwise the
// species name for the current stage. Unknown species fall back to the raw
// species ID rather than failing.
func (p *Pet) Name(reg *species.Registry) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if def, ok := reg.Get(p.SpeciesID); ok {
		return def.DisplayName(p.Stage)
	}
	return p.SpeciesID
}

// Element returns the pet's elemental type, or ElementNormal if the species
// is unknown.
func (p *Pet) Element(reg *species.Registry) species.ElementType {
	if def, ok := reg.Get(p.SpeciesID); ok {
		return def.Element
	}
	return species.ElementNormal
}

// RecomputeStats rederives MaxHP/Attack/Defense/Speed and the crit parameters
// from (species, level, stage). Current HP is preserved, clamped to the new
// maximum. An unknown species leaves the previous stats untouched.
//
// Postcondition: HP <= MaxHP.
func (p *Pet) RecomputeStats(reg *species.Registry) {
	def, ok := reg.Get(p.SpeciesID)
	if !ok {
		return
	}
	stats := def.StatsAt(p.Level, p.Stage)
	crit := def.CritAt(p.Level, p.Stage)
	p.MaxHP = stats.MaxHP
	p.Attack = stats.Attack
	p.Defense = stats.Defense
	p.Speed = stats.Speed
	p.CritRate = crit.Rate
	p.CritDamage = crit.Damage
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
}

// IsAlive reports whether the pet can act.
func (p *Pet) IsAlive() bool {
	return p.HP > 0
}

// ExpThreshold returns the experience required to leave the current level.
func (p *Pet) ExpThreshold() int {
	return p.Level * ExpPerLevel
}

// KnowsSkill reports whether the pet has already unlocked the named skill.
func (p *Pet) KnowsSkill(name string) bool {
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// IsBattleAvailable reports whether the PVP cooldown has elapsed.
//
// Postcondition: Returns true iff now - LastBattleTime >= BattleCooldown.
func (p *Pet) IsBattleAvailable(now time.Time) bool {
	return now.Sub(p.LastBattleTime) >= BattleCooldown
}

// TouchBattleTime records now as the start of the PVP cooldown window.
//
// Postcondition: IsBattleAvailable(now) is false.
func (p *Pet) TouchBattleTime(now time.Time) {
	p.LastBattleTime = now
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
