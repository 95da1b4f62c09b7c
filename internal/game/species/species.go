// Package species defines the data-driven species model: elemental types,
// growth curves, crit curves, skill pools, and the type-advantage chart.
//
// All per-species behavior lives in Definition records loaded from YAML (or
// the built-in defaults), never in per-name conditionals, so new species and
// evolutions are additive.
package species

// ElementType is one of the closed set of elemental types.
type ElementType string

const (
	ElementFire     ElementType = "fire"
	ElementWater    ElementType = "water"
	ElementGrass    ElementType = "grass"
	ElementElectric ElementType = "electric"
	ElementNormal   ElementType = "normal"
)

// Elements lists every valid ElementType. Adoption draws uniformly from it.
var Elements = []ElementType{ElementFire, ElementWater, ElementGrass, ElementElectric, ElementNormal}

// Valid reports whether e is a member of the closed elemental set.
func (e ElementType) Valid() bool {
	for _, known := range Elements {
		if e == known {
			return true
		}
	}
	return false
}

// Stage is a pet's evolution stage. The stage is authoritative; display names
// are derived from (species, stage), never the other way around.
type Stage int

const (
	StageBase Stage = iota
	StageEvolved
)

// String returns "base" or "evolved".
func (s Stage) String() string {
	if s == StageEvolved {
		return "evolved"
	}
	return "base"
}

// Stats holds the derived combat stats for a species at a given level.
type Stats struct {
	MaxHP   int
	Attack  int
	Defense int
	Speed   int
}

// Crit holds the critical-hit parameters for a species at a given level.
type Crit struct {
	// Rate is the per-attack critical probability in [0, 1].
	Rate float64
	// Damage is the critical damage multiplier, e.g. 1.5.
	Damage float64
}

// SkillTier classifies a skill's damage multiplier.
type SkillTier string

const (
	TierMinor SkillTier = "minor" // x1.2
	TierMajor SkillTier = "major" // x1.5
)

// Multiplier returns the damage multiplier for the tier.
// Unknown tiers are neutral (1.0), matching the engine's treatment of
// unrecognized skill names.
func (t SkillTier) Multiplier() float64 {
	switch t {
	case TierMinor:
		return 1.2
	case TierMajor:
		return 1.5
	default:
		return 1.0
	}
}

// EffectKind names a type-specific on-crit side effect.
type EffectKind string

const (
	// EffectBurn deals damage-over-time to the target for a few rounds.
	EffectBurn EffectKind = "burn"
	// EffectLifeSteal heals the attacker for a share of the damage dealt.
	EffectLifeSteal EffectKind = "lifesteal"
	// EffectRegen heals the attacker a little each round for a few rounds.
	EffectRegen EffectKind = "regen"
	// EffectShred reduces the target's defense for a few rounds.
	EffectShred EffectKind = "shred"
	// EffectSmash adds flat bonus damage to the critical hit itself.
	EffectSmash EffectKind = "smash"
)
