package species

import "fmt"

// GrowthRates holds the per-level stat gains for one growth regime.
type GrowthRates struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}

// BaseStats holds the stats at the first level of a growth regime.
type BaseStats struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}

// SkillDef is one entry in a species' skill pool.
type SkillDef struct {
	Name string    `yaml:"name"`
	Tier SkillTier `yaml:"tier"`
}

// CritGrowth gives a species a level-scaling crit curve in its evolved stage.
// Species without a crit_growth block use the fixed engine defaults.
type CritGrowth struct {
	RatePerLevel   float64 `yaml:"rate_per_level"`
	DamagePerLevel float64 `yaml:"damage_per_level"`
}

// Definition is one species record: identity, growth regimes, evolution
// metadata, crit behavior, and skill pool.
//
// Precondition: after loading, ID, Element, and BaseName must be non-empty
// and Element must be a valid ElementType.
type Definition struct {
	ID      string      `yaml:"id"`
	Element ElementType `yaml:"element"`

	// BaseName and EvolvedName are the display names per stage.
	BaseName    string `yaml:"base_name"`
	EvolvedName string `yaml:"evolved_name"`

	// Base and Growth define the base-form regime: stats at level 1 plus
	// per-level gains.
	Base   BaseStats   `yaml:"base"`
	Growth GrowthRates `yaml:"growth"`

	// EvolveLevel is the dividing level between the two regimes.
	// 0 means the species cannot evolve.
	EvolveLevel int `yaml:"evolve_level"`

	// EvolvedBase is the stat block at exactly EvolveLevel in the evolved
	// regime; EvolvedGrowth applies per level beyond it.
	EvolvedBase   BaseStats   `yaml:"evolved_base"`
	EvolvedGrowth GrowthRates `yaml:"evolved_growth"`

	// CritGrowth, when present, scales crit rate/damage with level in the
	// evolved stage.
	CritGrowth *CritGrowth `yaml:"crit_growth,omitempty"`

	// OnCrit is the type-flavored side effect applied on critical hits.
	OnCrit EffectKind `yaml:"on_crit"`

	// Skills is the base-form draw pool; EvolvedSkills extends it after
	// evolution.
	Skills        []SkillDef `yaml:"skills"`
	EvolvedSkills []SkillDef `yaml:"evolved_skills,omitempty"`
}

// Validate checks the definition's structural invariants.
//
// Postcondition: Returns nil iff the definition is usable by the registry.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("species definition missing id")
	}
	if !d.Element.Valid() {
		return fmt.Errorf("species %q: unknown element %q", d.ID, d.Element)
	}
	if d.BaseName == "" {
		return fmt.Errorf("species %q: missing base_name", d.ID)
	}
	if d.EvolveLevel > 0 && d.EvolvedName == "" {
		return fmt.Errorf("species %q: evolve_level set but no evolved_name", d.ID)
	}
	if d.EvolveLevel < 0 {
		return fmt.Errorf("species %q: negative evolve_level", d.ID)
	}
	return nil
}

// CanEvolve reports whether this species has an evolved form.
func (d *Definition) CanEvolve() bool {
	return d.EvolveLevel > 0 && d.EvolvedName != ""
}

// DisplayName returns the name for the given stage.
// A base-stage request always succeeds; an evolved-stage request on a species
// without an evolved form falls back to the base name.
func (d *Definition) DisplayName(stage Stage) string {
	if stage == StageEvolved && d.EvolvedName != "" {
		return d.EvolvedName
	}
	return d.BaseName
}

// SkillPool returns the draw pool for the given stage: the base pool, plus
// the evolved extension once evolved.
//
// Postcondition: The returned slice is freshly allocated; callers may filter it.
func (d *Definition) SkillPool(stage Stage) []SkillDef {
	pool := make([]SkillDef, 0, len(d.Skills)+len(d.EvolvedSkills))
	pool = append(pool, d.Skills...)
	if stage == StageEvolved {
		pool = append(pool, d.EvolvedSkills...)
	}
	return pool
}
