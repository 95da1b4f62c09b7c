package species

import (
	"fmt"
	"sort"
)

// Registry provides lookup of species definitions by ID and of skill tiers by
// skill name. It is populated once at startup and read-only afterwards.
type Registry struct {
	defs       map[string]*Definition
	skillTiers map[string]SkillTier
	chart      *TypeChart
}

// NewRegistry returns an empty Registry using the default type chart.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{
		defs:       make(map[string]*Definition),
		skillTiers: make(map[string]SkillTier),
		chart:      DefaultTypeChart(),
	}
}

// Register adds a Definition to the registry and indexes its skills.
//
// Precondition: def must pass Validate.
// Postcondition: def is retrievable via Get; registering the same ID twice
// replaces the earlier definition but keeps both skill indexes.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("Register: def must not be nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	r.defs[def.ID] = def
	for _, sk := range def.Skills {
		r.skillTiers[sk.Name] = sk.Tier
	}
	for _, sk := range def.EvolvedSkills {
		r.skillTiers[sk.Name] = sk.Tier
	}
	return nil
}

// Get returns the Definition for the given species ID.
//
// Postcondition: Returns (def, true) if registered, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// IDs returns all registered species IDs in sorted order.
//
// Postcondition: Returns a freshly allocated, sorted slice.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SkillMultiplier returns the damage multiplier for the named skill.
// Unrecognized skill names are neutral.
//
// Postcondition: Returns 1.2, 1.5, or 1.0; never fails.
func (r *Registry) SkillMultiplier(name string) float64 {
	if tier, ok := r.skillTiers[name]; ok {
		return tier.Multiplier()
	}
	return 1.0
}

// Chart returns the registry's type-advantage chart.
func (r *Registry) Chart() *TypeChart {
	return r.chart
}

// Advantage is a convenience passthrough to the registry's type chart.
//
// Postcondition: Returns 1.0 for unknown pairs; never fails.
func (r *Registry) Advantage(attacker, defender ElementType) float64 {
	return r.chart.Advantage(attacker, defender)
}
