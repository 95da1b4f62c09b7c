package pet

import (
	"fmt"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// EvolveResult reports the outcome of an evolution attempt.
type EvolveResult struct {
	// OK is false when a precondition failed; the pet is unchanged then.
	OK           bool
	Message      string
	NewName      string
	LearnedSkill string
}

// CanEvolve reports whether the pet meets the evolution requirements: still
// in its base stage, the species has an evolved form, and the level threshold
// is reached.
func (p *Pet) CanEvolve(reg *species.Registry) bool {
	if p.Stage != species.StageBase {
		return false
	}
	def, ok := reg.Get(p.SpeciesID)
	if !ok {
		return false
	}
	return def.CanEvolve() && p.Level >= def.EvolveLevel
}

// Evolve transitions the pet to its evolved stage. The transition is one-way:
// the evolved growth regime permanently replaces the base one, stats are
// rederived for the new tier, HP is restored to the new maximum, and one new
// skill is drawn from the enlarged pool if any remain.
//
// Precondition: reg and src must be non-nil.
// Postcondition: On OK, Stage == StageEvolved and HP == MaxHP; otherwise the
// pet is unchanged.
func (p *Pet) Evolve(reg *species.Registry, src dice.Source) EvolveResult {
	def, ok := reg.Get(p.SpeciesID)
	if !ok {
		return EvolveResult{Message: fmt.Sprintf("%s cannot evolve.", p.Name(reg))}
	}
	if p.Stage != species.StageBase || !def.CanEvolve() {
		return EvolveResult{Message: fmt.Sprintf("%s cannot evolve.", p.Name(reg))}
	}
	if p.Level < def.EvolveLevel {
		return EvolveResult{Message: fmt.Sprintf(
			"%s is not ready to evolve (needs level %d).", p.Name(reg), def.EvolveLevel)}
	}

	oldName := p.Name(reg)
	p.Stage = species.StageEvolved
	p.RecomputeStats(reg)
	p.HP = p.MaxHP

	res := EvolveResult{
		OK:      true,
		NewName: def.DisplayName(species.StageEvolved),
	}
	if sk, ok := p.drawSkill(reg, src); ok {
		p.Skills = append(p.Skills, sk)
		res.LearnedSkill = sk
	}

	res.Message = fmt.Sprintf("%s evolved into %s!", oldName, res.NewName)
	if res.LearnedSkill != "" {
		res.Message += fmt.Sprintf(" Learned %s!", res.LearnedSkill)
	}
	return res
}
