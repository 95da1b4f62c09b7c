package pet

import (
	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// LevelUpResult reports what the level-up loop did.
type LevelUpResult struct {
	LevelsGained int
	NewSkills    []string
}

// GrantExp adds experience and resolves any resulting level-ups. The loop
// keeps crossing thresholds while Exp >= Level*ExpPerLevel, so one large
// grant can advance multiple levels. Every level divisible by 5 draws one new
// skill from the species pool, excluding skills already known; an exhausted
// pool grants nothing. Stats are rederived from the growth model afterwards.
//
// Precondition: reg and src must be non-nil; amount >= 0.
// Postcondition: Exp < ExpThreshold(); Level increased by LevelsGained.
func (p *Pet) GrantExp(reg *species.Registry, src dice.Source, amount int) LevelUpResult {
	p.Exp += amount

	var res LevelUpResult
	for p.Exp >= p.ExpThreshold() {
		p.Exp -= p.ExpThreshold()
		p.Level++
		res.LevelsGained++

		if p.Level%skillLevelInterval == 0 {
			if sk, ok := p.drawSkill(reg, src); ok {
				p.Skills = append(p.Skills, sk)
				res.NewSkills = append(res.NewSkills, sk)
			}
		}
	}

	if res.LevelsGained > 0 {
		p.RecomputeStats(reg)
	}
	return res
}

// drawSkill picks one unknown skill uniformly at random from the species pool
// for the current stage.
//
// Postcondition: Returns (skill, true) with a skill the pet does not yet
// know, or ("", false) when the pool is exhausted or the species is unknown.
func (p *Pet) drawSkill(reg *species.Registry, src dice.Source) (string, bool) {
	def, ok := reg.Get(p.SpeciesID)
	if !ok {
		return "", false
	}
	var candidates []string
	for _, sk := range def.SkillPool(p.Stage) {
		if !p.KnowsSkill(sk.Name) {
			candidates = append(candidates, sk.Name)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return dice.Pick(src, candidates), true
}
