package pet

import (
	"fmt"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/species"
)

const (
	// trainMinHunger and trainMinMood are the resource floors below which
	// training is refused.
	trainMinHunger = 10
	trainMinMood   = 10

	trainHungerCost = 10
	trainMoodCost   = 5

	trainExpMin = 10
	trainExpMax = 30
)

// TrainResult reports the outcome of one training session.
type TrainResult struct {
	// OK is false when a precondition failed; the pet is unchanged then.
	OK           bool
	Message      string
	ExpGained    int
	LevelsGained int
	NewSkills    []string
}

// Train spends hunger and mood for a random amount of experience and runs the
// level-up loop. A pet that is too hungry or in too poor a mood refuses to
// train, mutating nothing.
//
// Precondition: reg and src must be non-nil.
// Postcondition: On OK, Hunger and Mood are reduced by the fixed costs
// (floored at 0), Exp < ExpThreshold(), and stats match the growth model.
func (p *Pet) Train(reg *species.Registry, src dice.Source) TrainResult {
	name := p.Name(reg)
	if p.Hunger <= trainMinHunger {
		return TrainResult{Message: fmt.Sprintf("%s is too hungry to train!", name)}
	}
	if p.Mood <= trainMinMood {
		return TrainResult{Message: fmt.Sprintf("%s is in no mood to train!", name)}
	}

	p.Hunger = clamp(p.Hunger-trainHungerCost, 0, MaxHunger)
	p.Mood = clamp(p.Mood-trainMoodCost, 0, MaxMood)

	gained := dice.Between(src, trainExpMin, trainExpMax)
	lvl := p.GrantExp(reg, src, gained)

	msg := fmt.Sprintf("%s trained hard and gained %d EXP!", name, gained)
	if lvl.LevelsGained > 0 {
		msg += fmt.Sprintf(" %s reached level %d!", name, p.Level)
	}
	for _, sk := range lvl.NewSkills {
		msg += fmt.Sprintf(" Learned %s!", sk)
	}
	return TrainResult{
		OK:           true,
		Message:      msg,
		ExpGained:    gained,
		LevelsGained: lvl.LevelsGained,
		NewSkills:    lvl.NewSkills,
	}
}
