package pet

import (
	"fmt"
	"strings"

	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// FeedResult reports the outcome of feeding one consumable.
type FeedResult struct {
	Message      string
	HungerGained int
	MoodGained   int
	HPGained     int
}

// Feed applies one unit of a consumable's effect, capping each resource at
// its maximum. Consuming the unit from the owner's inventory is the caller's
// responsibility; this method only mutates the pet.
//
// Precondition: reg must be non-nil.
// Postcondition: Hunger, Mood in [0, 100]; HP <= MaxHP.
func (p *Pet) Feed(reg *species.Registry, c item.Consumable) FeedResult {
	beforeHunger, beforeMood, beforeHP := p.Hunger, p.Mood, p.HP

	p.Hunger = clamp(p.Hunger+c.Effect.Hunger, 0, MaxHunger)
	p.Mood = clamp(p.Mood+c.Effect.Mood, 0, MaxMood)
	p.HP = clamp(p.HP+c.Effect.HP, 0, p.MaxHP)

	res := FeedResult{
		HungerGained: p.Hunger - beforeHunger,
		MoodGained:   p.Mood - beforeMood,
		HPGained:     p.HP - beforeHP,
	}

	var parts []string
	if res.HungerGained > 0 {
		parts = append(parts, fmt.Sprintf("+%d hunger", res.HungerGained))
	}
	if res.MoodGained > 0 {
		parts = append(parts, fmt.Sprintf("+%d mood", res.MoodGained))
	}
	if res.HPGained > 0 {
		parts = append(parts, fmt.Sprintf("+%d HP", res.HPGained))
	}
	if len(parts) == 0 {
		res.Message = fmt.Sprintf("%s nibbles the %s but nothing happens.", p.Name(reg), c.Name)
	} else {
		res.Message = fmt.Sprintf("%s enjoyed the %s (%s).", p.Name(reg), c.Name, strings.Join(parts, ", "))
	}
	return res
}
