package pet

import (
	"fmt"

	"github.com/tinyxi/pethatch/internal/game/species"
)

const (
	// reviveHungerFloor and reviveMoodFloor guarantee a revived pet is
	// immediately viable for care actions.
	reviveHungerFloor = 20
	reviveMoodFloor   = 30

	healHungerRestore = 30
	healMoodRestore   = 20
)

// HealResult reports the outcome of a heal.
type HealResult struct {
	Revived    bool
	HPRestored int
	Message    string
}

// Heal restores the pet. A fallen pet revives at half its maximum HP with
// hunger and mood floored to viable values; a living pet is restored to full
// HP with partial hunger and mood recovery.
//
// Precondition: reg must be non-nil (for the display name only).
// Postcondition: HP > 0; Hunger and Mood within [0, 100].
func (p *Pet) Heal(reg *species.Registry) HealResult {
	name := p.Name(reg)
	if p.HP <= 0 {
		p.HP = p.MaxHP / 2
		if p.HP < 1 {
			p.HP = 1
		}
		if p.Hunger < reviveHungerFloor {
			p.Hunger = reviveHungerFloor
		}
		if p.Mood < reviveMoodFloor {
			p.Mood = reviveMoodFloor
		}
		return HealResult{
			Revived:    true,
			HPRestored: p.HP,
			Message:    fmt.Sprintf("%s was revived with %d HP!", name, p.HP),
		}
	}

	restored := p.MaxHP - p.HP
	p.HP = p.MaxHP
	p.Hunger = clamp(p.Hunger+healHungerRestore, 0, MaxHunger)
	p.Mood = clamp(p.Mood+healMoodRestore, 0, MaxMood)
	return HealResult{
		HPRestored: restored,
		Message:    fmt.Sprintf("%s recovered %d HP and is feeling better!", name, restored),
	}
}
