// Package battle implements the turn-based combat resolver.
//
// A battle runs entirely in memory on two pet snapshots: initiative, a
// strictly alternating round loop with auto-healing, skill procs, the damage
// pipeline, and terminal-state detection. The resolver performs no I/O and
// never touches persistence; it mutates both pets' HP in place and returns a
// structured result with an ordered battle log.
package battle

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tinyxi/pethatch/internal/game/effect"
	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/game/pet"
)

// ErrNotAlive is returned when a battle is requested with a fallen pet.
// Callers must heal or refuse before invoking the resolver.
var ErrNotAlive = errors.New("battle requires both pets to be alive")

const (
	// DefaultMaxRounds caps the round loop. The cap guards against stall
	// states where healing outpaces damage; reaching it ends the battle
	// in a draw.
	DefaultMaxRounds = 100

	// DefaultSkillProcChance is the per-attack probability of using a
	// known skill instead of a plain attack.
	DefaultSkillProcChance = 0.30
)

// Config tunes the resolver. Zero values select the defaults.
type Config struct {
	MaxRounds       int
	SkillProcChance float64
}

func (c Config) maxRounds() int {
	if c.MaxRounds > 0 {
		return c.MaxRounds
	}
	return DefaultMaxRounds
}

func (c Config) skillProcChance() float64 {
	if c.SkillProcChance > 0 {
		return c.SkillProcChance
	}
	return DefaultSkillProcChance
}

// Combatant is one side of a battle: a pet plus the healing consumables its
// owner brought. Items are consumed front-to-back by the auto-heal policy;
// the resolver records what was used so the caller can persist the
// consumption.
type Combatant struct {
	Pet *pet.Pet
	// Items holds the healing consumables available for auto-healing.
	Items []item.Consumable

	name    string
	effects *effect.Set
	used    []string
}

// Outcome is the battle result from the first combatant's perspective.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

// String returns "win", "loss", or "draw".
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeDraw:
		return "draw"
	}
	return "unknown"
}

// Event is one entry in the ordered battle log.
type Event struct {
	// Round is the round number, starting at 1. Initiative events use 0.
	Round int
	// Actor is the display name of the acting side, empty for neutral
	// events (round ticks, terminal notices).
	Actor string
	// Text is the human-readable narrative line.
	Text string
	// Damage is the HP removed by this event, 0 for non-damage events.
	Damage int
	// Skill is the skill name when a skill proc occurred.
	Skill string
	// Crit is true when the attack was a critical hit.
	Crit bool
	// ItemUsed is the item name when the turn was spent on an item.
	ItemUsed string
}

// Result is the structured outcome of one resolved battle.
type Result struct {
	// ID correlates the battle log with reward persistence.
	ID      uuid.UUID
	Outcome Outcome
	// Rounds is the number of rounds that started.
	Rounds int
	Log    []Event
	// ItemsUsedByA and ItemsUsedByB list consumed item names in use order,
	// for the caller to charge against inventories.
	ItemsUsedByA []string
	ItemsUsedByB []string
}
