// Package progression handles experience and coin accrual, with reward
// tables parameterized per battle context. Reward constants are balance
// knobs that vary between contexts, so they are data, not code.
package progression

import (
	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// Context identifies which kind of encounter produced a reward.
type Context string

const (
	ContextWild        Context = "wild"
	ContextDuel        Context = "duel"
	ContextExploration Context = "exploration"
)

// RewardTable scales rewards with the opponent's level for one context.
type RewardTable struct {
	// ExpPerLevel: exp reward = opponent level * ExpPerLevel.
	ExpPerLevel int
	// CoinsPerLevel: coin reward = opponent level * CoinsPerLevel.
	CoinsPerLevel int
	// ItemDropChance is the probability of an item pickup after a win.
	// Only exploration uses it today; zero disables drops.
	ItemDropChance float64
}

// Tables maps each battle context to its reward table.
type Tables map[Context]RewardTable

// DefaultTables returns the standard reward constants per context.
func DefaultTables() Tables {
	return Tables{
		ContextWild:        {ExpPerLevel: 20, CoinsPerLevel: 10},
		ContextDuel:        {ExpPerLevel: 30, CoinsPerLevel: 15},
		ContextExploration: {ExpPerLevel: 12, CoinsPerLevel: 8, ItemDropChance: 0.25},
	}
}

// Reward is a resolved exp/coin grant.
type Reward struct {
	Exp   int
	Coins int
}

// Engine grants rewards and drives the pet level-up loop.
type Engine struct {
	reg    *species.Registry
	tables Tables
}

// NewEngine creates a progression Engine. A nil tables map falls back to the
// defaults.
//
// Precondition: reg must be non-nil.
func NewEngine(reg *species.Registry, tables Tables) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Engine{reg: reg, tables: tables}
}

// RewardFor computes the reward for defeating an opponent of the given level
// in the given context. Unknown contexts reward nothing.
//
// Precondition: opponentLevel >= 1.
func (e *Engine) RewardFor(ctx Context, opponentLevel int) Reward {
	t, ok := e.tables[ctx]
	if !ok {
		return Reward{}
	}
	return Reward{
		Exp:   opponentLevel * t.ExpPerLevel,
		Coins: opponentLevel * t.CoinsPerLevel,
	}
}

// ShouldDropItem rolls the context's item-drop chance.
//
// Precondition: src must be non-nil.
func (e *Engine) ShouldDropItem(ctx Context, src dice.Source) bool {
	t, ok := e.tables[ctx]
	if !ok {
		return false
	}
	return dice.Chance(src, t.ItemDropChance)
}

// GrantExp adds experience to p and resolves level-ups, returning what the
// loop did.
//
// Precondition: p and src must be non-nil; amount >= 0.
func (e *Engine) GrantExp(p *pet.Pet, src dice.Source, amount int) pet.LevelUpResult {
	return p.GrantExp(e.reg, src, amount)
}

// GrantCoins adds coins to p. Coins have no upper bound.
//
// Precondition: p must be non-nil; amount >= 0.
func (e *Engine) GrantCoins(p *pet.Pet, amount int) {
	p.Coins += amount
}
