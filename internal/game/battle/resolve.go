package battle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/effect"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// Resolve runs a full battle between a and b.
//
// State machine: Init -> Initiative -> RoundLoop -> Terminal. Initiative goes
// to the higher speed; an exact tie is decided by an explicit coin flip,
// never by silently favoring one side. Turns then alternate strictly; an
// actor at or below its auto-heal threshold spends its turn consuming a
// healing item instead of attacking. Timed effects tick exactly once per
// full round. Reaching the round cap ends the battle in a draw.
//
// Precondition: reg, a, b, and src must be non-nil; both pets must be alive.
// Postcondition: Both pets' HP are updated in place; the returned Result
// carries the ordered log and the items each side consumed.
func Resolve(reg *species.Registry, a, b *Combatant, src dice.Source, cfg Config) (*Result, error) {
	if a == nil || b == nil || !a.Pet.IsAlive() || !b.Pet.IsAlive() {
		return nil, ErrNotAlive
	}

	a.name = a.Pet.Name(reg)
	b.name = b.Pet.Name(reg)
	a.effects = effect.NewSet()
	b.effects = effect.NewSet()
	a.used = nil
	b.used = nil

	res := &Result{ID: uuid.New()}

	first, second := rollInitiative(a, b, src)
	res.Log = append(res.Log, Event{
		Round: 0,
		Actor: first.name,
		Text:  fmt.Sprintf("%s moves first (speed %d vs %d).", first.name, first.Pet.Speed, second.Pet.Speed),
	})

	for round := 1; round <= cfg.maxRounds(); round++ {
		res.Rounds = round

		if done := takeTurn(reg, first, second, src, cfg, round, res); done {
			break
		}
		if done := takeTurn(reg, second, first, src, cfg, round, res); done {
			break
		}

		// Full round completed with both sides standing: resolve timed
		// effects, then decrement their durations exactly once.
		if done := applyRoundEffects(first, second, round, res); done {
			break
		}
		first.effects.Tick()
		second.effects.Tick()
	}

	switch {
	case a.Pet.IsAlive() && !b.Pet.IsAlive():
		res.Outcome = OutcomeWin
		res.Log = append(res.Log, Event{Round: res.Rounds, Text: fmt.Sprintf("%s is victorious!", a.name)})
	case b.Pet.IsAlive() && !a.Pet.IsAlive():
		res.Outcome = OutcomeLoss
		res.Log = append(res.Log, Event{Round: res.Rounds, Text: fmt.Sprintf("%s is victorious!", b.name)})
	default:
		res.Outcome = OutcomeDraw
		res.Log = append(res.Log, Event{Round: res.Rounds, Text: "Both pets are exhausted. The battle is a draw."})
	}

	res.ItemsUsedByA = a.used
	res.ItemsUsedByB = b.used
	return res, nil
}

// rollInitiative orders the combatants by speed. On an exact tie the order is
// decided by a fair coin flip; the speed-biased variant was considered and
// rejected to keep the rule auditable (see DESIGN.md).
func rollInitiative(a, b *Combatant, src dice.Source) (first, second *Combatant) {
	switch {
	case a.Pet.Speed > b.Pet.Speed:
		return a, b
	case b.Pet.Speed > a.Pet.Speed:
		return b, a
	default:
		if dice.CoinFlip(src) {
			return a, b
		}
		return b, a
	}
}

// takeTurn resolves one combatant's turn: auto-heal first, otherwise an
// attack through the damage pipeline. Returns true when the battle reached a
// terminal state (target fell).
func takeTurn(reg *species.Registry, actor, target *Combatant, src dice.Source, cfg Config, round int, res *Result) bool {
	if ev, healed := tryAutoHeal(actor, round); healed {
		res.Log = append(res.Log, ev)
		return false
	}

	ev := resolveAttack(reg, actor, target, src, cfg, round)
	res.Log = append(res.Log, ev)

	if !target.Pet.IsAlive() {
		res.Log = append(res.Log, Event{
			Round: round,
			Text:  fmt.Sprintf("%s has fallen!", target.name),
		})
		return true
	}
	return false
}

// tryAutoHeal consumes the first healing item when the actor's HP is at or
// below its configured threshold. The item use costs the turn.
func tryAutoHeal(actor *Combatant, round int) (Event, bool) {
	p := actor.Pet
	if p.AutoHealThreshold <= 0 || p.HP > p.AutoHealThreshold {
		return Event{}, false
	}
	for i, it := range actor.Items {
		if !it.IsHealing() {
			continue
		}
		actor.Items = append(actor.Items[:i], actor.Items[i+1:]...)
		actor.used = append(actor.used, it.Name)

		restored := it.Effect.HP
		if p.HP+restored > p.MaxHP {
			restored = p.MaxHP - p.HP
		}
		p.HP += restored
		return Event{
			Round:    round,
			Actor:    actor.name,
			Text:     fmt.Sprintf("%s gulps down a %s and recovers %d HP!", actor.name, it.Name, restored),
			ItemUsed: it.Name,
		}, true
	}
	return Event{}, false
}

// applyRoundEffects applies burn damage and regen healing at the end of a
// full round. Burn can end the battle; the check runs after both sides'
// effects resolve. Returns true on a terminal state.
func applyRoundEffects(first, second *Combatant, round int, res *Result) bool {
	for _, c := range []*Combatant{first, second} {
		if burn := c.effects.Magnitude(species.EffectBurn); burn > 0 && c.Pet.IsAlive() {
			c.Pet.HP -= burn
			if c.Pet.HP < 0 {
				c.Pet.HP = 0
			}
			res.Log = append(res.Log, Event{
				Round:  round,
				Actor:  c.name,
				Text:   fmt.Sprintf("%s is seared by burning flames for %d damage.", c.name, burn),
				Damage: burn,
			})
		}
		if regen := c.effects.Magnitude(species.EffectRegen); regen > 0 && c.Pet.IsAlive() {
			healed := regen
			if c.Pet.HP+healed > c.Pet.MaxHP {
				healed = c.Pet.MaxHP - c.Pet.HP
			}
			c.Pet.HP += healed
			if healed > 0 {
				res.Log = append(res.Log, Event{
					Round: round,
					Actor: c.name,
					Text:  fmt.Sprintf("%s regenerates %d HP.", c.name, healed),
				})
			}
		}
	}

	if !first.Pet.IsAlive() || !second.Pet.IsAlive() {
		fallen := first
		if !second.Pet.IsAlive() {
			fallen = second
		}
		res.Log = append(res.Log, Event{
			Round: round,
			Text:  fmt.Sprintf("%s has fallen!", fallen.name),
		})
		return true
	}
	return false
}
