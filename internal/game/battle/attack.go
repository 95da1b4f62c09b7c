package battle

import (
	"fmt"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/species"
)

const (
	// defenseFactor is the share of the defender's effective defense
	// subtracted from raw damage. Canonical formula:
	//   raw = attack*skillMult - defense*0.3, floored at 1.
	// The legacy attack - defense/2 variant is intentionally not
	// implemented anywhere.
	defenseFactor = 0.3

	// critCapFactor bounds a critical hit at this multiple of the
	// pre-crit damage.
	critCapFactor = 3.0

	// Effect tuning for on-crit side effects.
	burnRounds     = 2
	regenRounds    = 2
	shredRounds    = 2
	lifeStealShare = 4  // attacker heals damage/lifeStealShare
	burnShare      = 5  // burn magnitude is damage/burnShare, min 1
	regenShare     = 20 // regen magnitude is maxHP/regenShare, min 1
	shredShare     = 5  // shred magnitude is defense/shredShare, min 1
	smashBonusFlat = 5
)

// resolveAttack runs one attack through the damage pipeline: skill proc,
// raw damage, type advantage, critical hit with type-flavored side effect,
// and HP subtraction. Each probabilistic step draws src independently.
//
// Postcondition: target HP is reduced by at least 1, floored at 0.
func resolveAttack(reg *species.Registry, actor, target *Combatant, src dice.Source, cfg Config, round int) Event {
	ap, tp := actor.Pet, target.Pet

	// Skill proc roll.
	skillMult := 1.0
	skillName := ""
	if len(ap.Skills) > 0 && dice.Chance(src, cfg.skillProcChance()) {
		skillName = dice.Pick(src, ap.Skills)
		skillMult = reg.SkillMultiplier(skillName)
	}

	// Raw damage against shredded defense.
	def := float64(tp.Defense - target.effects.Magnitude(species.EffectShred))
	if def < 0 {
		def = 0
	}
	raw := float64(ap.Attack)*skillMult - def*defenseFactor
	if raw < 1 {
		raw = 1
	}

	// Type advantage.
	dmg := raw * reg.Advantage(ap.Element(reg), tp.Element(reg))

	// Critical hit, capped relative to the pre-crit damage.
	crit := dice.Chance(src, ap.CritRate)
	var sideNote string
	if crit {
		preCrit := dmg
		dmg *= ap.CritDamage
		if dmg > preCrit*critCapFactor {
			dmg = preCrit * critCapFactor
		}
		dmg, sideNote = applyCritEffect(reg, actor, target, dmg)
	}

	final := int(dmg)
	if final < 1 {
		final = 1
	}
	tp.HP -= final
	if tp.HP < 0 {
		tp.HP = 0
	}

	text := fmt.Sprintf("%s attacks %s for %d damage", actor.name, target.name, final)
	if skillName != "" {
		text = fmt.Sprintf("%s uses %s on %s for %d damage", actor.name, skillName, target.name, final)
	}
	if crit {
		text += ", a critical hit"
	}
	text += "!"
	if sideNote != "" {
		text += " " + sideNote
	}

	return Event{
		Round:  round,
		Actor:  actor.name,
		Text:   text,
		Damage: final,
		Skill:  skillName,
		Crit:   crit,
	}
}

// applyCritEffect applies the attacker's species on-crit side effect.
// Instant effects (life steal, smash) resolve immediately; timed effects
// (burn, regen, shred) are registered on the relevant Set and tick once per
// full round. Returns the possibly adjusted damage and a narrative note.
func applyCritEffect(reg *species.Registry, actor, target *Combatant, dmg float64) (float64, string) {
	def, ok := reg.Get(actor.Pet.SpeciesID)
	if !ok {
		return dmg, ""
	}
	switch def.OnCrit {
	case species.EffectBurn:
		magnitude := int(dmg) / burnShare
		if magnitude < 1 {
			magnitude = 1
		}
		target.effects.Apply(species.EffectBurn, magnitude, burnRounds)
		return dmg, fmt.Sprintf("%s catches fire!", target.name)

	case species.EffectLifeSteal:
		healed := int(dmg) / lifeStealShare
		if actor.Pet.HP+healed > actor.Pet.MaxHP {
			healed = actor.Pet.MaxHP - actor.Pet.HP
		}
		actor.Pet.HP += healed
		if healed > 0 {
			return dmg, fmt.Sprintf("%s drains %d HP!", actor.name, healed)
		}
		return dmg, ""

	case species.EffectRegen:
		magnitude := actor.Pet.MaxHP / regenShare
		if magnitude < 1 {
			magnitude = 1
		}
		actor.effects.Apply(species.EffectRegen, magnitude, regenRounds)
		return dmg, fmt.Sprintf("%s is wreathed in restorative growth!", actor.name)

	case species.EffectShred:
		magnitude := target.Pet.Defense / shredShare
		if magnitude < 1 {
			magnitude = 1
		}
		target.effects.Apply(species.EffectShred, magnitude, shredRounds)
		return dmg, fmt.Sprintf("%s's defense is shredded!", target.name)

	case species.EffectSmash:
		return dmg + smashBonusFlat, fmt.Sprintf("%s smashes through!", actor.name)
	}
	return dmg, ""
}
