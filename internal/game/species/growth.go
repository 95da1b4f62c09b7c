package species

const (
	// baseCritRate and baseCritDamage are the fixed crit parameters for
	// species without a crit_growth block.
	baseCritRate   = 0.05
	baseCritDamage = 1.5

	// maxCritRate and maxCritDamage cap level-scaled crit curves.
	maxCritRate   = 0.25
	maxCritDamage = 2.5
)

// StatsAt derives the stat block for this species at the given level and stage.
// Deterministic, pure function of its inputs.
//
// Base regime: base + (level-1) * growth.
// Evolved regime: evolvedBase + (level - evolveLevel) * evolvedGrowth; a level
// below the dividing level (only possible with inconsistent persisted data)
// clamps to the evolved base block.
//
// Precondition: level >= 1.
// Postcondition: All returned stats are >= 1.
func (d *Definition) StatsAt(level int, stage Stage) Stats {
	if level < 1 {
		level = 1
	}

	var s Stats
	if stage == StageEvolved && d.CanEvolve() {
		steps := level - d.EvolveLevel
		if steps < 0 {
			steps = 0
		}
		s = Stats{
			MaxHP:   d.EvolvedBase.HP + steps*d.EvolvedGrowth.HP,
			Attack:  d.EvolvedBase.Attack + steps*d.EvolvedGrowth.Attack,
			Defense: d.EvolvedBase.Defense + steps*d.EvolvedGrowth.Defense,
			Speed:   d.EvolvedBase.Speed + steps*d.EvolvedGrowth.Speed,
		}
	} else {
		steps := level - 1
		s = Stats{
			MaxHP:   d.Base.HP + steps*d.Growth.HP,
			Attack:  d.Base.Attack + steps*d.Growth.Attack,
			Defense: d.Base.Defense + steps*d.Growth.Defense,
			Speed:   d.Base.Speed + steps*d.Growth.Speed,
		}
	}

	if s.MaxHP < 1 {
		s.MaxHP = 1
	}
	if s.Attack < 1 {
		s.Attack = 1
	}
	if s.Defense < 1 {
		s.Defense = 1
	}
	if s.Speed < 1 {
		s.Speed = 1
	}
	return s
}

// CritAt derives the crit parameters for this species at the given level and
// stage. Species without a crit_growth block always return the fixed base
// values; those with one scale per level in the evolved stage, capped.
//
// Precondition: level >= 1.
// Postcondition: 0 < Rate <= maxCritRate; baseCritDamage <= Damage <= maxCritDamage.
func (d *Definition) CritAt(level int, stage Stage) Crit {
	c := Crit{Rate: baseCritRate, Damage: baseCritDamage}
	if stage != StageEvolved || d.CritGrowth == nil {
		return c
	}
	if level < 1 {
		level = 1
	}
	c.Rate += d.CritGrowth.RatePerLevel * float64(level)
	c.Damage += d.CritGrowth.DamagePerLevel * float64(level)
	if c.Rate > maxCritRate {
		c.Rate = maxCritRate
	}
	if c.Damage > maxCritDamage {
		c.Damage = maxCritDamage
	}
	return c
}
