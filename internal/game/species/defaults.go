package species

// defaultDefinitions returns the built-in species set, one per element.
// content/species YAML files override these at startup; the built-ins exist so
// a missing or malformed content directory never leaves the game unplayable.
func defaultDefinitions() []*Definition {
	return []*Definition{
		{
			ID:            "embercub",
			Element:       ElementFire,
			BaseName:      "Embercub",
			EvolvedName:   "Blazelion",
			Base:          BaseStats{HP: 40, Attack: 16, Defense: 5, Speed: 11},
			Growth:        GrowthRates{HP: 12, Attack: 5, Defense: 2, Speed: 3},
			EvolveLevel:   30,
			EvolvedBase:   BaseStats{HP: 430, Attack: 180, Defense: 70, Speed: 105},
			EvolvedGrowth: GrowthRates{HP: 16, Attack: 7, Defense: 3, Speed: 4},
			OnCrit:        EffectBurn,
			Skills: []SkillDef{
				{Name: "Scorch", Tier: TierMinor},
				{Name: "Fireball", Tier: TierMinor},
				{Name: "Flame Burst", Tier: TierMinor},
				{Name: "Wall of Fire", Tier: TierMajor},
				{Name: "Magma Surge", Tier: TierMajor},
			},
			EvolvedSkills: []SkillDef{
				{Name: "Inferno Crash", Tier: TierMajor},
			},
		},
		{
			ID:            "drizzfin",
			Element:       ElementWater,
			BaseName:      "Drizzfin",
			EvolvedName:   "Tidelurker",
			Base:          BaseStats{HP: 48, Attack: 12, Defense: 8, Speed: 9},
			Growth:        GrowthRates{HP: 14, Attack: 4, Defense: 3, Speed: 2},
			EvolveLevel:   30,
			EvolvedBase:   BaseStats{HP: 500, Attack: 140, Defense: 105, Speed: 72},
			EvolvedGrowth: GrowthRates{HP: 18, Attack: 5, Defense: 4, Speed: 3},
			OnCrit:        EffectLifeSteal,
			Skills: []SkillDef{
				{Name: "Water Jet", Tier: TierMinor},
				{Name: "Mist Veil", Tier: TierMinor},
				{Name: "Torrent", Tier: TierMinor},
				{Name: "Freeze", Tier: TierMajor},
				{Name: "Tidal Wave", Tier: TierMajor},
			},
			EvolvedSkills: []SkillDef{
				{Name: "Abyssal Maw", Tier: TierMajor},
			},
		},
		{
			ID:            "sproutle",
			Element:       ElementGrass,
			BaseName:      "Sproutle",
			EvolvedName:   "Verdantyr",
			Base:          BaseStats{HP: 52, Attack: 11, Defense: 9, Speed: 8},
			Growth:        GrowthRates{HP: 15, Attack: 4, Defense: 4, Speed: 2},
			EvolveLevel:   30,
			EvolvedBase:   BaseStats{HP: 530, Attack: 138, Defense: 135, Speed: 70},
			EvolvedGrowth: GrowthRates{HP: 19, Attack: 5, Defense: 5, Speed: 3},
			OnCrit:        EffectRegen,
			Skills: []SkillDef{
				{Name: "Vine Whip", Tier: TierMinor},
				{Name: "Photosynthesis", Tier: TierMinor},
				{Name: "Seed Bomb", Tier: TierMinor},
				{Name: "Leech Seed", Tier: TierMajor},
				{Name: "Forest Blessing", Tier: TierMajor},
			},
			EvolvedSkills: []SkillDef{
				{Name: "Worldroot", Tier: TierMajor},
			},
		},
		{
			ID:            "sparkit",
			Element:       ElementElectric,
			BaseName:      "Sparkit",
			EvolvedName:   "Voltigre",
			Base:          BaseStats{HP: 38, Attack: 14, Defense: 5, Speed: 14},
			Growth:        GrowthRates{HP: 11, Attack: 5, Defense: 2, Speed: 4},
			EvolveLevel:   30,
			EvolvedBase:   BaseStats{HP: 390, Attack: 175, Defense: 70, Speed: 140},
			EvolvedGrowth: GrowthRates{HP: 14, Attack: 6, Defense: 3, Speed: 5},
			CritGrowth:    &CritGrowth{RatePerLevel: 0.003, DamagePerLevel: 0.008},
			OnCrit:        EffectShred,
			Skills: []SkillDef{
				{Name: "Shock", Tier: TierMinor},
				{Name: "Static Pulse", Tier: TierMinor},
				{Name: "Volt Net", Tier: TierMinor},
				{Name: "Thunderclap", Tier: TierMajor},
				{Name: "Gigavolt", Tier: TierMajor},
			},
			EvolvedSkills: []SkillDef{
				{Name: "Storm Lance", Tier: TierMajor},
			},
		},
		{
			ID:            "plainpup",
			Element:       ElementNormal,
			BaseName:      "Plainpup",
			EvolvedName:   "Ironrhino",
			Base:          BaseStats{HP: 45, Attack: 13, Defense: 6, Speed: 10},
			Growth:        GrowthRates{HP: 13, Attack: 5, Defense: 3, Speed: 2},
			EvolveLevel:   30,
			EvolvedBase:   BaseStats{HP: 470, Attack: 175, Defense: 100, Speed: 74},
			EvolvedGrowth: GrowthRates{HP: 16, Attack: 7, Defense: 4, Speed: 3},
			CritGrowth:    &CritGrowth{RatePerLevel: 0.002, DamagePerLevel: 0.01},
			OnCrit:        EffectSmash,
			Skills: []SkillDef{
				{Name: "Tackle", Tier: TierMinor},
				{Name: "Growl", Tier: TierMinor},
				{Name: "Tail Swipe", Tier: TierMinor},
				{Name: "Glare", Tier: TierMajor},
				{Name: "Rush", Tier: TierMajor},
			},
			EvolvedSkills: []SkillDef{
				{Name: "Horn Breaker", Tier: TierMajor},
			},
		},
	}
}

// DefaultRegistry returns a Registry populated with the built-in species set.
//
// Postcondition: Returns a non-nil Registry containing one species per element.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range defaultDefinitions() {
		// Built-in definitions are statically valid.
		if err := r.Register(def); err != nil {
			panic("species: invalid built-in definition: " + err.Error())
		}
	}
	return r
}
