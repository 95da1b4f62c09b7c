package species

// TypeChart maps (attacker element, defender element) to a damage multiplier.
// The table is asymmetric in general: electric deals 2.0x to water while
// water deals 0.5x back.
type TypeChart struct {
	mult map[ElementType]map[ElementType]float64
}

// NewTypeChart returns an empty chart where every pairing is neutral.
//
// Postcondition: Advantage returns 1.0 for all pairs until Set is called.
func NewTypeChart() *TypeChart {
	return &TypeChart{mult: make(map[ElementType]map[ElementType]float64)}
}

// Set records the multiplier for attacker hitting defender.
// Setting one direction never implies anything about the reverse direction.
func (t *TypeChart) Set(attacker, defender ElementType, multiplier float64) {
	row, ok := t.mult[attacker]
	if !ok {
		row = make(map[ElementType]float64)
		t.mult[attacker] = row
	}
	row[defender] = multiplier
}

// Advantage returns the damage multiplier for attacker hitting defender.
// Total function: any pairing not present in the table is neutral.
//
// Postcondition: Returns 1.0 for unknown pairs; never fails.
func (t *TypeChart) Advantage(attacker, defender ElementType) float64 {
	if row, ok := t.mult[attacker]; ok {
		if m, ok := row[defender]; ok {
			return m
		}
	}
	return 1.0
}

// DefaultTypeChart returns the standard five-type chart.
//
// The electric->grass 1.2 entry is deliberately one-directional
// (grass->electric stays neutral).
func DefaultTypeChart() *TypeChart {
	t := NewTypeChart()
	t.Set(ElementFire, ElementGrass, 2.0)
	t.Set(ElementFire, ElementWater, 0.5)
	t.Set(ElementWater, ElementFire, 2.0)
	t.Set(ElementWater, ElementGrass, 0.5)
	t.Set(ElementWater, ElementElectric, 0.5)
	t.Set(ElementGrass, ElementWater, 2.0)
	t.Set(ElementGrass, ElementFire, 0.5)
	t.Set(ElementElectric, ElementWater, 2.0)
	t.Set(ElementElectric, ElementGrass, 1.2)
	return t
}
