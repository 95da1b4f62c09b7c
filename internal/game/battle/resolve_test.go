package battle

import (
	"testing"
	"time"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/effect"
	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/species"
	"pgregory.net/rapid"
)

var testBattleNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func effectSetWith(kind species.EffectKind, magnitude int) *effect.Set {
	s := effect.NewSet()
	if magnitude > 0 {
		s.Apply(kind, magnitude, 2)
	}
	return s
}

// manualPet builds a pet with hand-set combat stats so outcomes are
// predictable. CritRate stays 0 unless a test raises it.
func manualPet(speciesID, nickname string, hp, atk, def, speed int) *pet.Pet {
	return &pet.Pet{
		SpeciesID:  speciesID,
		Nickname:   nickname,
		Level:      1,
		HP:         hp,
		MaxHP:      hp,
		Attack:     atk,
		Defense:    def,
		Speed:      speed,
		CritDamage: 1.5,
	}
}

func TestResolve_RefusesFallenPet(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{Pet: manualPet("embercub", "A", 0, 10, 5, 10)}
	b := &Combatant{Pet: manualPet("embercub", "B", 50, 10, 5, 10)}

	if _, err := Resolve(reg, a, b, src, Config{}); err != ErrNotAlive {
		t.Fatalf("err = %v, want ErrNotAlive", err)
	}
	if _, err := Resolve(reg, b, a, src, Config{}); err != ErrNotAlive {
		t.Fatalf("err = %v, want ErrNotAlive for fallen opponent", err)
	}
	if _, err := Resolve(reg, nil, b, src, Config{}); err != ErrNotAlive {
		t.Fatalf("err = %v, want ErrNotAlive for nil combatant", err)
	}
}

func TestResolve_OverwhelmingAttackerWins(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{Pet: manualPet("embercub", "A", 100, 10000, 0, 50)}
	b := &Combatant{Pet: manualPet("embercub", "B", 50, 1, 0, 1)}

	res, err := Resolve(reg, a, b, src, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeWin {
		t.Fatalf("Outcome = %v, want win", res.Outcome)
	}
	if res.Rounds != 1 {
		t.Errorf("Rounds = %d, want 1", res.Rounds)
	}
	if b.Pet.HP != 0 {
		t.Errorf("loser HP = %d, want 0", b.Pet.HP)
	}
	if a.Pet.HP != 100 {
		t.Errorf("winner HP = %d, want untouched 100", a.Pet.HP)
	}
}

func TestResolve_LossFromFirstPerspective(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{Pet: manualPet("embercub", "A", 50, 1, 0, 1)}
	b := &Combatant{Pet: manualPet("embercub", "B", 100, 10000, 0, 50)}

	res, err := Resolve(reg, a, b, src, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeLoss {
		t.Fatalf("Outcome = %v, want loss", res.Outcome)
	}
}

// Fire against grass with no skills and no crits: (16 - 9*0.3) * 2.0 = 26.6,
// truncated to 26.
func TestResolve_TypeAdvantageDamage(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	ember, ok := pet.New(reg, "embercub", "A", "", testBattleNow)
	if !ok {
		t.Fatal("embercub missing from the default registry")
	}
	sprout, ok := pet.New(reg, "sproutle", "B", "", testBattleNow)
	if !ok {
		t.Fatal("sproutle missing from the default registry")
	}
	ember.CritRate = 0
	sprout.CritRate = 0
	ember.Skills = nil
	sprout.Skills = nil

	res, err := Resolve(reg, &Combatant{Pet: ember}, &Combatant{Pet: sprout}, src, Config{MaxRounds: 1})
	if err != nil {
		t.Fatal(err)
	}
	// Embercub (speed 11) outpaces sproutle (speed 8): log is initiative,
	// then the fire attack.
	if res.Log[0].Actor != "A" {
		t.Fatalf("initiative Actor = %q, want A", res.Log[0].Actor)
	}
	if res.Log[1].Damage != 26 {
		t.Fatalf("first attack Damage = %d, want 26", res.Log[1].Damage)
	}
}

func TestResolve_RoundCapDraw(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{Pet: manualPet("embercub", "A", 1000, 1, 1000, 10)}
	b := &Combatant{Pet: manualPet("embercub", "B", 1000, 1, 1000, 5)}

	res, err := Resolve(reg, a, b, src, Config{MaxRounds: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeDraw {
		t.Fatalf("Outcome = %v, want draw at the round cap", res.Outcome)
	}
	if res.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5", res.Rounds)
	}
	// Damage floors at 1, so each side lost exactly MaxRounds HP.
	if a.Pet.HP != 995 || b.Pet.HP != 995 {
		t.Errorf("HP = %d/%d, want 995/995", a.Pet.HP, b.Pet.HP)
	}
}

func TestResolve_AutoHealSpendsTurn(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	wounded := manualPet("embercub", "A", 100, 10, 0, 100)
	wounded.HP = 5
	wounded.AutoHealThreshold = 30

	a := &Combatant{
		Pet:   wounded,
		Items: []item.Consumable{{ID: "small-potion", Name: "small potion", Effect: item.Effect{HP: 20}}},
	}
	b := &Combatant{Pet: manualPet("embercub", "B", 100, 1, 0, 1)}

	res, err := Resolve(reg, a, b, src, Config{MaxRounds: 1})
	if err != nil {
		t.Fatal(err)
	}
	// A healed 5 -> 25 instead of attacking, then took B's floor hit.
	if wounded.HP != 24 {
		t.Fatalf("HP = %d, want 5 + 20 - 1 = 24", wounded.HP)
	}
	if len(res.ItemsUsedByA) != 1 || res.ItemsUsedByA[0] != "small potion" {
		t.Fatalf("ItemsUsedByA = %v, want [small potion]", res.ItemsUsedByA)
	}
	if len(a.Items) != 0 {
		t.Fatal("consumed item still in the combatant's stock")
	}
	if res.Outcome != OutcomeDraw {
		t.Fatalf("Outcome = %v, want draw", res.Outcome)
	}
}

func TestResolve_NoHealAboveThreshold(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{
		Pet:   manualPet("embercub", "A", 100, 10, 0, 100),
		Items: []item.Consumable{{ID: "small-potion", Name: "small potion", Effect: item.Effect{HP: 20}}},
	}
	a.Pet.HP = 31
	a.Pet.AutoHealThreshold = 30
	b := &Combatant{Pet: manualPet("embercub", "B", 100, 1, 0, 1)}

	res, err := Resolve(reg, a, b, src, Config{MaxRounds: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.ItemsUsedByA) != 0 {
		t.Fatalf("ItemsUsedByA = %v, want none above the threshold", res.ItemsUsedByA)
	}
}

func TestResolve_ZeroThresholdDisablesHealing(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(1)

	a := &Combatant{
		Pet:   manualPet("embercub", "A", 100, 10, 0, 100),
		Items: []item.Consumable{{ID: "small-potion", Name: "small potion", Effect: item.Effect{HP: 20}}},
	}
	a.Pet.HP = 5
	b := &Combatant{Pet: manualPet("embercub", "B", 100, 1, 0, 1)}

	res, err := Resolve(reg, a, b, src, Config{MaxRounds: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.ItemsUsedByA) != 0 {
		t.Fatalf("ItemsUsedByA = %v, want none with auto-heal disabled", res.ItemsUsedByA)
	}
}

// A speed tie is broken by a coin flip, so over many battles both sides move
// first a substantial share of the time.
func TestResolve_SpeedTieIsFair(t *testing.T) {
	reg := species.DefaultRegistry()
	src := dice.NewSeededSource(42)

	const trials = 1000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		a := &Combatant{Pet: manualPet("embercub", "A", 50, 10, 5, 10)}
		b := &Combatant{Pet: manualPet("embercub", "B", 50, 10, 5, 10)}
		res, err := Resolve(reg, a, b, src, Config{MaxRounds: 1})
		if err != nil {
			t.Fatal(err)
		}
		counts[res.Log[0].Actor]++
	}
	if counts["A"] < 350 || counts["B"] < 350 {
		t.Fatalf("initiative split %v over %d trials, want roughly even", counts, trials)
	}
}

// Property: Resolve always terminates within the round cap, leaves both HP
// values non-negative, and reports an outcome consistent with who is standing.
func TestPropertyResolveInvariants(t *testing.T) {
	reg := species.DefaultRegistry()
	ids := reg.IDs()

	rapid.Check(t, func(rt *rapid.T) {
		src := dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))
		a := &Combatant{Pet: manualPet(
			rapid.SampledFrom(ids).Draw(rt, "speciesA"), "A",
			rapid.IntRange(1, 400).Draw(rt, "hpA"),
			rapid.IntRange(1, 200).Draw(rt, "atkA"),
			rapid.IntRange(0, 200).Draw(rt, "defA"),
			rapid.IntRange(1, 100).Draw(rt, "spdA"))}
		b := &Combatant{Pet: manualPet(
			rapid.SampledFrom(ids).Draw(rt, "speciesB"), "B",
			rapid.IntRange(1, 400).Draw(rt, "hpB"),
			rapid.IntRange(1, 200).Draw(rt, "atkB"),
			rapid.IntRange(0, 200).Draw(rt, "defB"),
			rapid.IntRange(1, 100).Draw(rt, "spdB"))}

		maxRounds := rapid.IntRange(1, 50).Draw(rt, "maxRounds")
		res, err := Resolve(reg, a, b, src, Config{MaxRounds: maxRounds})
		if err != nil {
			rt.Fatal(err)
		}

		if res.Rounds < 1 || res.Rounds > maxRounds {
			rt.Fatalf("Rounds = %d, want in [1, %d]", res.Rounds, maxRounds)
		}
		if a.Pet.HP < 0 || b.Pet.HP < 0 {
			rt.Fatalf("negative HP after battle: %d/%d", a.Pet.HP, b.Pet.HP)
		}
		switch res.Outcome {
		case OutcomeWin:
			if !a.Pet.IsAlive() || b.Pet.IsAlive() {
				rt.Fatalf("win with HP %d vs %d", a.Pet.HP, b.Pet.HP)
			}
		case OutcomeLoss:
			if a.Pet.IsAlive() || !b.Pet.IsAlive() {
				rt.Fatalf("loss with HP %d vs %d", a.Pet.HP, b.Pet.HP)
			}
		case OutcomeDraw:
			if !a.Pet.IsAlive() || !b.Pet.IsAlive() {
				rt.Fatalf("draw with a fallen pet: HP %d vs %d", a.Pet.HP, b.Pet.HP)
			}
		}
	})
}

func TestApplyRoundEffects_BurnAndRegen(t *testing.T) {
	a := &Combatant{Pet: manualPet("embercub", "A", 100, 10, 5, 10)}
	a.name = "A"
	a.effects = effectSetWith(species.EffectBurn, 5)
	a.Pet.HP = 10

	b := &Combatant{Pet: manualPet("sproutle", "B", 11, 10, 5, 10)}
	b.name = "B"
	b.effects = effectSetWith(species.EffectRegen, 3)
	b.Pet.HP = 10

	res := &Result{}
	if done := applyRoundEffects(a, b, 1, res); done {
		t.Fatal("non-lethal round effects reported terminal")
	}
	if a.Pet.HP != 5 {
		t.Errorf("burned HP = %d, want 5", a.Pet.HP)
	}
	// Regen caps at MaxHP.
	if b.Pet.HP != 11 {
		t.Errorf("regenerated HP = %d, want capped 11", b.Pet.HP)
	}
}

func TestApplyRoundEffects_BurnCanEndBattle(t *testing.T) {
	a := &Combatant{Pet: manualPet("embercub", "A", 100, 10, 5, 10)}
	a.name = "A"
	a.effects = effectSetWith(species.EffectBurn, 5)
	a.Pet.HP = 3

	b := &Combatant{Pet: manualPet("sproutle", "B", 100, 10, 5, 10)}
	b.name = "B"
	b.effects = effectSetWith(species.EffectRegen, 0)

	res := &Result{}
	if done := applyRoundEffects(a, b, 1, res); !done {
		t.Fatal("lethal burn did not end the battle")
	}
	if a.Pet.HP != 0 {
		t.Fatalf("HP = %d, want 0", a.Pet.HP)
	}
}

func TestRollInitiative_SpeedOrders(t *testing.T) {
	src := dice.NewSeededSource(1)

	fast := &Combatant{Pet: manualPet("embercub", "fast", 50, 10, 5, 20)}
	slow := &Combatant{Pet: manualPet("embercub", "slow", 50, 10, 5, 10)}

	if first, _ := rollInitiative(fast, slow, src); first != fast {
		t.Fatal("higher speed did not move first")
	}
	if first, _ := rollInitiative(slow, fast, src); first != fast {
		t.Fatal("argument order overrode speed")
	}
}
