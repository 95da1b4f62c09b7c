package pet_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/tinyxi/pethatch/internal/game/dice"
)

func TestTrain_CostsAndExpRange(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	src := dice.NewSeededSource(1)

	res := p.Train(reg, src)
	if !res.OK {
		t.Fatalf("Train refused: %s", res.Message)
	}
	if p.Hunger != 40 {
		t.Errorf("Hunger = %d, want 50 - 10 = 40", p.Hunger)
	}
	if p.Mood != 45 {
		t.Errorf("Mood = %d, want 50 - 5 = 45", p.Mood)
	}
	if res.ExpGained < 10 || res.ExpGained > 30 {
		t.Errorf("ExpGained = %d, want in [10, 30]", res.ExpGained)
	}
	if p.Exp != res.ExpGained {
		t.Errorf("Exp = %d, want %d", p.Exp, res.ExpGained)
	}
	if !strings.Contains(res.Message, "trained hard") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestTrain_RefusedWhenTooHungry(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Hunger = 10
	src := dice.NewSeededSource(1)

	res := p.Train(reg, src)
	if res.OK {
		t.Fatal("Train succeeded at the hunger floor")
	}
	if p.Hunger != 10 || p.Mood != 50 || p.Exp != 0 {
		t.Fatalf("refused training mutated the pet: hunger=%d mood=%d exp=%d",
			p.Hunger, p.Mood, p.Exp)
	}
	if !strings.Contains(res.Message, "too hungry") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestTrain_RefusedWhenMoodLow(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Mood = 10
	src := dice.NewSeededSource(1)

	res := p.Train(reg, src)
	if res.OK {
		t.Fatal("Train succeeded at the mood floor")
	}
	if p.Hunger != 50 || p.Mood != 10 || p.Exp != 0 {
		t.Fatalf("refused training mutated the pet: hunger=%d mood=%d exp=%d",
			p.Hunger, p.Mood, p.Exp)
	}
	if !strings.Contains(res.Message, "no mood") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestTrain_JustAboveFloorsSucceeds(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Hunger = 11
	p.Mood = 11
	src := dice.NewSeededSource(1)

	res := p.Train(reg, src)
	if !res.OK {
		t.Fatalf("Train refused just above the floors: %s", res.Message)
	}
	if p.Hunger != 1 || p.Mood != 6 {
		t.Fatalf("hunger/mood = %d/%d, want 1/6", p.Hunger, p.Mood)
	}
}

// Property: after any successful training session the exp invariant holds and
// hunger/mood stay in bounds.
func TestPropertyTrainInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p, reg := newTestPet(t, "embercub")
		p.Level = rapid.IntRange(1, 40).Draw(rt, "level")
		p.Exp = rapid.IntRange(0, p.ExpThreshold()-1).Draw(rt, "exp")
		p.RecomputeStats(reg)
		src := dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))

		res := p.Train(reg, src)
		if !res.OK {
			rt.Fatalf("Train refused with default resources: %s", res.Message)
		}
		if p.Exp >= p.ExpThreshold() {
			rt.Fatalf("Exp %d >= threshold %d after training", p.Exp, p.ExpThreshold())
		}
		if p.Hunger < 0 || p.Hunger > 100 || p.Mood < 0 || p.Mood > 100 {
			rt.Fatalf("resources out of bounds: hunger=%d mood=%d", p.Hunger, p.Mood)
		}
	})
}
