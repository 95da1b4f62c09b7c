package pet_test

import (
	"strings"
	"testing"

	"github.com/tinyxi/pethatch/internal/game/item"
)

func TestFeed_RestoresHunger(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	kibble, _ := item.DefaultCatalog().ByID("kibble")

	res := p.Feed(reg, kibble)
	if p.Hunger != 80 {
		t.Errorf("Hunger = %d, want 50 + 30 = 80", p.Hunger)
	}
	if res.HungerGained != 30 {
		t.Errorf("HungerGained = %d, want 30", res.HungerGained)
	}
	if !strings.Contains(res.Message, "kibble") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestFeed_CapsAtMaximums(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Hunger = 90
	kibble, _ := item.DefaultCatalog().ByID("kibble")

	res := p.Feed(reg, kibble)
	if p.Hunger != 100 {
		t.Errorf("Hunger = %d, want capped at 100", p.Hunger)
	}
	if res.HungerGained != 10 {
		t.Errorf("HungerGained = %d, want actual gain 10", res.HungerGained)
	}
}

func TestFeed_HealingItemCapsAtMaxHP(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.HP = p.MaxHP - 5
	potion, _ := item.DefaultCatalog().ByID("small-potion")

	res := p.Feed(reg, potion)
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d, want capped at %d", p.HP, p.MaxHP)
	}
	if res.HPGained != 5 {
		t.Errorf("HPGained = %d, want 5", res.HPGained)
	}
}

func TestFeed_CombinedEffect(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.HP = 10
	feast, _ := item.DefaultCatalog().ByID("feast")

	res := p.Feed(reg, feast)
	if res.HungerGained != 40 || res.MoodGained != 20 || res.HPGained != 10 {
		t.Fatalf("gains = %d/%d/%d, want 40/20/10",
			res.HungerGained, res.MoodGained, res.HPGained)
	}
}

func TestFeed_NoEffectMessage(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Hunger = 100
	kibble, _ := item.DefaultCatalog().ByID("kibble")

	res := p.Feed(reg, kibble)
	if res.HungerGained != 0 {
		t.Fatalf("HungerGained = %d, want 0 at cap", res.HungerGained)
	}
	if !strings.Contains(res.Message, "nothing happens") {
		t.Errorf("Message = %q", res.Message)
	}
}
