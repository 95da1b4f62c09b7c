package pet_test

import (
	"strings"
	"testing"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/species"
)

func TestEvolve_RefusedBelowThreshold(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Level = 29
	p.RecomputeStats(reg)
	src := dice.NewSeededSource(1)

	if p.CanEvolve(reg) {
		t.Fatal("CanEvolve true below the threshold")
	}
	res := p.Evolve(reg, src)
	if res.OK {
		t.Fatal("Evolve succeeded below the threshold")
	}
	if !strings.Contains(res.Message, "needs level 30") {
		t.Errorf("Message = %q", res.Message)
	}
	if p.Stage != species.StageBase {
		t.Fatal("refused evolution changed the stage")
	}
}

func TestEvolve_AtThreshold(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Level = 30
	p.RecomputeStats(reg)
	src := dice.NewSeededSource(1)

	if !p.CanEvolve(reg) {
		t.Fatal("CanEvolve false at the threshold")
	}
	res := p.Evolve(reg, src)
	if !res.OK {
		t.Fatalf("Evolve refused: %s", res.Message)
	}
	if p.Stage != species.StageEvolved {
		t.Fatal("Stage not evolved")
	}
	if res.NewName != "Blazelion" {
		t.Errorf("NewName = %q, want Blazelion", res.NewName)
	}
	// Level 30 is the evolved baseline, so stats equal the evolved base.
	def, _ := reg.Get("embercub")
	if p.MaxHP != def.EvolvedBase.HP || p.Attack != def.EvolvedBase.Attack {
		t.Errorf("stats = %d/%d, want evolved base %d/%d",
			p.MaxHP, p.Attack, def.EvolvedBase.HP, def.EvolvedBase.Attack)
	}
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d, want full %d after evolving", p.HP, p.MaxHP)
	}
	if !strings.Contains(res.Message, "evolved into Blazelion") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestEvolve_DrawsFromEnlargedPool(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Level = 30
	// Exhaust the base pool so any draw must come from the evolved skills.
	p.Skills = []string{"Scorch", "Fireball", "Flame Burst", "Wall of Fire", "Magma Surge"}
	p.RecomputeStats(reg)
	src := dice.NewSeededSource(1)

	res := p.Evolve(reg, src)
	if !res.OK {
		t.Fatalf("Evolve refused: %s", res.Message)
	}
	if res.LearnedSkill == "" {
		t.Fatal("no skill drawn from the evolved pool")
	}
	def, _ := reg.Get("embercub")
	found := false
	for _, sk := range def.EvolvedSkills {
		if sk.Name == res.LearnedSkill {
			found = true
		}
	}
	if !found {
		t.Errorf("LearnedSkill %q not in the evolved pool", res.LearnedSkill)
	}
	if !p.KnowsSkill(res.LearnedSkill) {
		t.Fatal("learned skill not recorded on the pet")
	}
}

func TestEvolve_OnlyOnce(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.Level = 30
	p.RecomputeStats(reg)
	src := dice.NewSeededSource(1)

	if res := p.Evolve(reg, src); !res.OK {
		t.Fatalf("first Evolve refused: %s", res.Message)
	}
	res := p.Evolve(reg, src)
	if res.OK {
		t.Fatal("second Evolve succeeded")
	}
	if !strings.Contains(res.Message, "cannot evolve") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestCanEvolve_UnknownSpecies(t *testing.T) {
	p, reg := newTestPet(t, "embercub")
	p.SpeciesID = "missingno"
	p.Level = 99

	if p.CanEvolve(reg) {
		t.Fatal("CanEvolve true for an unknown species")
	}
	res := p.Evolve(reg, dice.NewSeededSource(1))
	if res.OK {
		t.Fatal("Evolve succeeded for an unknown species")
	}
}
