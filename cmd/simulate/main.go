// Package main provides a balance tool that resolves many battles between two
// species and reports win rates and round counts. It needs no database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tinyxi/pethatch/internal/game/battle"
	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/species"
)

func main() {
	start := time.Now()

	speciesDir := flag.String("species", "content/species", "path to species YAML directory")
	speciesA := flag.String("a", "embercub", "species ID for side A")
	speciesB := flag.String("b", "sproutle", "species ID for side B")
	levelA := flag.Int("level-a", 10, "level for side A")
	levelB := flag.Int("level-b", 10, "level for side B")
	trials := flag.Int("n", 1000, "number of battles to resolve")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	reg, err := species.LoadRegistry(*speciesDir)
	if err != nil {
		log.Printf("loading species content, using built-in defaults: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	src := dice.NewSeededSource(*seed)

	var wins, losses, draws, totalRounds int
	for i := 0; i < *trials; i++ {
		a := spawn(reg, *speciesA, *levelA)
		b := spawn(reg, *speciesB, *levelB)
		res, err := battle.Resolve(reg, &battle.Combatant{Pet: a}, &battle.Combatant{Pet: b}, src, battle.Config{})
		if err != nil {
			log.Fatalf("resolving battle %d: %v", i, err)
		}
		totalRounds += res.Rounds
		switch res.Outcome {
		case battle.OutcomeWin:
			wins++
		case battle.OutcomeLoss:
			losses++
		default:
			draws++
		}
	}

	fmt.Fprintf(os.Stdout, "%s L%d vs %s L%d over %d battles (seed %d):\n",
		*speciesA, *levelA, *speciesB, *levelB, *trials, *seed)
	fmt.Fprintf(os.Stdout, "  A wins %.1f%%  B wins %.1f%%  draws %.1f%%  mean rounds %.1f  [%s]\n",
		pct(wins, *trials), pct(losses, *trials), pct(draws, *trials),
		float64(totalRounds)/float64(*trials), time.Since(start))
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func spawn(reg *species.Registry, speciesID string, level int) *pet.Pet {
	p, ok := pet.New(reg, speciesID, "", "", time.Now())
	if !ok {
		log.Fatalf("unknown species %q", speciesID)
	}
	p.Level = level
	if def, defOK := reg.Get(speciesID); defOK && def.CanEvolve() && level >= def.EvolveLevel {
		p.Stage = species.StageEvolved
	}
	p.RecomputeStats(reg)
	p.HP = p.MaxHP
	return p
}
