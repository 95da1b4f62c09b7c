package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// Summary is the structured stat view handed to the rendering collaborator.
type Summary struct {
	Name        string
	SpeciesName string
	Element     species.ElementType
	Stage       string

	Level        int
	Exp          int
	ExpThreshold int

	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Speed   int

	CritRate   float64
	CritDamage float64

	Hunger int
	Mood   int
	Coins  int

	Skills    []string
	CanEvolve bool
}

// Adopt creates a pet for ownerID. An empty speciesID draws a random species;
// an empty nickname leaves the species display name in effect.
//
// Postcondition: Returns ErrPetExists without side effects when the owner
// already has a pet; otherwise the new pet is persisted before returning.
func (s *Service) Adopt(ctx context.Context, ownerID, ownerName, nickname, speciesID string) (*pet.Pet, string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	if speciesID == "" {
		speciesID = dice.Pick(s.src, s.reg.IDs())
	}
	p, ok := pet.New(s.reg, speciesID, nickname, ownerName, s.now())
	if !ok {
		return nil, fmt.Sprintf("Unknown species %q.", speciesID), nil
	}

	if err := s.gw.CreatePet(ctx, ownerID, p); err != nil {
		if errors.Is(err, ErrPetExists) {
			return nil, "You already have a pet!", err
		}
		return nil, "", fmt.Errorf("adopting pet: %w", err)
	}

	s.log.Info("pet adopted",
		zap.String("owner", ownerID),
		zap.String("species", speciesID),
		zap.String("name", p.Name(s.reg)))
	msg := fmt.Sprintf("Welcome %s, a %s-type companion! HP %d, ATK %d, DEF %d, SPD %d.",
		p.Name(s.reg), p.Element(s.reg), p.MaxHP, p.Attack, p.Defense, p.Speed)
	return p, msg, nil
}

// Describe refreshes the pet's well-being decay and returns the structured
// stat summary.
func (s *Service) Describe(ctx context.Context, ownerID string) (Summary, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return Summary{}, err
	}

	p.UpdateStatus(s.now())
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return Summary{}, fmt.Errorf("saving pet status: %w", err)
	}

	return s.summarize(p), nil
}

func (s *Service) summarize(p *pet.Pet) Summary {
	speciesName := p.SpeciesID
	if def, ok := s.reg.Get(p.SpeciesID); ok {
		speciesName = def.DisplayName(p.Stage)
	}
	skills := make([]string, len(p.Skills))
	copy(skills, p.Skills)
	return Summary{
		Name:         p.Name(s.reg),
		SpeciesName:  speciesName,
		Element:      p.Element(s.reg),
		Stage:        p.Stage.String(),
		Level:        p.Level,
		Exp:          p.Exp,
		ExpThreshold: p.ExpThreshold(),
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Attack:       p.Attack,
		Defense:      p.Defense,
		Speed:        p.Speed,
		CritRate:     p.CritRate,
		CritDamage:   p.CritDamage,
		Hunger:       p.Hunger,
		Mood:         p.Mood,
		Coins:        p.Coins,
		Skills:       skills,
		CanEvolve:    p.CanEvolve(s.reg),
	}
}

// Train runs one training session and persists the result.
//
// Postcondition: A refused session (hunger/mood floor) persists only the
// status decay, never partial training state.
func (s *Service) Train(ctx context.Context, ownerID string) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}

	p.UpdateStatus(s.now())
	res := p.Train(s.reg, s.src)
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving trained pet: %w", err)
	}
	return res.Message, nil
}

// Feed consumes one unit of the named item from the owner's inventory and
// applies its effect.
func (s *Service) Feed(ctx context.Context, ownerID, itemName string) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}

	c, ok := s.catalog(ctx).ByName(itemName)
	if !ok {
		return fmt.Sprintf("There is no item called %q.", itemName), nil
	}
	if err := s.gw.ConsumeItem(ctx, ownerID, c.Name, 1); err != nil {
		if errors.Is(err, ErrInsufficientItem) {
			return fmt.Sprintf("You have no %s left.", c.Name), nil
		}
		return "", fmt.Errorf("consuming %s: %w", c.Name, err)
	}

	p.UpdateStatus(s.now())
	res := p.Feed(s.reg, c)
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving fed pet: %w", err)
	}
	return res.Message, nil
}

// Heal restores (or revives) the pet and persists it.
func (s *Service) Heal(ctx context.Context, ownerID string) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}

	res := p.Heal(s.reg)
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving healed pet: %w", err)
	}
	return res.Message, nil
}

// Evolve attempts the one-way evolution transition and persists on success.
func (s *Service) Evolve(ctx context.Context, ownerID string) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}

	res := p.Evolve(s.reg, s.src)
	if !res.OK {
		return res.Message, nil
	}
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving evolved pet: %w", err)
	}
	s.log.Info("pet evolved",
		zap.String("owner", ownerID),
		zap.String("new_name", res.NewName))
	return res.Message, nil
}

// SetAutoHeal configures the HP floor below which the pet spends battle
// turns on healing items. Zero disables auto-healing.
//
// Precondition: threshold >= 0.
func (s *Service) SetAutoHeal(ctx context.Context, ownerID string, threshold int) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	if threshold < 0 {
		return "Auto-heal threshold cannot be negative.", nil
	}
	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}
	p.AutoHealThreshold = threshold
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving auto-heal threshold: %w", err)
	}
	if threshold == 0 {
		return "Auto-heal disabled.", nil
	}
	return fmt.Sprintf("Auto-heal set: items will be used at or below %d HP.", threshold), nil
}

// Buy purchases qty units of the named item, charging the pet's coins.
//
// Postcondition: On insufficient coins, nothing is mutated.
func (s *Service) Buy(ctx context.Context, ownerID, itemName string, qty int) (string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	if qty < 1 {
		return "You must buy at least one.", nil
	}
	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return "", err
	}

	c, ok := s.catalog(ctx).ByName(itemName)
	if !ok {
		return fmt.Sprintf("The shop does not sell %q.", itemName), nil
	}
	cost := c.Price * qty
	if p.Coins < cost {
		return fmt.Sprintf("Not enough coins: %s x%d costs %d, you have %d.", c.Name, qty, cost, p.Coins), nil
	}

	p.Coins -= cost
	if err := s.gw.AddItem(ctx, ownerID, c.Name, qty); err != nil {
		return "", fmt.Errorf("adding %s to inventory: %w", c.Name, err)
	}
	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return "", fmt.Errorf("saving coins: %w", err)
	}
	return fmt.Sprintf("Bought %s x%d for %d coins. %d coins left.", c.Name, qty, cost, p.Coins), nil
}
