package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tinyxi/pethatch/internal/game/battle"
	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/progression"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// BattleWild pits the owner's pet against a synthesized wild opponent.
// The opponent is never persisted; rewards apply to the owner's pet only.
func (s *Service) BattleWild(ctx context.Context, ownerID string) (*battle.Result, string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	p.UpdateStatus(s.now())

	if !p.IsAlive() {
		return nil, fmt.Sprintf("%s has fainted and cannot battle. Heal it first!", p.Name(s.reg)), nil
	}

	opponent := s.wildOpponent(p)
	res, msg, err := s.runBattle(ctx, ownerID, p, opponent, progression.ContextWild)
	if err != nil {
		return nil, "", err
	}
	return res, msg, nil
}

// Explore sends the pet on an exploration encounter: a weaker opponent,
// context-specific rewards, and a chance of an item pickup on a win.
func (s *Service) Explore(ctx context.Context, ownerID string) (*battle.Result, string, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	p, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	p.UpdateStatus(s.now())

	if !p.IsAlive() {
		return nil, fmt.Sprintf("%s has fainted and cannot explore. Heal it first!", p.Name(s.reg)), nil
	}

	opponent := s.wildOpponent(p)
	res, msg, err := s.runBattle(ctx, ownerID, p, opponent, progression.ContextExploration)
	if err != nil {
		return nil, "", err
	}

	if res.Outcome == battle.OutcomeWin && s.prog.ShouldDropItem(progression.ContextExploration, s.src) {
		drop := dice.Pick(s.src, s.catalog(ctx).Items())
		if err := s.gw.AddItem(ctx, ownerID, drop.Name, 1); err != nil {
			s.log.Warn("exploration item drop lost",
				zap.String("owner", ownerID), zap.Error(err))
		} else {
			msg += fmt.Sprintf("\n%s found a %s in the undergrowth!", p.Name(s.reg), drop.Name)
		}
	}
	return res, msg, nil
}

// Duel resolves a PVP battle between two owners' pets. Both sides must be
// off cooldown and alive. Persistence is best-effort and ordered: the acting
// owner's pet is saved first, then the opponent's; a failure between the two
// writes leaves the opponent's record stale.
func (s *Service) Duel(ctx context.Context, ownerID, opponentID string) (*battle.Result, string, error) {
	if ownerID == opponentID {
		return nil, "You cannot duel your own pet.", nil
	}
	unlock := s.locks.lockBoth(ownerID, opponentID)
	defer unlock()

	mine, err := s.gw.LoadPet(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	theirs, err := s.gw.LoadPet(ctx, opponentID)
	if err != nil {
		return nil, "Your opponent has no pet.", err
	}

	now := s.now()
	mine.UpdateStatus(now)
	theirs.UpdateStatus(now)

	if !mine.IsBattleAvailable(now) {
		return nil, fmt.Sprintf("%s is still resting from the last duel.", mine.Name(s.reg)), nil
	}
	if !theirs.IsBattleAvailable(now) {
		return nil, fmt.Sprintf("%s is still resting from the last duel.", theirs.Name(s.reg)), nil
	}
	if !mine.IsAlive() {
		return nil, fmt.Sprintf("%s has fainted and cannot duel. Heal it first!", mine.Name(s.reg)), nil
	}
	if !theirs.IsAlive() {
		return nil, fmt.Sprintf("%s has fainted and cannot duel.", theirs.Name(s.reg)), nil
	}

	cat := s.catalog(ctx)
	a := &battle.Combatant{Pet: mine, Items: s.healingItems(ctx, ownerID, cat)}
	b := &battle.Combatant{Pet: theirs, Items: s.healingItems(ctx, opponentID, cat)}

	res, err := battle.Resolve(s.reg, a, b, s.src, s.battleConfig())
	if err != nil {
		return nil, "", fmt.Errorf("resolving duel: %w", err)
	}

	reward := progression.Reward{}
	switch res.Outcome {
	case battle.OutcomeWin:
		reward = s.prog.RewardFor(progression.ContextDuel, theirs.Level)
		s.prog.GrantExp(mine, s.src, reward.Exp)
		s.prog.GrantCoins(mine, reward.Coins)
	case battle.OutcomeLoss:
		reward = s.prog.RewardFor(progression.ContextDuel, mine.Level)
		s.prog.GrantExp(theirs, s.src, reward.Exp)
		s.prog.GrantCoins(theirs, reward.Coins)
	}

	mine.TouchBattleTime(now)
	theirs.TouchBattleTime(now)

	s.consumeUsed(ctx, ownerID, res.ItemsUsedByA)
	s.consumeUsed(ctx, opponentID, res.ItemsUsedByB)

	// Acting owner first, then opponent. Best-effort consistency: no
	// two-phase guarantee across the two records.
	if err := s.gw.SavePet(ctx, ownerID, mine); err != nil {
		return nil, "", fmt.Errorf("saving duel result for %s: %w", ownerID, err)
	}
	if err := s.gw.SavePet(ctx, opponentID, theirs); err != nil {
		s.log.Error("duel opponent save failed, records diverged",
			zap.String("owner", ownerID),
			zap.String("opponent", opponentID),
			zap.Error(err))
		return nil, "", fmt.Errorf("saving duel result for %s: %w", opponentID, err)
	}

	msg := battleMessage(res, rewardLine(res, mine, theirs, reward, s))
	s.logBattle(res, "duel", ownerID, opponentID)
	return res, msg, nil
}

// runBattle resolves a PVE battle (wild or exploration) and persists the
// owner's pet plus any consumed items.
func (s *Service) runBattle(ctx context.Context, ownerID string, p, opponent *pet.Pet, rctx progression.Context) (*battle.Result, string, error) {
	cat := s.catalog(ctx)
	a := &battle.Combatant{Pet: p, Items: s.healingItems(ctx, ownerID, cat)}
	b := &battle.Combatant{Pet: opponent}

	res, err := battle.Resolve(s.reg, a, b, s.src, s.battleConfig())
	if err != nil {
		return nil, "", fmt.Errorf("resolving battle: %w", err)
	}

	reward := progression.Reward{}
	if res.Outcome == battle.OutcomeWin {
		reward = s.prog.RewardFor(rctx, opponent.Level)
		s.prog.GrantExp(p, s.src, reward.Exp)
		s.prog.GrantCoins(p, reward.Coins)
	}

	s.consumeUsed(ctx, ownerID, res.ItemsUsedByA)

	if err := s.gw.SavePet(ctx, ownerID, p); err != nil {
		return nil, "", fmt.Errorf("saving battle result: %w", err)
	}

	msg := battleMessage(res, rewardLine(res, p, opponent, reward, s))
	s.logBattle(res, string(rctx), ownerID, "")
	return res, msg, nil
}

// wildOpponent synthesizes an unpersisted opponent near the pet's level.
// Opponents past their species' evolve level spawn already evolved.
func (s *Service) wildOpponent(p *pet.Pet) *pet.Pet {
	speciesID := dice.Pick(s.src, s.reg.IDs())
	level := p.Level + dice.Between(s.src, -s.cfg.WildLevelSpread, s.cfg.WildLevelSpread)
	if level < 1 {
		level = 1
	}

	opp, _ := pet.New(s.reg, speciesID, "", "", s.now())
	opp.Level = level
	if def, ok := s.reg.Get(speciesID); ok && def.CanEvolve() && level >= def.EvolveLevel {
		opp.Stage = species.StageEvolved
	}
	opp.RecomputeStats(s.reg)
	opp.HP = opp.MaxHP
	opp.Nickname = "wild " + opp.Name(s.reg)
	return opp
}

func (s *Service) battleConfig() battle.Config {
	return battle.Config{
		MaxRounds:       s.cfg.MaxBattleRounds,
		SkillProcChance: s.cfg.SkillProcChance,
	}
}

// consumeUsed charges consumed battle items against the owner's inventory.
// Best-effort: the items already took effect in memory, so a failed write is
// logged, not propagated.
func (s *Service) consumeUsed(ctx context.Context, ownerID string, used []string) {
	counts := make(map[string]int)
	for _, name := range used {
		counts[name]++
	}
	for name, n := range counts {
		if err := s.gw.ConsumeItem(ctx, ownerID, name, n); err != nil {
			s.log.Warn("failed to charge battle item use",
				zap.String("owner", ownerID),
				zap.String("item", name),
				zap.Int("count", n),
				zap.Error(err))
		}
	}
}

func (s *Service) logBattle(res *battle.Result, kind, ownerID, opponentID string) {
	fields := []zap.Field{
		zap.String("battle_id", res.ID.String()),
		zap.String("kind", kind),
		zap.String("owner", ownerID),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("rounds", res.Rounds),
	}
	if opponentID != "" {
		fields = append(fields, zap.String("opponent", opponentID))
	}
	s.log.Info("battle resolved", fields...)
}

// battleMessage flattens the ordered battle log into display text.
func battleMessage(res *battle.Result, reward string) string {
	lines := make([]string, 0, len(res.Log)+1)
	for _, ev := range res.Log {
		lines = append(lines, ev.Text)
	}
	if reward != "" {
		lines = append(lines, reward)
	}
	return strings.Join(lines, "\n")
}

func rewardLine(res *battle.Result, a, b *pet.Pet, reward progression.Reward, s *Service) string {
	switch res.Outcome {
	case battle.OutcomeWin:
		return fmt.Sprintf("%s won and gained %d EXP and %d coins!", a.Name(s.reg), reward.Exp, reward.Coins)
	case battle.OutcomeLoss:
		if reward.Exp > 0 {
			return fmt.Sprintf("%s was defeated. %s gained %d EXP and %d coins.",
				a.Name(s.reg), b.Name(s.reg), reward.Exp, reward.Coins)
		}
		return fmt.Sprintf("%s was defeated.", a.Name(s.reg))
	default:
		return ""
	}
}
