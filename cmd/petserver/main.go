// Package main provides the pethatch console: it wires configuration,
// database, species content, and the game service, then reads commands from
// stdin the way the chat frontend would deliver them.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tinyxi/pethatch/internal/config"
	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/progression"
	"github.com/tinyxi/pethatch/internal/game/service"
	"github.com/tinyxi/pethatch/internal/game/species"
	"github.com/tinyxi/pethatch/internal/observability"
	"github.com/tinyxi/pethatch/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	owner := flag.String("owner", "console", "owner ID to play as")
	ownerName := flag.String("owner-name", "Console", "display name for the owner")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	reg, err := species.LoadRegistry(cfg.Game.SpeciesDir)
	if err != nil {
		logger.Warn("loading species content, using built-in defaults",
			zap.String("dir", cfg.Game.SpeciesDir), zap.Error(err))
	}
	logger.Info("species loaded", zap.Int("count", len(reg.IDs())))

	tables := progression.Tables{
		progression.ContextWild: {
			ExpPerLevel:    cfg.Rewards.Wild.ExpPerLevel,
			CoinsPerLevel:  cfg.Rewards.Wild.CoinsPerLevel,
			ItemDropChance: cfg.Rewards.Wild.ItemDropChance,
		},
		progression.ContextDuel: {
			ExpPerLevel:    cfg.Rewards.Duel.ExpPerLevel,
			CoinsPerLevel:  cfg.Rewards.Duel.CoinsPerLevel,
			ItemDropChance: cfg.Rewards.Duel.ItemDropChance,
		},
		progression.ContextExploration: {
			ExpPerLevel:    cfg.Rewards.Exploration.ExpPerLevel,
			CoinsPerLevel:  cfg.Rewards.Exploration.CoinsPerLevel,
			ItemDropChance: cfg.Rewards.Exploration.ItemDropChance,
		},
	}

	svc := service.New(
		postgres.NewGateway(pool.DB()),
		reg,
		progression.NewEngine(reg, tables),
		dice.NewCryptoSource(),
		logger,
		service.Config{
			MaxBattleRounds: cfg.Game.MaxBattleRounds,
			SkillProcChance: cfg.Game.SkillProcChance,
			WildLevelSpread: cfg.Game.WildLevelSpread,
		},
	)

	logger.Info("pethatch console ready",
		zap.String("owner", *owner),
		zap.Duration("startup", time.Since(start)),
	)
	fmt.Println("pethatch console. Commands: adopt [species] [nickname], status, train, feed <item>,")
	fmt.Println("heal, evolve, battle, explore, duel <owner>, buy <item> [qty], autoheal <hp>, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		fmt.Println(dispatch(ctx, svc, *owner, *ownerName, line))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading stdin", zap.Error(err))
	}
}

func dispatch(ctx context.Context, svc *service.Service, owner, ownerName, line string) string {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var (
		msg string
		err error
	)
	switch cmd {
	case "adopt":
		speciesID, nickname := "", ""
		if len(args) > 0 {
			speciesID = args[0]
		}
		if len(args) > 1 {
			nickname = strings.Join(args[1:], " ")
		}
		_, msg, err = svc.Adopt(ctx, owner, ownerName, nickname, speciesID)
	case "status":
		var sum service.Summary
		sum, err = svc.Describe(ctx, owner)
		if err == nil {
			msg = formatSummary(sum)
		}
	case "train":
		msg, err = svc.Train(ctx, owner)
	case "feed":
		if len(args) == 0 {
			return "usage: feed <item>"
		}
		msg, err = svc.Feed(ctx, owner, strings.Join(args, " "))
	case "heal":
		msg, err = svc.Heal(ctx, owner)
	case "evolve":
		msg, err = svc.Evolve(ctx, owner)
	case "battle":
		_, msg, err = svc.BattleWild(ctx, owner)
	case "explore":
		_, msg, err = svc.Explore(ctx, owner)
	case "duel":
		if len(args) != 1 {
			return "usage: duel <owner>"
		}
		_, msg, err = svc.Duel(ctx, owner, args[0])
	case "buy":
		if len(args) == 0 {
			return "usage: buy <item> [qty]"
		}
		qty := 1
		name := strings.Join(args, " ")
		if n, convErr := strconv.Atoi(args[len(args)-1]); convErr == nil && len(args) > 1 {
			qty = n
			name = strings.Join(args[:len(args)-1], " ")
		}
		msg, err = svc.Buy(ctx, owner, name, qty)
	case "autoheal":
		if len(args) != 1 {
			return "usage: autoheal <hp>"
		}
		threshold, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return "usage: autoheal <hp>"
		}
		msg, err = svc.SetAutoHeal(ctx, owner, threshold)
	default:
		return fmt.Sprintf("unknown command %q", cmd)
	}

	if msg != "" {
		return msg
	}
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func formatSummary(s service.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %s %s)\n", s.Name, s.SpeciesName, s.Element, s.Stage)
	fmt.Fprintf(&b, "Level %d  EXP %d/%d\n", s.Level, s.Exp, s.ExpThreshold)
	fmt.Fprintf(&b, "HP %d/%d  ATK %d  DEF %d  SPD %d\n", s.HP, s.MaxHP, s.Attack, s.Defense, s.Speed)
	fmt.Fprintf(&b, "Crit %.1f%% x%.2f\n", s.CritRate*100, s.CritDamage)
	fmt.Fprintf(&b, "Hunger %d/100  Mood %d/100  Coins %d\n", s.Hunger, s.Mood, s.Coins)
	if len(s.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(s.Skills, ", "))
	}
	if s.CanEvolve {
		b.WriteString("Ready to evolve!\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
