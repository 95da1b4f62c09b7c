// Package config provides Viper-based configuration loading for the pethatch
// game core.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds engine tunables.
type GameConfig struct {
	// SpeciesDir is the directory of species YAML definitions; an
	// unreadable directory falls back to the built-in species set.
	SpeciesDir string `mapstructure:"species_dir"`
	// MaxBattleRounds caps the battle round loop; reaching it is a draw.
	MaxBattleRounds int `mapstructure:"max_battle_rounds"`
	// SkillProcChance is the per-attack probability of a skill proc.
	SkillProcChance float64 `mapstructure:"skill_proc_chance"`
	// WildLevelSpread is the +/- range around the pet's level when a wild
	// opponent is synthesized.
	WildLevelSpread int `mapstructure:"wild_level_spread"`
}

// RewardConfig holds the reward constants for one battle context.
type RewardConfig struct {
	ExpPerLevel    int     `mapstructure:"exp_per_level"`
	CoinsPerLevel  int     `mapstructure:"coins_per_level"`
	ItemDropChance float64 `mapstructure:"item_drop_chance"`
}

// RewardsConfig parameterizes rewards per battle context. The constants are
// balance knobs, so they are configuration, not code.
type RewardsConfig struct {
	Wild        RewardConfig `mapstructure:"wild"`
	Duel        RewardConfig `mapstructure:"duel"`
	Exploration RewardConfig `mapstructure:"exploration"`
}

// Config is the top-level application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
	Rewards  RewardsConfig  `mapstructure:"rewards"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDatabase(c.Database); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRewards(c.Rewards); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.MaxBattleRounds < 1 {
		errs = append(errs, fmt.Sprintf("game.max_battle_rounds must be >= 1, got %d", g.MaxBattleRounds))
	}
	if g.SkillProcChance < 0 || g.SkillProcChance > 1 {
		errs = append(errs, fmt.Sprintf("game.skill_proc_chance must be in [0, 1], got %v", g.SkillProcChance))
	}
	if g.WildLevelSpread < 0 {
		errs = append(errs, fmt.Sprintf("game.wild_level_spread must be >= 0, got %d", g.WildLevelSpread))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateRewards(r RewardsConfig) error {
	var errs []string
	for name, rc := range map[string]RewardConfig{
		"rewards.wild":        r.Wild,
		"rewards.duel":        r.Duel,
		"rewards.exploration": r.Exploration,
	} {
		if rc.ExpPerLevel < 0 {
			errs = append(errs, fmt.Sprintf("%s.exp_per_level must be >= 0, got %d", name, rc.ExpPerLevel))
		}
		if rc.CoinsPerLevel < 0 {
			errs = append(errs, fmt.Sprintf("%s.coins_per_level must be >= 0, got %d", name, rc.CoinsPerLevel))
		}
		if rc.ItemDropChance < 0 || rc.ItemDropChance > 1 {
			errs = append(errs, fmt.Sprintf("%s.item_drop_chance must be in [0, 1], got %v", name, rc.ItemDropChance))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with PETHATCH_ prefix
	v.SetEnvPrefix("PETHATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "pethatch")
	v.SetDefault("database.password", "pethatch")
	v.SetDefault("database.name", "pethatch")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("game.species_dir", "content/species")
	v.SetDefault("game.max_battle_rounds", 100)
	v.SetDefault("game.skill_proc_chance", 0.30)
	v.SetDefault("game.wild_level_spread", 2)

	v.SetDefault("rewards.wild.exp_per_level", 20)
	v.SetDefault("rewards.wild.coins_per_level", 10)
	v.SetDefault("rewards.duel.exp_per_level", 30)
	v.SetDefault("rewards.duel.coins_per_level", 15)
	v.SetDefault("rewards.exploration.exp_per_level", 12)
	v.SetDefault("rewards.exploration.coins_per_level", 8)
	v.SetDefault("rewards.exploration.item_drop_chance", 0.25)
}
