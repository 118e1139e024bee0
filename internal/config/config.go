package config

import (
	"os"
	"time"

	"seotda-server/internal/util"
	"seotda-server/pkg/deck"
	"seotda-server/pkg/playable/seotda"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the seotda server
type Config struct {
	loaded         bool
	Addr           string `yaml:"addr" envconfig:"addr"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	// StartGameDelay is how long a created game waits before the first deal
	StartGameDelay time.Duration `yaml:"startGameDelay" envconfig:"start_game_delay"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		StartingChips  int           `yaml:"startingChips" envconfig:"starting_chips"`
		Ante           int           `yaml:"ante" envconfig:"ante"`
		MinimumHalf    int           `yaml:"minimumHalf" envconfig:"minimum_half"`
		Variant        string        `yaml:"variant" envconfig:"variant"`
		Rules          string        `yaml:"rules" envconfig:"rules"`
		TurnTimeout    time.Duration `yaml:"turnTimeout" envconfig:"turn_timeout"`
		RevealDelay    time.Duration `yaml:"revealDelay" envconfig:"reveal_delay"`
		NextRoundDelay time.Duration `yaml:"nextRoundDelay" envconfig:"next_round_delay"`
	} `yaml:"game"`
}

// EnvPrefix prefixes every environment variable, e.g. SEOTDA_GAME_ANTE
const EnvPrefix = "seotda"

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.MigrationsPath = "./sql"
	cfg.StartGameDelay = time.Second * 3
	cfg.Log.Level = "info"

	opts := seotda.DefaultOptions()
	cfg.Game.StartingChips = opts.StartingChips
	cfg.Game.Ante = opts.Ante
	cfg.Game.MinimumHalf = opts.MinimumHalf
	cfg.Game.Variant = string(opts.Variant)
	cfg.Game.Rules = string(opts.Rules)
	cfg.Game.TurnTimeout = time.Second * 30
	cfg.Game.RevealDelay = opts.RevealDelay
	cfg.Game.NextRoundDelay = opts.NextRoundDelay

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then config.yaml, then .env and the environment
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SEOTDA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	// a missing .env is fine
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the default options for new games
func (c Config) GameOptions() seotda.Options {
	return seotda.Options{
		StartingChips:  c.Game.StartingChips,
		Ante:           c.Game.Ante,
		MinimumHalf:    c.Game.MinimumHalf,
		Variant:        deck.Variant(c.Game.Variant),
		Rules:          seotda.RuleSetName(c.Game.Rules),
		TurnTimeout:    c.Game.TurnTimeout,
		RevealDelay:    c.Game.RevealDelay,
		NextRoundDelay: c.Game.NextRoundDelay,
	}
}
