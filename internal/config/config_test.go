package config

import (
	"os"
	"testing"
	"time"

	"seotda-server/internal/util"
	"seotda-server/pkg/playable/seotda"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("SEOTDA_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("SEOTDA_GAME_ANTE", "200")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("postgres://seotda@db:5432/seotda?sslmode=disable", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("bonus", cfg.Game.Rules)
	a.Equal(time.Second*45, cfg.Game.TurnTimeout)
	a.Equal(200, cfg.Game.Ante)

	// defaults survive for anything the file leaves out
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal(10000, cfg.Game.StartingChips)

	// ensure that it's only loaded once
	_ = os.Setenv("SEOTDA_GAME_ANTE", "300")
	// ensure we aren't using a pointer
	cfg.Game.Ante = 1
	cfg = Instance()
	a.Equal(200, cfg.Game.Ante)
}

func TestLoad_MissingFile(t *testing.T) {
	defer util.SetEnv("SEOTDA_CONFIG_FILE", "testdata/nope.yaml")()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":5000", cfg.Addr)
	a.Equal("info", cfg.Log.Level)
	a.Equal(time.Second*3, cfg.StartGameDelay)
}

func TestLoad_BadEnv(t *testing.T) {
	defer util.SetEnv("SEOTDA_CONFIG_FILE", "testdata/nope.yaml")()
	defer util.SetEnv("SEOTDA_GAME_TURN_TIMEOUT", "soon")()

	assert.Error(t, Load())
}

func TestConfig_GameOptions(t *testing.T) {
	a := assert.New(t)
	cfg := DefaultConfig()
	opts := cfg.GameOptions()
	a.NoError(opts.Validate())
	a.Equal(seotda.RuleSetStandard, opts.Rules)
	a.Equal(time.Second*30, opts.TurnTimeout)

	cfg.Game.Rules = "house"
	a.EqualError(cfg.GameOptions().Validate(), "unknown rule set: house")
}
