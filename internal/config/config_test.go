package config

import (
	"os"
	"testing"
	"videopoker-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("VP_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("VP_ENV_FILE", "testdata/missing.env")()
	defer util.SetEnv("VP_SERVER_ADDR", ":9090")()
	config.loaded = false

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal(100.0, cfg.Game.StartingBankroll)
	a.Equal(10.0, cfg.Game.MaxBet)
	a.Equal(1.0, cfg.Game.MinBet)
	a.Equal(int64(42), cfg.Game.Seed)
	a.True(cfg.Game.ReshuffleEachRound)
	a.Equal(":9090", cfg.Server.Addr)
	a.Equal(1000, cfg.Server.MaxSessions)

	// ensure that it's only loaded once
	_ = os.Setenv("VP_SERVER_ADDR", ":7070")
	// ensure we aren't using a pointer
	cfg.Server.Addr = "bad"
	cfg = Instance()
	a.Equal(":9090", cfg.Server.Addr)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("VP_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("VP_ENV_FILE", "testdata/missing.env")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Game, cfg.Game)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_envFile(t *testing.T) {
	defer util.SetEnv("VP_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("VP_ENV_FILE", "testdata/test.env")()
	defer func() { _ = os.Unsetenv("VP_GAME_MIN_BET") }()

	assert.NoError(t, Load())
	assert.Equal(t, 2.0, Instance().Game.MinBet)
}

func TestGame_Options(t *testing.T) {
	g := DefaultConfig().Game
	g.StartingBankroll = 20
	g.MaxBet = 2
	g.ReshuffleEachRound = false

	opts := g.Options()
	assert.Equal(t, 20.0, opts.StartingBankroll)
	assert.Equal(t, 1.0, opts.MinBet)
	assert.Equal(t, 2.0, opts.MaxBet)
	assert.False(t, opts.ReshuffleEachRound)
	assert.NotNil(t, opts.PayTable)
}
