package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"videopoker-server/internal/util"
	"videopoker-server/pkg/playable/videopoker"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Video Poker
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game   Game `yaml:"game"`
	Server struct {
		Addr        string `yaml:"addr"`
		MaxSessions int    `yaml:"maxSessions" envconfig:"max_sessions"`
	} `yaml:"server"`
}

// Game configures a game of video poker
type Game struct {
	StartingBankroll   float64 `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	MinBet             float64 `yaml:"minBet" envconfig:"min_bet"`
	MaxBet             float64 `yaml:"maxBet" envconfig:"max_bet"`
	ReshuffleEachRound bool    `yaml:"reshuffleEachRound" envconfig:"reshuffle_each_round"`
	// Seed makes every shuffle reproducible; 0 uses crypto/rand
	Seed int64 `yaml:"seed"`
}

// Options returns the game options for this configuration
func (g Game) Options() videopoker.Options {
	opts := videopoker.DefaultOptions()
	opts.StartingBankroll = g.StartingBankroll
	opts.MinBet = g.MinBet
	opts.MaxBet = g.MaxBet
	opts.ReshuffleEachRound = g.ReshuffleEachRound

	return opts
}

var config Config

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Server.Addr = ":5000"
	c.Server.MaxSessions = 1000

	opts := videopoker.DefaultOptions()
	c.Game = Game{
		StartingBankroll:   opts.StartingBankroll,
		MinBet:             opts.MinBet,
		MaxBet:             opts.MaxBet,
		ReshuffleEachRound: opts.ReshuffleEachRound,
	}

	return c
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
// Values come from the defaults, then the config file, then a .env file, then the environment
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("VP_CONFIG_FILE", "config.yaml")
	if err := loadFile(configFile, &cfg); err != nil {
		return err
	}

	envFile := util.Getenv("VP_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("vp", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// loadFile decodes the yaml file over cfg; a missing file is not an error
func loadFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return err
	}

	return nil
}
