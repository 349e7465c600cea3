package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"videopoker-server/internal/config"
	"videopoker-server/internal/console"
	"videopoker-server/internal/rng"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable/videopoker"
	"videopoker-server/pkg/poker"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "play", "specifies the command (play, paytable, evaluate)")
var hand = flag.String("hand", "", "comma-separated card codes, i.e., s1,s13; dealt first when playing, evaluated with -c evaluate")
var seed = flag.Int64("seed", 0, "shuffle seed (overrides the configuration)")
var plain = flag.Bool("plain", false, "disable colored output")

func main() {
	flag.Parse()
	setupLogger()

	cards, err := deck.ParseCards(*hand)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse hand")
	}

	cfg := config.Instance()
	opts := cfg.Game.Options()

	switch *command {
	case "play":
		if *seed != 0 {
			cfg.Game.Seed = *seed
		}

		opts.TestHand = cards
		game, err := videopoker.NewGame(logrus.StandardLogger(), rng.New(cfg.Game.Seed), opts)
		if err != nil {
			logrus.WithError(err).Fatal("could not start game")
		}

		styled := !*plain && term.IsTerminal(int(os.Stdout.Fd()))
		if err := console.NewDriver(os.Stdin, os.Stdout, game, styled).Play(); err != nil {
			logrus.WithError(err).Fatal("could not play")
		}

	case "paytable":
		fmt.Print(console.PayTableString(opts.PayTable))

	case "evaluate":
		h, err := poker.Evaluate(cards)
		if err != nil {
			logrus.WithError(err).Fatal("could not evaluate hand")
		}

		fmt.Printf("%s: %s pays %d\n", console.FormatHand(cards), h, opts.PayTable.Multiplier(h))

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// setupLogger keeps the game logs off the console unless a level is configured
func setupLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if lvl := os.Getenv("VP_LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
