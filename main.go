package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pandemic/config"
	"pandemic/engine"
	"pandemic/experiments"
	"pandemic/game"
	"pandemic/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "play", "One of play, train or experiment")
	seed := flag.Uint64("seed", 0, "Seed overriding the config")
	verbose := flag.Bool("v", false, "Log every step")
	flag.Parse()

	c, err := loadConfig(*configPath, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(c, *verbose)

	switch *mode {
	case "play":
		err = play(c)
	case "train":
		err = train(c)
	case "experiment":
		err = experiment(c)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func loadConfig(path string, seed uint64) (*config.Config, error) {
	c := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	if seed != 0 {
		c.Seed = seed
	}
	return c, nil
}

func setupLogging(c *config.Config, verbose bool) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func newBoard(c *config.Config, seed uint64) (game.Board, error) {
	options, err := c.BoardOptions(seed)
	if err != nil {
		return game.Board{}, err
	}
	return game.NewBoard(options...)
}

func play(c *config.Config) error {
	utility, err := c.NewUtility()
	if err != nil {
		return err
	}
	planner, err := experiments.NewPlanner(c.Planner, utility, c.Seed)
	if err != nil {
		return err
	}
	board, err := newBoard(c, c.Seed)
	if err != nil {
		return err
	}

	r := newRenderer(os.Stdout)
	e := engine.NewLocalEngine(board, c.Seed, planner,
		engine.WithName(experiments.Label(c.Planner)),
		engine.WithObserver(func(s engine.Step) { fmt.Println(r.step(s)) }),
	)
	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(r.board(e.Board()))
	fmt.Printf("%d moves in %s, %d fallbacks\n", gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond), gameMetric.Fallbacks)
	return nil
}

func train(c *config.Config) error {
	utility, err := c.NewUtility()
	if err != nil {
		return err
	}
	newPlanner := func(u game.Utility, seed uint64) (searcher.Planner, error) {
		return experiments.NewPlanner(c.Planner, u, seed)
	}
	trainer := engine.NewTrainer(utility, c.Training.Episodes, c.Seed,
		func(seed uint64) (game.Board, error) { return newBoard(c, seed) },
		newPlanner,
	)

	episodes, err := trainer.Run()
	if err != nil {
		return err
	}
	wins := 0
	for _, episode := range episodes {
		if episode.Won() {
			wins++
		}
	}
	log.Info().Msgf("trained %d episodes, won %d", len(episodes), wins)

	learned := trainer.Utility().Weights
	for f := game.Feature(0); f < game.NumFeatures; f++ {
		fmt.Printf("%-24s %.4f\n", f, learned[f])
	}
	return nil
}

func experiment(c *config.Config) error {
	result, err := experiments.Run(c)
	if err != nil {
		return err
	}
	dir, err := experiments.Write(c, "experiment", result)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored experiment in %s", dir)
	return nil
}
