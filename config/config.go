package config

import (
	"errors"
	"fmt"
	"os"

	"pandemic/game"
	"pandemic/meta"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed       uint64           `yaml:"seed"`
	Log        LogConfig        `yaml:"log"`
	Game       GameConfig       `yaml:"game"`
	Planner    PlannerConfig    `yaml:"planner"`
	Utility    UtilityConfig    `yaml:"utility"`
	Training   TrainingConfig   `yaml:"training"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type GameConfig struct {
	Epidemics    int      `yaml:"epidemics"`
	MaxOutbreaks int      `yaml:"max_outbreaks"`
	Roles        []string `yaml:"roles"`
}

type PlannerConfig struct {
	Kind        string  `yaml:"kind"` // mcts, greedy, turn_greedy, random or first
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Cutoff      int     `yaml:"cutoff"`
	Rollout     string  `yaml:"rollout"` // planner kind used for MCTS rollouts
	Depth       int     `yaml:"depth"`   // turn-greedy lookahead cap, 0 for the whole turn
}

type UtilityConfig struct {
	LearningRate float64            `yaml:"learning_rate"`
	Weights      map[string]float64 `yaml:"weights"`
}

type TrainingConfig struct {
	Episodes int `yaml:"episodes"`
}

type ExperimentConfig struct {
	Games     int             `yaml:"games"`
	OutputDir string          `yaml:"output_dir"`
	Planners  []PlannerConfig `yaml:"planners"`
}

// Planner kinds
const (
	MCTS       = "mcts"
	Greedy     = "greedy"
	TurnGreedy = "turn_greedy"
	Random     = "random"
	FirstLegal = "first"
)

var kinds = []string{MCTS, Greedy, TurnGreedy, Random, FirstLegal}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (p *PlannerConfig) ApplyDefaults() {
	if p.Kind == "" {
		p.Kind = MCTS
	}
	if p.Iterations == 0 {
		p.Iterations = meta.ITERATIONS
	}
	if p.Exploration == 0 {
		p.Exploration = 1.0
	}
	if p.Rollout == "" {
		p.Rollout = Greedy
	}
}

func (c *Config) ApplyDefaults() {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	standard := game.NewStandardRules()
	if c.Game.Epidemics == 0 {
		c.Game.Epidemics = standard.Epidemics()
	}
	if c.Game.MaxOutbreaks == 0 {
		c.Game.MaxOutbreaks = standard.MaxOutbreaks()
	}
	if len(c.Game.Roles) == 0 {
		c.Game.Roles = []string{"dispatcher", "operations_expert", "scientist", "researcher"}
	}
	c.Planner.ApplyDefaults()
	if c.Utility.LearningRate == 0 {
		c.Utility.LearningRate = game.DefaultLearningRate
	}
	if c.Training.Episodes == 0 {
		c.Training.Episodes = meta.TRAINING_EPISODES
	}
	if c.Experiment.Games == 0 {
		c.Experiment.Games = 10
	}
	if c.Experiment.OutputDir == "" {
		c.Experiment.OutputDir = "out"
	}
	if len(c.Experiment.Planners) == 0 {
		c.Experiment.Planners = []PlannerConfig{{Kind: MCTS}, {Kind: Greedy}, {Kind: Random}, {Kind: FirstLegal}}
	}
	for i := range c.Experiment.Planners {
		c.Experiment.Planners[i].ApplyDefaults()
	}
}

// Load reads a YAML file, fills in defaults and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

func (p PlannerConfig) Validate() error {
	var errs []error
	if !isKind(p.Kind) {
		errs = append(errs, fmt.Errorf("unknown planner kind %q", p.Kind))
	}
	if p.Kind == MCTS && (p.Rollout == MCTS || !isKind(p.Rollout)) {
		errs = append(errs, fmt.Errorf("invalid rollout planner %q", p.Rollout))
	}
	if p.Iterations < 0 || p.Cutoff < 0 || p.Depth < 0 {
		errs = append(errs, errors.New("iterations, cutoff and depth cannot be negative"))
	}
	if p.Exploration < 0 {
		errs = append(errs, errors.New("exploration cannot be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Roles(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Game.Roles) < 2 || len(c.Game.Roles) > 4 {
		errs = append(errs, fmt.Errorf("need 2 to 4 roles, got %d", len(c.Game.Roles)))
	}
	if c.Game.Epidemics < 0 || c.Game.MaxOutbreaks < 0 {
		errs = append(errs, errors.New("epidemics and max outbreaks cannot be negative"))
	}
	if err := c.Planner.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Weights(); err != nil {
		errs = append(errs, err)
	}
	if c.Training.Episodes < 0 || c.Experiment.Games < 0 {
		errs = append(errs, errors.New("episodes and games cannot be negative"))
	}
	for _, p := range c.Experiment.Planners {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isKind(kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (c *Config) Roles() ([]game.Role, error) {
	roles := make([]game.Role, 0, len(c.Game.Roles))
	for _, name := range c.Game.Roles {
		role, err := game.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// Weights starts from the default weights and overrides the named features.
func (c *Config) Weights() (game.Weights, error) {
	weights := game.DefaultWeights()
	for name, w := range c.Utility.Weights {
		f, err := game.ParseFeature(name)
		if err != nil {
			return weights, err
		}
		weights[f] = w
	}
	return weights, nil
}

// NewUtility builds the evaluator from the utility section.
func (c *Config) NewUtility() (game.Utility, error) {
	weights, err := c.Weights()
	if err != nil {
		return game.Utility{}, err
	}
	u := game.NewUtility(weights)
	u.LearningRate = c.Utility.LearningRate
	return u, nil
}

// BoardOptions turns the game section into board options for seed.
func (c *Config) BoardOptions(seed uint64) ([]game.Option, error) {
	roles, err := c.Roles()
	if err != nil {
		return nil, err
	}
	rules := &game.StandardRules{EpidemicCards: c.Game.Epidemics, MaxOutbreakCount: c.Game.MaxOutbreaks}
	return []game.Option{game.WithSeed(seed), game.WithRoles(roles...), game.WithRules(rules)}, nil
}
