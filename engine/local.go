package engine

import (
	"errors"
	"fmt"
	"time"

	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"
	"pandemic/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Step is one resolved action, reported to observers.
type Step struct {
	Number int
	Action game.Action
	Before game.Board
	After  game.Board
	Reward game.Reward
}

type Option func(e *LocalEngine)

// WithMaxSteps caps the number of actions played.
func WithMaxSteps(steps int) Option {
	return func(e *LocalEngine) {
		if steps > 0 {
			e.maxSteps = steps
		}
	}
}

// WithObserver registers a callback invoked after every action.
func WithObserver(observe func(Step)) Option {
	return func(e *LocalEngine) {
		if observe != nil {
			e.observers = append(e.observers, observe)
		}
	}
}

// WithName labels the planner in the game metrics.
func WithName(name string) Option {
	return func(e *LocalEngine) {
		e.name = name
	}
}

type LocalEngine struct {
	id        uuid.UUID
	name      string
	seed      uint64
	board     game.Board
	planner   searcher.Planner
	maxSteps  int
	observers []func(Step)
}

func NewLocalEngine(board game.Board, seed uint64, planner searcher.Planner, options ...Option) *LocalEngine {
	e := &LocalEngine{
		id:       uuid.New(),
		name:     fmt.Sprintf("%T", planner),
		seed:     seed,
		board:    board,
		planner:  planner,
		maxSteps: meta.MAX_STEPS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the current board, the final one once Run has returned.
func (e *LocalEngine) Board() game.Board {
	return e.board
}

func (e *LocalEngine) ID() uuid.UUID {
	return e.id
}

// Run starts the board if needed and asks the planner for every action. A
// planner error or an illegal choice falls back to the first legal action.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.id,
		Planner:   e.name,
		Seed:      e.seed,
		StartTime: time.Now(),
	}

	if e.board.Status().Kind == game.NotStarted {
		board, err := e.board.Start()
		if err != nil {
			return gameMetric, nil, fmt.Errorf("starting game %s: %w", e.id, err)
		}
		e.board = board
	}
	log.Info().Msgf("game %s: %s starts with %s", e.id, e.name, e.board.ActivePawn())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.board.Status().Terminal() && step < e.maxSteps {
		step++
		pawn := e.board.ActivePawn()

		action, search, err := e.plan()
		next, reward, err := e.execute(action, err)
		if errors.Is(err, errFallback) {
			gameMetric.Fallbacks++
			action = e.board.LegalActions()[0]
			next, reward, err = e.board.Execute(action)
		}
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("game %s step %d: %w", e.id, step, err)
		}
		log.Debug().Msgf("step %d: %s plays %s (%s)", step, pawn, action, reward)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Pawn:         pawn.String(),
			Action:       action.String(),
			SearchMetric: search,
		})
		for _, observe := range e.observers {
			observe(Step{Number: step, Action: action, Before: e.board, After: next, Reward: reward})
		}
		e.board = next
	}

	status := e.board.Status()
	if !status.Terminal() {
		log.Warn().Msgf("game %s stopped after %d steps without a result", e.id, step)
	}
	log.Info().Msgf("game %s: %s after %d steps with %d outbreaks", e.id, status, step, e.board.Outbreaks())

	gameMetric.Result = status.Kind.String()
	gameMetric.Reason = status.Reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Outbreaks = e.board.Outbreaks()
	gameMetric.Cured = len(e.board.CuredDiseases())
	return gameMetric, moveMetrics, nil
}

var errFallback = errors.New("falling back to the first legal action")

func (e *LocalEngine) plan() (game.Action, metrics.SearchMetric, error) {
	if s, ok := e.planner.(searcher.Searcher); ok {
		return s.Search(e.board)
	}
	action, err := e.planner.Plan(e.board)
	return action, metrics.SearchMetric{}, err
}

func (e *LocalEngine) execute(action game.Action, planErr error) (game.Board, game.Reward, error) {
	if planErr != nil {
		log.Warn().Err(planErr).Msg("planner failed")
		return e.board, game.Reward{}, errFallback
	}
	if action == nil {
		log.Warn().Msg("planner returned no action")
		return e.board, game.Reward{}, errFallback
	}
	next, reward, err := e.board.Execute(action)
	if errors.Is(err, game.ErrInvalidMove) {
		log.Warn().Err(err).Msgf("planner chose %s", action)
		return e.board, game.Reward{}, errFallback
	}
	return next, reward, err
}
