package metrics

import (
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Duration     time.Duration
	Iterations   int
	Cutoff       int
	Exploration  float64
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Pawn   string
	Action string
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Planner    string
	Seed       uint64
	Result     string // won, lost or in progress when the step cap was hit
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Outbreaks  int
	Cured      int
	Fallbacks  int // moves the planner failed to provide
}

// Won reports whether the game ended in a win.
func (g GameMetric) Won() bool {
	return g.Result == "won"
}

type Collector interface {
	Start(iterations, cutoff int, exploration float64)
	AddFullPlayout()
	AddIteration()
	Complete() SearchMetric
}

type collector struct {
	iterations   int
	cutoff       int
	exploration  float64
	startTime    time.Time
	completed    int
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations, cutoff int, exploration float64) {
	m.startTime = time.Now()
	m.iterations = iterations
	m.cutoff = cutoff
	m.exploration = exploration
	m.completed = 0
	m.fullPlayouts = 0
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddIteration() {
	m.completed++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Iterations:   m.completed,
		Cutoff:       m.cutoff,
		Exploration:  m.exploration,
		FullPlayouts: m.fullPlayouts,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations, cutoff int, exploration float64) {}
func (m *dummyCollector) AddFullPlayout()                                   {}
func (m *dummyCollector) AddIteration()                                     {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
