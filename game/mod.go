package game

// State should be immutable - Play always returns a new copy and leaves the
// receiver untouched. Board is the implementation; planners only need this.
type State interface {
	LegalActions() []Action
	Play(Action) (State, Reward, error)
	Status() Status
}

// Evaluate scores a state; higher is better for the team.
type Evaluate func(State) float64
