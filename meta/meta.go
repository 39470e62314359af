// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per decision.
const ITERATIONS = 10

// MAX_STEPS caps the number of actions in one game.
const MAX_STEPS = 5000

// TRAINING_EPISODES defines the number of games per training run.
const TRAINING_EPISODES = 10
