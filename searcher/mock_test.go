package searcher

import "pandemic/game"

// mockState is a hand-built game tree. Unknown actions are invalid moves.
type mockState struct {
	status  game.Status
	score   float64
	actions []game.Action
	next    map[game.Action]mockState
}

func (m mockState) LegalActions() []game.Action {
	if m.status.Terminal() {
		return nil
	}
	return m.actions
}

func (m mockState) Play(action game.Action) (game.State, game.Reward, error) {
	next, ok := m.next[action]
	if !ok {
		return m, game.Reward{}, game.ErrInvalidMove
	}
	return next, game.Reward{}, nil
}

func (m mockState) Status() game.Status {
	return m.status
}

func score(s game.State) float64 {
	return s.(mockState).score
}

func to(c game.City) game.Action {
	return game.Drive{To: c}
}

func won() mockState {
	return mockState{status: game.Win("test")}
}

func lost() mockState {
	return mockState{status: game.Loss("test")}
}

func inProgress() game.Status {
	return game.Status{Kind: game.InProgress}
}

// branch builds an in-progress state whose actions lead to children in order.
func branch(s float64, children ...mockState) mockState {
	m := mockState{status: inProgress(), score: s, next: map[game.Action]mockState{}}
	for i, child := range children {
		action := to(game.City(i))
		m.actions = append(m.actions, action)
		m.next[action] = child
	}
	return m
}

// loop is an in-progress state that passes forever.
func loop() mockState {
	m := mockState{status: inProgress(), actions: []game.Action{game.Pass{}}, next: map[game.Action]mockState{}}
	m.next[game.Pass{}] = m
	return m
}
