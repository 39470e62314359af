package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

type Role int

const (
	Dispatcher Role = iota
	OperationsExpert
	Scientist
	Researcher
	Medic
	QuarantineSpecialist
	ContingencyPlanner
)

var roleNames = []string{
	"dispatcher",
	"operations_expert",
	"scientist",
	"researcher",
	"medic",
	"quarantine_specialist",
	"contingency_planner",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole maps a snake_case role name to its Role.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if strings.EqualFold(n, name) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Pawn is a player piece, identified by its role.
type Pawn struct {
	Role Role
}

func (p Pawn) String() string {
	return p.Role.String()
}

// ActionsPerTurn is the action budget before the forced draw and infect step.
const ActionsPerTurn = 4

// Turn tracks whose turn it is and how many actions they have left. The
// action that spends the last of the budget hands the turn to the next pawn
// with a full budget.
type Turn struct {
	pawns       int
	active      int
	actionsLeft int
}

// NewTurn starts with a random pawn and a full action budget.
func NewTurn(pawns int, rng *rand.Rand) Turn {
	return Turn{pawns: pawns, active: rng.Intn(pawns), actionsLeft: ActionsPerTurn}
}

// Active is the index of the pawn whose turn it is.
func (t Turn) Active() int {
	return t.active
}

func (t Turn) ActionsLeft() int {
	return t.actionsLeft
}

// Next spends one action. Spending the last one moves to the next pawn.
func (t Turn) Next() Turn {
	t.actionsLeft--
	if t.actionsLeft <= 0 {
		t.active = (t.active + 1) % t.pawns
		t.actionsLeft = ActionsPerTurn
	}
	return t
}

// previous is the index of the pawn before the active one.
func (t Turn) previous() int {
	return (t.active + t.pawns - 1) % t.pawns
}
