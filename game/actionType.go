package game

import "fmt"

// ActionType represents the kind of action a pawn can perform.
type ActionType int

const (
	DriveAction ActionType = iota
	DirectFlightAction
	CharterFlightAction
	ShuttleFlightAction
	BuildResearchStationAction
	TreatAction
	CureAction
	ShareKnowledgeAction
	PassAction
	DrawAndInfectAction
	DiscardAction
	DispatcherControlAction
	DispatcherSnapAction
)

var actionTypeNames = []string{
	"drive",
	"direct flight",
	"charter flight",
	"shuttle flight",
	"build research station",
	"treat",
	"cure",
	"share knowledge",
	"pass",
	"draw and infect",
	"discard",
	"dispatcher control",
	"dispatcher snap",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionTypeNames) {
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
	return actionTypeNames[t]
}

// Action is a closed set of moves; only the types in this file implement it.
// Every action is a comparable value.
type Action interface {
	Type() ActionType
	String() string
	isAction()
}

type Drive struct{ To City }

type DirectFlight struct{ To City }

type CharterFlight struct{ To City }

type ShuttleFlight struct{ To City }

type BuildResearchStation struct{}

// Treat removes one cube of Color from the acting pawn's city. It is only
// legal while at least one such cube is there.
type Treat struct{ Color Color }

type Cure struct{ Color Color }

// ShareKnowledge moves Card between the acting pawn and With; whichever of
// the two holds the card gives it.
type ShareKnowledge struct {
	Card Card
	With Pawn
}

type Pass struct{}

// DrawAndInfect ends the turn: draw player cards, then infect.
type DrawAndInfect struct{}

// Discard drops a card from a hand over the limit. It does not spend an action.
type Discard struct {
	Pawn Pawn
	Card Card
}

// DispatcherControl executes Action as if Pawn were acting. Only movement
// (Drive, DirectFlight, CharterFlight, ShuttleFlight) may be dispatched.
type DispatcherControl struct {
	Pawn   Pawn
	Action Action
}

// DispatcherSnap moves Pawn to the city of To.
type DispatcherSnap struct {
	Pawn Pawn
	To   Pawn
}

func (Drive) Type() ActionType                { return DriveAction }
func (DirectFlight) Type() ActionType         { return DirectFlightAction }
func (CharterFlight) Type() ActionType        { return CharterFlightAction }
func (ShuttleFlight) Type() ActionType        { return ShuttleFlightAction }
func (BuildResearchStation) Type() ActionType { return BuildResearchStationAction }
func (Treat) Type() ActionType                { return TreatAction }
func (Cure) Type() ActionType                 { return CureAction }
func (ShareKnowledge) Type() ActionType       { return ShareKnowledgeAction }
func (Pass) Type() ActionType                 { return PassAction }
func (DrawAndInfect) Type() ActionType        { return DrawAndInfectAction }
func (Discard) Type() ActionType              { return DiscardAction }
func (DispatcherControl) Type() ActionType    { return DispatcherControlAction }
func (DispatcherSnap) Type() ActionType       { return DispatcherSnapAction }

func (Drive) isAction()                {}
func (DirectFlight) isAction()         {}
func (CharterFlight) isAction()        {}
func (ShuttleFlight) isAction()        {}
func (BuildResearchStation) isAction() {}
func (Treat) isAction()                {}
func (Cure) isAction()                 {}
func (ShareKnowledge) isAction()       {}
func (Pass) isAction()                 {}
func (DrawAndInfect) isAction()        {}
func (Discard) isAction()              {}
func (DispatcherControl) isAction()    {}
func (DispatcherSnap) isAction()       {}

func (a Drive) String() string         { return fmt.Sprintf("drive to %s", a.To) }
func (a DirectFlight) String() string  { return fmt.Sprintf("direct flight to %s", a.To) }
func (a CharterFlight) String() string { return fmt.Sprintf("charter flight to %s", a.To) }
func (a ShuttleFlight) String() string { return fmt.Sprintf("shuttle flight to %s", a.To) }
func (BuildResearchStation) String() string {
	return "build research station"
}
func (a Treat) String() string { return fmt.Sprintf("treat %s", a.Color) }
func (a Cure) String() string  { return fmt.Sprintf("cure %s", a.Color) }
func (a ShareKnowledge) String() string {
	return fmt.Sprintf("share %s with %s", a.Card, a.With)
}
func (Pass) String() string          { return "pass" }
func (DrawAndInfect) String() string { return "draw and infect" }
func (a Discard) String() string {
	return fmt.Sprintf("%s discards %s", a.Pawn, a.Card)
}
func (a DispatcherControl) String() string {
	return fmt.Sprintf("dispatch %s: %s", a.Pawn, a.Action)
}
func (a DispatcherSnap) String() string {
	return fmt.Sprintf("snap %s to %s", a.Pawn, a.To)
}
