package game

import "fmt"

type StatusKind int

const (
	NotStarted StatusKind = iota
	InProgress
	Won
	Lost
)

var statusNames = []string{"not started", "in progress", "won", "lost"}

func (k StatusKind) String() string {
	if k < 0 || int(k) >= len(statusNames) {
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
	return statusNames[k]
}

// Status is the game phase. Won and Lost carry a reason and are terminal.
type Status struct {
	Kind   StatusKind
	Reason string
}

func Win(reason string) Status {
	return Status{Kind: Won, Reason: reason}
}

func Loss(reason string) Status {
	return Status{Kind: Lost, Reason: reason}
}

// Equal compares kinds only; two losses with different reasons are equal.
func (s Status) Equal(other Status) bool {
	return s.Kind == other.Kind
}

func (s Status) Terminal() bool {
	return s.Kind == Won || s.Kind == Lost
}

func (s Status) String() string {
	if s.Reason == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s (%s)", s.Kind, s.Reason)
}

type RewardKind int

const (
	NoReward RewardKind = iota
	CuredDiseaseReward
	OutbreakReward
	SharedKnowledgeReward
	TreatedDiseaseReward
)

// Reward classifies what an action did, for learning signals. It never
// changes the state.
type Reward struct {
	Kind      RewardKind
	Outbreaks int // only set for OutbreakReward
}

func (r Reward) String() string {
	switch r.Kind {
	case CuredDiseaseReward:
		return "cured disease"
	case OutbreakReward:
		return fmt.Sprintf("outbreak(%d)", r.Outbreaks)
	case SharedKnowledgeReward:
		return "shared knowledge"
	case TreatedDiseaseReward:
		return "treated disease"
	default:
		return "none"
	}
}
