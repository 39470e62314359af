package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// InfectionRate is the position on the infection rate track, 1 to 7.
type InfectionRate int

const MaxInfectionRate InfectionRate = 7

func (r InfectionRate) next() InfectionRate {
	return min(r+1, MaxInfectionRate)
}

// setupInfections is the number of infection cards drawn at game start.
const setupInfections = 9

type settings struct {
	seed  uint64
	roles []Role
	rules Rules
}

type Option func(s *settings)

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithRoles(roles ...Role) Option {
	return func(s *settings) {
		if len(roles) > 0 {
			s.roles = roles
		}
	}
}

func WithRules(rules Rules) Option {
	return func(s *settings) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// Board represents the state of the game at any point. It is a value: every
// transition returns a new Board and shares nothing mutable with the old one.
type Board struct {
	rules       Rules
	graph       Graph
	pawns       []Pawn
	locations   []City // indexed like pawns
	hands       []Hand // indexed like pawns
	playerDeck  PlayerDeck
	infection   InfectionPile
	rate        InfectionRate
	outbreaks   int
	cured       [NumColors]bool
	status      Status
	turn        Turn
	drawPending bool   // the previous pawn still owes the draw and infect step
	seed        uint64 // advanced on every reshuffle, so Execute is pure
}

// NewBoard deals a fresh game: every pawn at the start city, starting hands
// dealt from the shuffled city cards, the rest of the city cards plus the
// epidemics in the player deck, and all city cards in the infection pile.
func NewBoard(options ...Option) (Board, error) {
	s := &settings{
		seed:  uint64(time.Now().UnixNano()),
		roles: []Role{Dispatcher, OperationsExpert, Scientist, Researcher},
		rules: NewStandardRules(),
	}
	for _, option := range options {
		option(s)
	}

	if len(s.roles) < 2 || len(s.roles) > 4 {
		return Board{}, fmt.Errorf("%w: need 2 to 4 pawns, got %d", ErrInvalidPawn, len(s.roles))
	}
	pawns := make([]Pawn, 0, len(s.roles))
	for _, role := range s.roles {
		pawn := Pawn{Role: role}
		if slices.Contains(pawns, pawn) {
			return Board{}, fmt.Errorf("%w: duplicate role %s", ErrInvalidPawn, role)
		}
		pawns = append(pawns, pawn)
	}

	rng := rand.New(rand.NewSource(s.seed))

	cards := CityCards()
	shuffle(cards, rng)
	perPawn := 6 - len(pawns)
	hands := make([]Hand, len(pawns))
	locations := make([]City, len(pawns))
	for i := range pawns {
		hands[i] = Hand(slices.Clone(cards[i*perPawn : (i+1)*perPawn]))
		locations[i] = StartCity
	}
	rest := cards[len(pawns)*perPawn:]

	b := Board{
		rules:      s.rules,
		graph:      NewGraph(),
		pawns:      pawns,
		locations:  locations,
		hands:      hands,
		playerDeck: NewPlayerDeck(rest, s.rules.Epidemics(), rng),
		infection:  NewInfectionPile(CityCards(), rng),
		rate:       1,
		status:     Status{Kind: NotStarted},
		turn:       NewTurn(len(pawns), rng),
	}
	b.seed = rng.Uint64()
	return b, nil
}

// Start infects the first nine cities (three cubes on three cities, two on
// the next three, one on the last three) and opens the start city's station.
func (b Board) Start() (Board, error) {
	if b.status.Kind != NotStarted {
		return b, fmt.Errorf("%w: game already %s", ErrInvalidMove, b.status.Kind)
	}

	drawn, infection, err := b.infection.Draw(setupInfections)
	if err != nil {
		b.status = Loss("infection pile exhausted during setup")
		return b, nil
	}
	placements := make([]Placement, 0, len(drawn))
	for i, card := range drawn {
		if card.IsEpidemic() {
			b.status = Loss("epidemic drawn during setup")
			return b, nil
		}
		placements = append(placements, Placement{City: card.City(), Color: card.Color(), Count: 3 - i/3})
	}

	outbreaks, graph := b.graph.PlaceAll(placements)
	if outbreaks.Len() > 0 {
		log.Warn().Msgf("setup caused outbreaks in %s", outbreaks)
		b.outbreaks += outbreaks.Len()
	}
	b.graph = graph.AddResearchStation(StartCity)
	b.infection = infection.Discard(drawn...)
	b.status = Status{Kind: InProgress}
	return b.checkLoss(), nil
}

func (b Board) Status() Status {
	return b.status
}

func (b Board) Graph() Graph {
	return b.graph
}

func (b Board) Rules() Rules {
	return b.rules
}

// Pawns returns the pawns in turn order.
func (b Board) Pawns() []Pawn {
	return slices.Clone(b.pawns)
}

// ActivePawn is the pawn acting next. While the draw and infect step is
// pending it is the pawn whose actions are spent.
func (b Board) ActivePawn() Pawn {
	return b.pawns[b.actor()]
}

func (b Board) actor() int {
	if b.drawPending {
		return b.turn.previous()
	}
	return b.turn.Active()
}

func (b Board) Turn() Turn {
	return b.turn
}

// ActionsLeft is 0 when only the draw and infect step remains.
func (b Board) ActionsLeft() int {
	if b.drawPending {
		return 0
	}
	return b.turn.ActionsLeft()
}

func (b Board) Location(p Pawn) (City, error) {
	i, err := b.pawnIndex(p)
	if err != nil {
		return NoCity, err
	}
	return b.locations[i], nil
}

func (b Board) Hand(p Pawn) (Hand, error) {
	i, err := b.pawnIndex(p)
	if err != nil {
		return nil, err
	}
	return b.hands[i], nil
}

func (b Board) PlayerDeck() PlayerDeck {
	return b.playerDeck
}

func (b Board) InfectionPile() InfectionPile {
	return b.infection
}

func (b Board) InfectionRate() InfectionRate {
	return b.rate
}

func (b Board) Outbreaks() int {
	return b.outbreaks
}

func (b Board) MaxOutbreaks() int {
	return b.rules.MaxOutbreaks()
}

func (b Board) CubesRemaining(color Color) int {
	return b.graph.CubesRemaining(color)
}

func (b Board) IsCured(color Color) bool {
	return b.cured[color]
}

func (b Board) CuredDiseases() []Color {
	var cured []Color
	for _, color := range Colors() {
		if b.cured[color] {
			cured = append(cured, color)
		}
	}
	return cured
}

func (b Board) UncuredDiseases() []Color {
	var uncured []Color
	for _, color := range Colors() {
		if !b.cured[color] {
			uncured = append(uncured, color)
		}
	}
	return uncured
}

func (b Board) pawnIndex(p Pawn) (int, error) {
	for i, pawn := range b.pawns {
		if pawn == p {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s is not in the game", ErrInvalidPawn, p)
}

// overLimit returns the first pawn holding more cards than the hand limit.
func (b Board) overLimit() (int, bool) {
	for i, hand := range b.hands {
		if hand.AtLimit() {
			return i, true
		}
	}
	return -1, false
}

// clone copies the per-pawn slices so that the copy can be written to.
func (b Board) clone() Board {
	b.locations = slices.Clone(b.locations)
	b.hands = slices.Clone(b.hands)
	return b
}

// rng returns a generator for the next reshuffle and advances the seed.
func (b *Board) rng() *rand.Rand {
	rng := rand.New(rand.NewSource(b.seed))
	b.seed = rng.Uint64()
	return rng
}

// checkLoss moves the game to Lost when the outbreak track or the cube
// supply has run out.
func (b Board) checkLoss() Board {
	switch {
	case b.outbreaks > b.rules.MaxOutbreaks():
		b.status = Loss(fmt.Sprintf("%d outbreaks exceed the maximum of %d", b.outbreaks, b.rules.MaxOutbreaks()))
	case !b.graph.HasValidCubeCount():
		b.status = Loss("cube supply exhausted")
	}
	return b
}

// Play implements State.
func (b Board) Play(action Action) (State, Reward, error) {
	next, reward, err := b.Execute(action)
	if err != nil {
		return b, reward, err
	}
	return next, reward, nil
}
