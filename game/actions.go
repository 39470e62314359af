package game

import (
	"fmt"
)

// LegalActions returns every action the game accepts next. An in-progress
// board always has at least one. A board that has not been started has none
// since Start, not an action, moves it into play; terminal boards have none.
func (b Board) LegalActions() []Action {
	if b.status.Kind != InProgress {
		return nil
	}
	if i, ok := b.overLimit(); ok {
		return b.discardActions(i)
	}
	if b.drawPending {
		return []Action{DrawAndInfect{}}
	}

	actor := b.turn.Active()
	actions := b.pawnActions(actor)
	if b.pawns[actor].Role == Dispatcher {
		actions = append(actions, b.dispatcherActions(actor)...)
	}
	return append(actions, Pass{})
}

func (b Board) discardActions(i int) []Action {
	var actions []Action
	for _, card := range b.hands[i] {
		action := Discard{Pawn: b.pawns[i], Card: card}
		if !containsAction(actions, action) {
			actions = append(actions, action)
		}
	}
	return actions
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// movementActions generates every move available to pawn i.
func (b Board) movementActions(i int) []Action {
	var actions []Action
	here := b.locations[i]
	hand := b.hands[i]

	for _, city := range Neighbors(here) {
		actions = append(actions, Drive{To: city})
	}
	for _, card := range hand {
		if !card.IsEpidemic() && card.City() != here {
			actions = append(actions, DirectFlight{To: card.City()})
		}
	}
	if hand.Contains(CityCard(here)) {
		for _, city := range Cities() {
			if city != here {
				actions = append(actions, CharterFlight{To: city})
			}
		}
	}
	if b.graph.HasResearchStation(here) {
		for _, city := range b.graph.ResearchStations() {
			if city != here {
				actions = append(actions, ShuttleFlight{To: city})
			}
		}
	}
	return actions
}

// pawnActions generates every non-dispatcher action available to pawn i.
func (b Board) pawnActions(i int) []Action {
	actions := b.movementActions(i)
	here := b.locations[i]
	pawn := b.pawns[i]
	hand := b.hands[i]

	if !b.graph.HasResearchStation(here) && (pawn.Role == OperationsExpert || hand.Contains(CityCard(here))) {
		actions = append(actions, BuildResearchStation{})
	}
	for _, color := range Colors() {
		if b.graph.CubeCount(here, color) > 0 {
			actions = append(actions, Treat{Color: color})
		}
	}
	if b.graph.HasResearchStation(here) {
		for _, color := range b.UncuredDiseases() {
			if len(hand.OfColor(color)) >= b.rules.CureThreshold(pawn) {
				actions = append(actions, Cure{Color: color})
			}
		}
	}
	for j, other := range b.pawns {
		if j == i || b.locations[j] != here {
			continue
		}
		for _, card := range hand {
			if canShare(pawn, card, here) {
				actions = append(actions, ShareKnowledge{Card: card, With: other})
			}
		}
		for _, card := range b.hands[j] {
			if canShare(other, card, here) {
				actions = append(actions, ShareKnowledge{Card: card, With: other})
			}
		}
	}
	return actions
}

// canShare reports whether giver may hand card over while standing in here.
func canShare(giver Pawn, card Card, here City) bool {
	if card.IsEpidemic() {
		return false
	}
	return giver.Role == Researcher || card == CityCard(here)
}

func (b Board) dispatcherActions(actor int) []Action {
	var actions []Action
	for j, other := range b.pawns {
		if j == actor {
			continue
		}
		for _, move := range b.movementActions(j) {
			actions = append(actions, DispatcherControl{Pawn: other, Action: move})
		}
	}
	for i, pawn := range b.pawns {
		for j, to := range b.pawns {
			if i != j && b.locations[i] != b.locations[j] {
				actions = append(actions, DispatcherSnap{Pawn: pawn, To: to})
			}
		}
	}
	return actions
}

// Execute resolves action for the active pawn and returns the next state.
// Illegal actions return ErrInvalidMove and the unchanged board.
func (b Board) Execute(action Action) (Board, Reward, error) {
	if b.status.Kind != InProgress {
		return b, Reward{}, fmt.Errorf("%w: game is %s", ErrInvalidMove, b.status.Kind)
	}

	if discard, ok := action.(Discard); ok {
		return b.discard(discard)
	}
	if i, ok := b.overLimit(); ok {
		return b, Reward{}, fmt.Errorf("%w: %s must discard first", ErrInvalidMove, b.pawns[i])
	}

	if _, ok := action.(DrawAndInfect); ok {
		if !b.drawPending {
			return b, Reward{}, fmt.Errorf("%w: %d actions left before drawing", ErrInvalidMove, b.turn.ActionsLeft())
		}
		next, reward := b.clone().drawAndInfect()
		return next, reward, nil
	}
	if b.drawPending {
		return b, Reward{}, fmt.Errorf("%w: %s after the last action, draw and infect first", ErrInvalidMove, action)
	}

	next, reward, err := b.clone().perform(b.turn.Active(), action)
	if err != nil {
		return b, Reward{}, err
	}
	next.turn = next.turn.Next()
	next.drawPending = next.turn.Active() != b.turn.Active()
	return next, reward, nil
}

// perform applies action as pawn i on a board already cloned for writing.
func (b Board) perform(i int, action Action) (Board, Reward, error) {
	here := b.locations[i]
	pawn := b.pawns[i]

	switch a := action.(type) {
	case Drive:
		if !a.To.Valid() || !b.graph.IsAdjacent(here, a.To) {
			return b, Reward{}, fmt.Errorf("%w: %s is not adjacent to %s", ErrInvalidMove, a.To, here)
		}
		b.locations[i] = a.To

	case DirectFlight:
		if !a.To.Valid() || a.To == here {
			return b, Reward{}, fmt.Errorf("%w: cannot fly to %s", ErrInvalidMove, a.To)
		}
		if err := b.spend(i, CityCard(a.To)); err != nil {
			return b, Reward{}, err
		}
		b.locations[i] = a.To

	case CharterFlight:
		if !a.To.Valid() || a.To == here {
			return b, Reward{}, fmt.Errorf("%w: cannot charter to %s", ErrInvalidMove, a.To)
		}
		if err := b.spend(i, CityCard(here)); err != nil {
			return b, Reward{}, err
		}
		b.locations[i] = a.To

	case ShuttleFlight:
		if !a.To.Valid() || a.To == here || !b.graph.HasResearchStation(here) || !b.graph.HasResearchStation(a.To) {
			return b, Reward{}, fmt.Errorf("%w: no shuttle between %s and %s", ErrInvalidMove, here, a.To)
		}
		b.locations[i] = a.To

	case BuildResearchStation:
		if b.graph.HasResearchStation(here) {
			return b, Reward{}, fmt.Errorf("%w: %s already has a research station", ErrInvalidMove, here)
		}
		if pawn.Role != OperationsExpert {
			if err := b.spend(i, CityCard(here)); err != nil {
				return b, Reward{}, err
			}
		}
		b.graph = b.graph.AddResearchStation(here)

	case Treat:
		if a.Color < 0 || int(a.Color) >= NumColors || b.graph.CubeCount(here, a.Color) == 0 {
			return b, Reward{}, fmt.Errorf("%w: no %s cubes in %s", ErrInvalidMove, a.Color, here)
		}
		graph, err := b.graph.RemoveCubes(1, a.Color, here)
		if err != nil {
			return b, Reward{}, err
		}
		b.graph = graph
		return b, Reward{Kind: TreatedDiseaseReward}, nil

	case Cure:
		return b.cure(i, a.Color)

	case ShareKnowledge:
		return b.share(i, a)

	case Pass:

	case DispatcherControl:
		if pawn.Role != Dispatcher {
			return b, Reward{}, fmt.Errorf("%w: %s is not the dispatcher", ErrInvalidMove, pawn)
		}
		j, err := b.pawnIndex(a.Pawn)
		if err != nil || j == i {
			return b, Reward{}, fmt.Errorf("%w: cannot dispatch %s", ErrInvalidMove, a.Pawn)
		}
		switch a.Action.(type) {
		case Drive, DirectFlight, CharterFlight, ShuttleFlight:
			return b.perform(j, a.Action)
		default:
			return b, Reward{}, fmt.Errorf("%w: cannot dispatch %v", ErrInvalidMove, a.Action)
		}

	case DispatcherSnap:
		if pawn.Role != Dispatcher {
			return b, Reward{}, fmt.Errorf("%w: %s is not the dispatcher", ErrInvalidMove, pawn)
		}
		from, err := b.pawnIndex(a.Pawn)
		if err != nil {
			return b, Reward{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
		}
		to, err := b.pawnIndex(a.To)
		if err != nil {
			return b, Reward{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
		}
		if from == to || b.locations[from] == b.locations[to] {
			return b, Reward{}, fmt.Errorf("%w: %s is already with %s", ErrInvalidMove, a.Pawn, a.To)
		}
		b.locations[from] = b.locations[to]

	default:
		return b, Reward{}, fmt.Errorf("%w: %v", ErrInvalidMove, action)
	}
	return b, Reward{}, nil
}

// spend moves cards from pawn i's hand to the player discard pile.
func (b *Board) spend(i int, cards ...Card) error {
	hand, err := b.hands[i].Remove(cards...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	b.hands[i] = hand
	b.playerDeck = b.playerDeck.Discard(cards...)
	return nil
}

func (b Board) cure(i int, color Color) (Board, Reward, error) {
	if color < 0 || int(color) >= NumColors || b.cured[color] {
		return b, Reward{}, fmt.Errorf("%w: %s cannot be cured", ErrInvalidMove, color)
	}
	here := b.locations[i]
	if !b.graph.HasResearchStation(here) {
		return b, Reward{}, fmt.Errorf("%w: no research station in %s", ErrInvalidMove, here)
	}
	threshold := b.rules.CureThreshold(b.pawns[i])
	cards := b.hands[i].OfColor(color)
	if len(cards) < threshold {
		return b, Reward{}, fmt.Errorf("%w: %d of %d %s cards", ErrInvalidMove, len(cards), threshold, color)
	}
	if err := b.spend(i, cards[:threshold]...); err != nil {
		return b, Reward{}, err
	}

	b.cured[color] = true
	if len(b.UncuredDiseases()) == 0 {
		b.status = Win("all diseases cured")
	}
	return b, Reward{Kind: CuredDiseaseReward}, nil
}

// share moves the card from whichever of the two pawns holds it. Only a
// researcher may give away a card other than the city both stand in.
func (b Board) share(i int, a ShareKnowledge) (Board, Reward, error) {
	j, err := b.pawnIndex(a.With)
	if err != nil || j == i {
		return b, Reward{}, fmt.Errorf("%w: cannot share with %s", ErrInvalidMove, a.With)
	}
	here := b.locations[i]
	if b.locations[j] != here {
		return b, Reward{}, fmt.Errorf("%w: %s is not in %s", ErrInvalidMove, a.With, here)
	}

	giver, taker := i, j
	if !b.hands[i].Contains(a.Card) {
		giver, taker = j, i
	}
	if !b.hands[giver].Contains(a.Card) {
		return b, Reward{}, fmt.Errorf("%w: nobody holds %s", ErrInvalidMove, a.Card)
	}
	if !canShare(b.pawns[giver], a.Card, here) {
		return b, Reward{}, fmt.Errorf("%w: %s cannot give %s in %s", ErrInvalidMove, b.pawns[giver], a.Card, here)
	}

	hand, err := b.hands[giver].Remove(a.Card)
	if err != nil {
		return b, Reward{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	b.hands[giver] = hand
	b.hands[taker] = b.hands[taker].Add(a.Card)
	return b, Reward{Kind: SharedKnowledgeReward}, nil
}

func (b Board) discard(a Discard) (Board, Reward, error) {
	i, err := b.pawnIndex(a.Pawn)
	if err != nil {
		return b, Reward{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if !b.hands[i].AtLimit() {
		return b, Reward{}, fmt.Errorf("%w: %s is within the hand limit", ErrInvalidMove, a.Pawn)
	}
	b = b.clone()
	if err := b.spend(i, a.Card); err != nil {
		return b, Reward{}, err
	}
	return b, Reward{}, nil
}

// drawAndInfect finishes the turn of the pawn whose actions are spent.
// Running out of either deck, too many outbreaks, or an empty cube supply end
// the game in a loss.
func (b Board) drawAndInfect() (Board, Reward) {
	actor := b.actor()
	before := b.outbreaks

	drawn, deck, err := b.playerDeck.Draw(2)
	if err != nil {
		b.status = Loss("player deck exhausted")
		return b, Reward{}
	}
	b.playerDeck = deck

	for _, card := range drawn {
		if !card.IsEpidemic() {
			b.hands[actor] = b.hands[actor].Add(card)
			continue
		}
		b.playerDeck = b.playerDeck.Discard(card)
		b = b.epidemic()
		if b.status.Terminal() {
			return b, outbreakReward(b.outbreaks - before)
		}
	}

	b = b.infect()
	if !b.status.Terminal() {
		b.drawPending = false
	}
	return b, outbreakReward(b.outbreaks - before)
}

func outbreakReward(n int) Reward {
	if n == 0 {
		return Reward{}
	}
	return Reward{Kind: OutbreakReward, Outbreaks: n}
}

// epidemic raises the infection rate, places three cubes on the city at the
// bottom of the infection pile, and restacks the discard pile on top.
func (b Board) epidemic() Board {
	card, pile, err := b.infection.Epidemic(b.rng())
	if err != nil {
		b.status = Loss("infection pile exhausted during epidemic")
		return b
	}
	if card.IsEpidemic() {
		// Should never happen: the infection pile only holds city cards.
		b.status = Loss("epidemic card at the bottom of the infection pile")
		return b
	}

	b.infection = pile
	b.rate = b.rate.next()
	outbreaks, graph := b.graph.Place(3, card.Color(), card.City())
	b.graph = graph
	b.outbreaks += outbreaks.Len()
	return b.checkLoss()
}

// infect draws as many infection cards as the rate demands and places one
// cube on each, sharing the outbreak set across the draw. It stops at the
// first placement that loses the game.
func (b Board) infect() Board {
	drawn, pile, err := b.infection.Draw(b.rules.CardsToDraw(b.rate))
	if err != nil {
		b.status = Loss("infection pile exhausted")
		return b
	}

	var seen Outbreaks
	for _, card := range drawn {
		if card.IsEpidemic() {
			continue
		}
		previous := seen.Len()
		seen, b.graph = b.graph.place(1, card.Color(), card.City(), seen)
		b.outbreaks += seen.Len() - previous
		if b = b.checkLoss(); b.status.Terminal() {
			break
		}
	}
	b.infection = pile.Discard(drawn...)
	return b
}
