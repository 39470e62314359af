package game

// Rules holds the tunable numbers of the game.
type Rules interface {
	Epidemics() int
	MaxOutbreaks() int
	CardsToDraw(rate InfectionRate) int
	CureThreshold(p Pawn) int
}
