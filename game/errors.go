package game

import "errors"

var (
	// ErrInvalidMove is returned when an action fails one of its preconditions.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidPawn is returned when a query names a pawn that is not in the game.
	ErrInvalidPawn = errors.New("invalid pawn")
	// ErrInsufficientCards is returned on deck underflow or an inconsistent discard.
	ErrInsufficientCards = errors.New("insufficient cards")
)
