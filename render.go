package main

import (
	"fmt"
	"io"
	"strings"

	"pandemic/engine"
	"pandemic/game"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
)

type renderer struct {
	au aurora.Aurora
}

// newRenderer colours output only when w is a terminal that supports it.
func newRenderer(w io.Writer) renderer {
	colors := termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
	return renderer{au: aurora.NewAurora(colors)}
}

func (r renderer) color(c game.Color, s string) string {
	switch c {
	case game.Red:
		return r.au.Red(s).String()
	case game.Yellow:
		return r.au.Yellow(s).String()
	case game.Blue:
		return r.au.Blue(s).String()
	default:
		return r.au.Gray(12, s).String()
	}
}

func (r renderer) status(s game.Status) string {
	switch s.Kind {
	case game.Won:
		return r.au.Bold(r.au.Green(s.String())).String()
	case game.Lost:
		return r.au.Bold(r.au.Red(s.String())).String()
	default:
		return s.String()
	}
}

func (r renderer) step(s engine.Step) string {
	pawn := s.Before.ActivePawn()
	line := fmt.Sprintf("%4d %-18s %s", s.Number, pawn, s.Action)
	if s.After.Outbreaks() > s.Before.Outbreaks() {
		line += " " + r.au.Red(fmt.Sprintf("outbreaks %d", s.After.Outbreaks())).String()
	}
	return line
}

func (r renderer) board(b game.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "status:      %s\n", r.status(b.Status()))
	fmt.Fprintf(&sb, "outbreaks:   %d/%d\n", b.Outbreaks(), b.MaxOutbreaks())
	fmt.Fprintf(&sb, "infection:   rate %d, player deck %d cards\n", b.InfectionRate(), b.PlayerDeck().Len())

	cured := make([]string, 0, game.NumColors)
	for _, c := range b.CuredDiseases() {
		cured = append(cured, r.color(c, c.String()))
	}
	fmt.Fprintf(&sb, "cured:       %s\n", join(cured))

	cubes := make([]string, 0, game.NumColors)
	for _, c := range game.Colors() {
		cubes = append(cubes, r.color(c, fmt.Sprintf("%s %d", c, b.CubesRemaining(c))))
	}
	fmt.Fprintf(&sb, "cubes left:  %s\n", join(cubes))

	stations := make([]string, 0)
	for _, c := range b.Graph().ResearchStations() {
		stations = append(stations, c.String())
	}
	fmt.Fprintf(&sb, "stations:    %s\n", join(stations))

	sb.WriteString("pawns:\n")
	for _, p := range b.Pawns() {
		city, _ := b.Location(p)
		hand, _ := b.Hand(p)
		cards := make([]string, 0, len(hand))
		for _, card := range hand {
			cards = append(cards, r.color(card.Color(), card.String()))
		}
		fmt.Fprintf(&sb, "  %-18s at %-16s %s\n", p, city, join(cards))
	}

	sb.WriteString("infected:\n")
	g := b.Graph()
	for _, city := range g.InfectedCities() {
		counts := make([]string, 0, game.NumColors)
		for _, c := range game.Colors() {
			if n := g.CubeCount(city, c); n > 0 {
				counts = append(counts, r.color(c, strings.Repeat("#", n)))
			}
		}
		fmt.Fprintf(&sb, "  %-16s %s\n", city, strings.Join(counts, " "))
	}
	return sb.String()
}

func join(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
