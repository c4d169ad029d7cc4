package battle

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/bracket/pkg/tournament"
)

// Throw is one rock-paper-scissors hand.
type Throw int

// Throws.
const (
	Rock Throw = iota
	Paper
	Scissors
)

func (t Throw) String() string {
	switch t {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Throw(%d)", int(t))
	}
}

// Beats reports whether t wins against o.
func (t Throw) Beats(o Throw) bool {
	return (t == Rock && o == Scissors) ||
		(t == Paper && o == Rock) ||
		(t == Scissors && o == Paper)
}

// JankenFighter plays rock-paper-scissors with fixed preferences.
//
// Each throw draws a random number scaled by its weight and the largest draw
// is thrown, ties resolving in rock, paper, scissors order. Weights need not
// sum to one. Wins counts rounds won so far in the tournament.
type JankenFighter struct {
	Name     string
	Rock     float64
	Paper    float64
	Scissors float64
	Wins     int
}

// Throw picks a hand using r, or the global source when r is nil.
func (f JankenFighter) Throw(r *rand.Rand) Throw {
	rock := float64From(r) * f.Rock
	paper := float64From(r) * f.Paper
	scissors := float64From(r) * f.Scissors

	t, best := Rock, rock
	if paper > best {
		t, best = Paper, paper
	}
	if scissors > best {
		t = Scissors
	}
	return t
}

func (f JankenFighter) String() string {
	return printer.Sprintf("%s (rock %.0f%%, paper %.0f%%, scissors %.0f%%, %d wins)",
		f.Name, f.Rock*100, f.Paper*100, f.Scissors*100, f.Wins)
}

// DefaultRerolls bounds how often [JankenSystem.Tiebreaker] replays a tied
// round before flipping a coin.
const DefaultRerolls = 10

// JankenSystem decides rounds by one throw from each fighter. The winner's
// Wins counter is incremented on its entrant slot.
type JankenSystem struct {
	Rand    *rand.Rand
	Rerolls int // zero means DefaultRerolls
}

// Battle implements [tournament.BattleSystem].
func (s JankenSystem) Battle(a, b *tournament.Entrant[JankenFighter]) tournament.Outcome[string] {
	side, metadata, ok := s.play(a, b)
	if !ok {
		return tournament.Tie[string]()
	}
	return tournament.Decisive(side, metadata)
}

// Tiebreaker implements [tournament.BattleSystem]. It replays the round up to
// Rerolls times and falls back to a coin flip.
func (s JankenSystem) Tiebreaker(a, b *tournament.Entrant[JankenFighter]) (tournament.Side, string) {
	n := s.Rerolls
	if n <= 0 {
		n = DefaultRerolls
	}
	for range n {
		if side, metadata, ok := s.play(a, b); ok {
			return side, metadata + " on a rematch"
		}
	}

	side, winner := tournament.SideB, b
	if coinFrom(s.Rand) {
		side, winner = tournament.SideA, a
	}
	winner.Write(func(f *JankenFighter) { f.Wins++ })
	return side, winner.Value().Name + " wins the coin flip"
}

func (s JankenSystem) play(a, b *tournament.Entrant[JankenFighter]) (tournament.Side, string, bool) {
	fa, fb := a.Value(), b.Value()
	ta, tb := fa.Throw(s.Rand), fb.Throw(s.Rand)

	var (
		side   tournament.Side
		winner *tournament.Entrant[JankenFighter]
		name   string
		win    Throw
		lose   Throw
	)
	switch {
	case ta.Beats(tb):
		side, winner, name, win, lose = tournament.SideA, a, fa.Name, ta, tb
	case tb.Beats(ta):
		side, winner, name, win, lose = tournament.SideB, b, fb.Name, tb, ta
	default:
		return 0, "", false
	}
	winner.Write(func(f *JankenFighter) { f.Wins++ })
	return side, fmt.Sprintf("%s throws %s, beats %s", name, win, lose), true
}

var _ tournament.BattleSystem[JankenFighter, string] = JankenSystem{}
