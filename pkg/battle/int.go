package battle

import (
	"math/rand/v2"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/bracket/pkg/tournament"
)

var printer = message.NewPrinter(language.English)

// IntFighter is an entrant whose strength is its value.
type IntFighter uint32

// String returns the fighter with grouped digits, e.g. "Int Fighter: 1,234".
func (f IntFighter) String() string {
	return printer.Sprintf("Int Fighter: %d", uint32(f))
}

// IntSystem decides rounds by comparing [IntFighter] values. The larger value
// wins; equal values tie and a coin flip decides.
type IntSystem struct {
	Rand *rand.Rand
}

// Battle implements [tournament.BattleSystem].
func (s IntSystem) Battle(a, b *tournament.Entrant[IntFighter]) tournament.Outcome[string] {
	x, y := a.Value(), b.Value()
	switch {
	case x > y:
		return tournament.Decisive(tournament.SideA, winsBy(x, y))
	case y > x:
		return tournament.Decisive(tournament.SideB, winsBy(y, x))
	default:
		return tournament.Tie[string]()
	}
}

// Tiebreaker implements [tournament.BattleSystem].
func (s IntSystem) Tiebreaker(_, _ *tournament.Entrant[IntFighter]) (tournament.Side, string) {
	side := tournament.SideB
	if coinFrom(s.Rand) {
		side = tournament.SideA
	}
	return side, side.String() + " won by random tiebreaker."
}

func winsBy(winner, loser IntFighter) string {
	return printer.Sprintf("%d wins by %d!", uint32(winner), uint32(winner-loser))
}

// IntFighters converts plain values to fighters.
func IntFighters(values []uint32) []IntFighter {
	out := make([]IntFighter, len(values))
	for i, v := range values {
		out[i] = IntFighter(v)
	}
	return out
}

var _ tournament.BattleSystem[IntFighter, string] = IntSystem{}
