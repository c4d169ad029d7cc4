package tournament

import (
	"fmt"
	"testing"

	"github.com/matzehuels/bracket/pkg/errors"
)

// maxWins is a battle system over ints where the larger value wins. It counts
// invocations and records the argument order of every battle.
type maxWins struct {
	battles     int
	tiebreakers int
	calls       [][2]int
}

func (m *maxWins) Battle(a, b *Entrant[int]) Outcome[string] {
	m.battles++
	va, vb := a.Value(), b.Value()
	m.calls = append(m.calls, [2]int{va, vb})
	switch {
	case va > vb:
		return Decisive(SideA, fmt.Sprintf("%d wins by %d!", va, va-vb))
	case vb > va:
		return Decisive(SideB, fmt.Sprintf("%d wins by %d!", vb, vb-va))
	default:
		return Tie[string]()
	}
}

func (m *maxWins) Tiebreaker(a, b *Entrant[int]) (Side, string) {
	m.tiebreakers++
	return SideA, "A won by tiebreaker."
}

// alwaysTie reports a tie for every battle and lets the tiebreaker pick B.
type alwaysTie struct {
	battles     int
	tiebreakers int
}

func (s *alwaysTie) Battle(a, b *Entrant[int]) Outcome[string] {
	s.battles++
	return Tie[string]()
}

func (s *alwaysTie) Tiebreaker(a, b *Entrant[int]) (Side, string) {
	s.tiebreakers++
	return SideB, "coin flip"
}

func winner127() []int {
	return []int{6, 1, 2, 9, 3, 4, 127, 5, 8, 7}
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func mustNew(t *testing.T, entrants []int, bs BattleSystem[int, string]) *Tournament[int, string] {
	t.Helper()
	tr, err := New(entrants, bs)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return tr
}

func wantCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !errors.Is(err, code) {
		t.Fatalf("error code = %q, want %q (err: %v)", errors.GetCode(err), code, err)
	}
}
