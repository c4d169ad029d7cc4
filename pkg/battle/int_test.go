package battle

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/bracket/pkg/tournament"
)

func TestIntFighterString(t *testing.T) {
	tests := []struct {
		f    IntFighter
		want string
	}{
		{0, "Int Fighter: 0"},
		{127, "Int Fighter: 127"},
		{1234, "Int Fighter: 1,234"},
		{4294967295, "Int Fighter: 4,294,967,295"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("IntFighter(%d).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestIntSystemWinner127(t *testing.T) {
	fighters := IntFighters([]uint32{6, 1, 2, 9, 3, 4, 127, 5, 8, 7})
	tr, err := tournament.New[IntFighter, string](fighters, IntSystem{})
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Solve(); err != nil {
		t.Fatal(err)
	}

	champion, ok, err := tr.WinnerEntrant(tr.Root())
	if err != nil || !ok {
		t.Fatalf("WinnerEntrant() = %v, %v", ok, err)
	}
	if got := champion.String(); got != "Int Fighter: 127" {
		t.Errorf("champion = %q", got)
	}
	finals, _ := tr.Node(tr.Root())
	if finals.Round.Result != tournament.SideB || finals.Round.Metadata != "127 wins by 118!" {
		t.Errorf("finals = %v", finals.Round)
	}
}

func TestIntSystemBattle(t *testing.T) {
	sys := IntSystem{Rand: rand.New(rand.NewPCG(1, 2))}
	tr, err := tournament.New[IntFighter, string]([]IntFighter{5000, 1200}, sys)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := tr.Entrant(0)
	b, _ := tr.Entrant(1)

	out := sys.Battle(a, b)
	if out.Tie || out.Winner != tournament.SideA || out.Metadata != "5,000 wins by 3,800!" {
		t.Errorf("Battle(5000, 1200) = %+v", out)
	}
	out = sys.Battle(b, a)
	if out.Tie || out.Winner != tournament.SideB {
		t.Errorf("Battle(1200, 5000) = %+v", out)
	}
	if out := sys.Battle(a, a); !out.Tie {
		t.Errorf("Battle(a, a) = %+v, want tie", out)
	}
}

func TestIntSystemTiebreaker(t *testing.T) {
	sys := IntSystem{Rand: rand.New(rand.NewPCG(7, 7))}
	tr, err := tournament.New[IntFighter, string]([]IntFighter{3, 3, 3, 3}, sys)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Solve(); err != nil {
		t.Fatal(err)
	}
	for _, id := range tr.Rounds() {
		n, _ := tr.Node(id)
		side := n.Round.Result
		if want := side.String() + " won by random tiebreaker."; n.Round.Metadata != want {
			t.Errorf("round %d metadata = %q, want %q", id, n.Round.Metadata, want)
		}
	}
}
