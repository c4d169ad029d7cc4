package tournament

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/bracket/pkg/errors"
)

func TestRoundsPlayOrder(t *testing.T) {
	tr := mustNew(t, sequence(4), &maxWins{})

	if diff := cmp.Diff([]NodeID{1, 2, 0}, tr.Rounds()); diff != "" {
		t.Errorf("Rounds() mismatch (-want +got):\n%s", diff)
	}

	single := mustNew(t, []int{1}, &maxWins{})
	if got := single.Rounds(); len(got) != 0 {
		t.Errorf("single entrant Rounds() = %v, want none", got)
	}
}

func TestNextRoundSteps(t *testing.T) {
	bs := &maxWins{}
	tr := mustNew(t, sequence(10), bs)

	steps := 0
	for {
		id, ok := tr.NextRound()
		if !ok {
			break
		}
		before := bs.battles
		if _, err := tr.SolveRound(id); err != nil {
			t.Fatal(err)
		}
		if bs.battles != before+1 {
			t.Fatalf("solving next round %d ran %d battles, want 1", id, bs.battles-before)
		}
		steps++
	}

	if steps != 9 {
		t.Errorf("steps = %d, want 9", steps)
	}
	if tr.LenRoundsIncomplete() != 0 {
		t.Errorf("LenRoundsIncomplete() = %d, want 0", tr.LenRoundsIncomplete())
	}
}

func TestDepth(t *testing.T) {
	tr := mustNew(t, sequence(4), &maxWins{})

	tests := []struct {
		id   NodeID
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{6, 2},
	}
	for _, tt := range tests {
		got, err := tr.Depth(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Depth(%d) = %d, want %d", tt.id, got, tt.want)
		}
	}

	_, err := tr.Depth(7)
	wantCode(t, err, errors.ErrCodeRoundNotFound)
}

func TestChildLookup(t *testing.T) {
	tr := mustNew(t, sequence(2), &maxWins{})

	a, err := tr.Child(tr.Root(), SideA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := tr.Child(tr.Root(), SideB)
	if err != nil {
		t.Fatal(err)
	}
	na, _ := tr.Node(a)
	nb, _ := tr.Node(b)
	if id, _ := na.EntrantID(); id != 0 {
		t.Errorf("A child holds %v, want entrant 0", na)
	}
	if id, _ := nb.EntrantID(); id != 1 {
		t.Errorf("B child holds %v, want entrant 1", nb)
	}

	_, err = tr.Child(a, SideA)
	wantCode(t, err, errors.ErrCodeMalformedBracket)

	_, err = tr.Child(99, SideA)
	wantCode(t, err, errors.ErrCodeRoundNotFound)

	_, err = tr.Child(tr.Root(), Side(0))
	wantCode(t, err, errors.ErrCodeInternal)

	_, err = tr.Node(-5)
	wantCode(t, err, errors.ErrCodeRoundNotFound)
}

func TestTournamentString(t *testing.T) {
	tr, err := New[int, string](sequence(4), &maxWins{}, WithName("Cup"))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Name() != "Cup" {
		t.Errorf("Name() = %q, want %q", tr.Name(), "Cup")
	}
	if got, want := tr.String(), "Cup: 4 entrants, 3 rounds (0 complete)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if err := tr.Solve(); err != nil {
		t.Fatal(err)
	}
	if got, want := tr.String(), "Cup: 4 entrants, 3 rounds (3 complete)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	unnamed := mustNew(t, sequence(1), &maxWins{})
	if got, want := unnamed.String(), "Tournament: 1 entrants, 0 rounds (0 complete)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSideAndKindStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SideA.String(), "A"},
		{SideB.String(), "B"},
		{Side(0).String(), "?"},
		{SideA.Other().String(), "B"},
		{SideB.Other().String(), "A"},
		{Side(7).Other().String(), "?"},
		{KindEntrant.String(), "entrant"},
		{KindRound.String(), "round"},
		{EntrantID(3).String(), "Entrant #3"},
		{Round[string]{}.String(), "Incomplete"},
		{Round[string]{Complete: true, Result: SideB, Metadata: "close"}.String(), "B wins --- close"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNodeAccessors(t *testing.T) {
	leaf := Node[string]{Kind: KindEntrant, Entrant: 2}
	if _, ok := leaf.Result(); ok {
		t.Error("leaf should have no result")
	}
	if m, ok := leaf.Metadata(); ok || m != "" {
		t.Errorf("leaf Metadata() = %q, %v", m, ok)
	}
	if leaf.String() != "Entrant #2" {
		t.Errorf("leaf String() = %q", leaf.String())
	}

	open := Node[string]{Kind: KindRound}
	if _, ok := open.EntrantID(); ok {
		t.Error("round should hold no entrant")
	}
	if _, ok := open.Metadata(); ok {
		t.Error("incomplete round should have no metadata")
	}

	done := Node[string]{Kind: KindRound, Round: Round[string]{Complete: true, Result: SideA, Metadata: "m"}}
	if side, ok := done.Result(); !ok || side != SideA {
		t.Errorf("Result() = %v, %v", side, ok)
	}
	if m, ok := done.Metadata(); !ok || m != "m" {
		t.Errorf("Metadata() = %q, %v", m, ok)
	}
}

func TestEntrantAccess(t *testing.T) {
	e := newEntrant(EntrantID(4), []int{1})
	e.Write(func(v *[]int) { *v = append(*v, 2) })

	var seen []int
	e.Read(func(v []int) { seen = v })
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
	if e.ID() != 4 {
		t.Errorf("ID() = %v, want 4", e.ID())
	}
	if e.String() != "[1 2]" {
		t.Errorf("String() = %q", e.String())
	}
}
