package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/bracket/pkg/tournament"
)

var highest = tournament.Policy[int, string]{
	BattleFn: func(a, b *tournament.Entrant[int]) tournament.Outcome[string] {
		if a.Value() >= b.Value() {
			return tournament.Decisive(tournament.SideA, "higher")
		}
		return tournament.Decisive(tournament.SideB, "higher")
	},
}

func newTournament(t *testing.T, entrants []int, opts ...tournament.Option) *tournament.Tournament[int, string] {
	t.Helper()
	tr, err := tournament.New[int, string](entrants, highest, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestToDOT(t *testing.T) {
	tr := newTournament(t, []int{10, 20}, tournament.WithName("Final"))
	if err := tr.Solve(); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(tr, Options{})
	for _, want := range []string{
		"digraph G {",
		"rankdir=BT;",
		`label="Final";`,
		`n0 [label="20", fillcolor="#d8ecd8"];`,
		`n1 [label="10"];`,
		`n2 [label="20"];`,
		`n1 -> n0 [taillabel="A"];`,
		`n2 -> n0 [taillabel="B", penwidth=3];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTIncompleteAndBye(t *testing.T) {
	tr := newTournament(t, []int{1, 2, 3})
	dot := ToDOT(tr, Options{})

	if strings.Contains(dot, "label=\"\"") || strings.Contains(dot, "labelloc") {
		t.Errorf("unnamed tournament should have no graph label:\n%s", dot)
	}
	for _, want := range []string{
		`n0 [label="TBD", style="rounded,filled,dashed", fillcolor=lightgrey, fontcolor=black];`,
		`n2 -> n0 [taillabel="B", style=dashed];`,
		`n3 -> n1 [taillabel="A"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	tr := newTournament(t, []int{1, 2, 3, 4})
	if _, err := tr.SolveRound(1); err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(tr, Options{Detailed: true})

	for _, want := range []string{
		`n1 [label="2\nnode: 1\ndepth: 1\nB wins --- higher"`,
		`n0 [label="TBD\nnode: 0\ndepth: 0\nIncomplete"`,
		`n3 [label="1\nnode: 3\ndepth: 2\nEntrant #0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTSingleEntrant(t *testing.T) {
	dot := ToDOT(newTournament(t, []int{7}), Options{})
	if !strings.Contains(dot, `n0 [label="7"];`) || strings.Contains(dot, "->") {
		t.Errorf("unexpected DOT for single entrant:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	tr := newTournament(t, []int{1, 2, 3})
	if err := tr.Solve(); err != nil {
		t.Fatal(err)
	}

	svg, err := RenderSVG(context.Background(), ToDOT(tr, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("SVG root not normalized: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="x"><g/></svg>`)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got := string(normalizeViewBox(in)); got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed SVG without viewBox: %q", got)
	}
}
