package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/render/nodelink"
)

func TestLoadBracketInt(t *testing.T) {
	b, err := loadBracket(writeDefinition(t, "cup.toml", winner127TOML))
	if err != nil {
		t.Fatal(err)
	}
	if b.Title() != "Winner 127" || b.System() != "int" {
		t.Errorf("bracket = %q (%s)", b.Title(), b.System())
	}
	if b.Entrants() != 10 || b.Rounds() != 9 || b.Nodes() != 19 || b.Edges() != 18 {
		t.Errorf("sizes = %d entrants, %d rounds, %d nodes, %d edges",
			b.Entrants(), b.Rounds(), b.Nodes(), b.Edges())
	}
	if _, ok, _ := b.Champion(); ok {
		t.Error("unsolved bracket should have no champion")
	}

	if err := b.Solve(); err != nil {
		t.Fatal(err)
	}
	champion, ok, err := b.Champion()
	if err != nil || !ok {
		t.Fatalf("Champion() = %v, %v", ok, err)
	}
	if champion != "Int Fighter: 127" {
		t.Errorf("champion = %q", champion)
	}

	rows, err := b.Standings()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 {
		t.Fatalf("got %d standings rows, want 9", len(rows))
	}
	final := rows[len(rows)-1]
	if final.Depth != 0 || final.Winner != "Int Fighter: 127" || final.Result != "B wins --- 127 wins by 118!" {
		t.Errorf("final row = %+v", final)
	}
}

func TestSessionStep(t *testing.T) {
	b, err := loadBracket(writeDefinition(t, "rps.toml", jankenTOML))
	if err != nil {
		t.Fatal(err)
	}

	var labels []string
	for {
		label, ok, err := b.Step()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		labels = append(labels, label)
	}
	if len(labels) != 2 {
		t.Fatalf("stepped %d rounds, want 2: %v", len(labels), labels)
	}
	// Edward's scissors cut Papyrus, then Rocky's rock breaks them.
	if !strings.HasPrefix(labels[0], "Edward") {
		t.Errorf("first label = %q, want Edward to win", labels[0])
	}
	if !strings.HasPrefix(labels[1], "Rocky") {
		t.Errorf("final label = %q, want Rocky to win", labels[1])
	}
}

func TestSessionOutputs(t *testing.T) {
	b, err := loadBracket(writeDefinition(t, "cup.toml", winner127TOML))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Solve(); err != nil {
		t.Fatal(err)
	}

	tree, err := b.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tree, "127 wins by 118!") {
		t.Errorf("tree missing final result:\n%s", tree)
	}

	if dot := b.DOT(nodelink.Options{}); !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("DOT = %.40q", dot)
	}

	var buf bytes.Buffer
	if err := b.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var report struct {
		Winner struct {
			Label string `json:"label"`
		} `json:"winner"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Winner.Label != "Int Fighter: 127" {
		t.Errorf("report winner = %q", report.Winner.Label)
	}
}

func TestLoadBracketErrors(t *testing.T) {
	if _, err := loadBracket("does-not-exist.toml"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	path := writeDefinition(t, "bad.toml", "system = \"chess\"\nentrants = [1]\n")
	if _, err := loadBracket(path); !errors.Is(err, errors.ErrCodeInvalidSystem) {
		t.Errorf("bad system error = %v", err)
	}
}
