package cli

import (
	"io"

	"github.com/matzehuels/bracket/pkg/battle"
	"github.com/matzehuels/bracket/pkg/definition"
	"github.com/matzehuels/bracket/pkg/errors"
	bio "github.com/matzehuels/bracket/pkg/io"
	"github.com/matzehuels/bracket/pkg/render/nodelink"
	"github.com/matzehuels/bracket/pkg/render/text"
	"github.com/matzehuels/bracket/pkg/tournament"
)

// bracket is the system-independent view of a loaded tournament that the
// commands work against. Every definition system produces one.
type bracket interface {
	Title() string
	System() string
	Entrants() int
	Nodes() int
	Edges() int
	Rounds() int
	Complete() int

	Solve() error
	// Step solves the next round in play order and describes it. It returns
	// false once the grand finals is decided.
	Step() (string, bool, error)
	Champion() (string, bool, error)

	Tree() (string, error)
	DOT(opts nodelink.Options) string
	WriteJSON(w io.Writer) error
	ExportJSON(path string) error
	Standings() ([]standing, error)
}

// standing is one row of the standings table.
type standing struct {
	Node   tournament.NodeID
	Depth  int
	Winner string
	Result string
}

// loadBracket reads a definition file and builds its tournament.
func loadBracket(path string) (bracket, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, err
	}
	return newBracket(def)
}

// newBracket builds the tournament described by def.
func newBracket(def *definition.Definition) (bracket, error) {
	switch def.System {
	case definition.SystemInt:
		t, err := def.IntTournament()
		if err != nil {
			return nil, err
		}
		return &session[battle.IntFighter]{t: t, system: def.System}, nil
	case definition.SystemJanken:
		t, err := def.JankenTournament()
		if err != nil {
			return nil, err
		}
		return &session[battle.JankenFighter]{t: t, system: def.System}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSystem, "unknown system %q", def.System)
	}
}

// session adapts a tournament with string metadata to bracket.
type session[E any] struct {
	t      *tournament.Tournament[E, string]
	system string
}

func (s *session[E]) Title() string  { return s.t.Name() }
func (s *session[E]) System() string { return s.system }
func (s *session[E]) Entrants() int  { return s.t.LenEntrants() }
func (s *session[E]) Nodes() int     { return s.t.Graph().NodeCount() }
func (s *session[E]) Edges() int     { return s.t.Graph().EdgeCount() }
func (s *session[E]) Rounds() int    { return s.t.LenRounds() }
func (s *session[E]) Complete() int  { return s.t.LenRoundsComplete() }
func (s *session[E]) Solve() error   { return s.t.Solve() }

func (s *session[E]) Step() (string, bool, error) {
	id, ok := s.t.NextRound()
	if !ok {
		return "", false, nil
	}
	if _, err := s.t.SolveRound(id); err != nil {
		return "", false, err
	}
	label, err := text.Label(s.t, id)
	if err != nil {
		return "", false, err
	}
	return label, true, nil
}

func (s *session[E]) Champion() (string, bool, error) {
	if s.t.LenRoundsIncomplete() > 0 {
		return "", false, nil
	}
	e, ok, err := s.t.WinnerEntrant(s.t.Root())
	if err != nil || !ok {
		return "", false, err
	}
	return e.String(), true, nil
}

func (s *session[E]) Tree() (string, error) {
	tr, err := text.Tree(s.t)
	if err != nil {
		return "", err
	}
	return tr.String(), nil
}

func (s *session[E]) DOT(opts nodelink.Options) string {
	return nodelink.ToDOT(s.t, opts)
}

func (s *session[E]) WriteJSON(w io.Writer) error {
	return bio.WriteJSON(s.t, w)
}

func (s *session[E]) ExportJSON(path string) error {
	return bio.ExportJSON(s.t, path)
}

func (s *session[E]) Standings() ([]standing, error) {
	rounds := s.t.Rounds()
	rows := make([]standing, 0, len(rounds))
	for _, id := range rounds {
		depth, err := s.t.Depth(id)
		if err != nil {
			return nil, err
		}
		n, err := s.t.Node(id)
		if err != nil {
			return nil, err
		}
		row := standing{Node: id, Depth: depth, Winner: "-", Result: n.Round.String()}
		if e, ok, err := s.t.WinnerEntrant(id); err != nil {
			return nil, err
		} else if ok {
			row.Winner = e.String()
		}
		rows = append(rows, row)
	}
	return rows, nil
}
