package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/tournament"
)

// Report is the JSON form of a tournament.
type Report struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Root     int      `json:"root"`
	Rounds   int      `json:"rounds"`
	Complete int      `json:"complete"`
	Entrants []string `json:"entrants"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Winner   *Winner  `json:"winner,omitempty"`
}

// Node is one bracket node of a [Report].
type Node struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Entrant  *int   `json:"entrant,omitempty"`
	Complete bool   `json:"complete,omitempty"`
	Result   string `json:"result,omitempty"`
	Metadata string `json:"metadata,omitempty"`
}

// Edge joins a round to one of its children.
type Edge struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Side string `json:"side"`
}

// Winner names the champion of a decided tournament.
type Winner struct {
	Entrant int    `json:"entrant"`
	Label   string `json:"label"`
}

// NewReport snapshots t under a fresh report ID.
func NewReport[E, M any](t *tournament.Tournament[E, M]) (*Report, error) {
	g := t.Graph()
	r := &Report{
		ID:       uuid.NewString(),
		Name:     t.Name(),
		Root:     int(t.Root()),
		Rounds:   t.LenRounds(),
		Complete: t.LenRoundsComplete(),
		Entrants: make([]string, t.LenEntrants()),
		Nodes:    make([]Node, 0, g.NodeCount()),
		Edges:    make([]Edge, 0, g.EdgeCount()),
	}

	for i := range r.Entrants {
		e, err := t.Entrant(tournament.EntrantID(i))
		if err != nil {
			return nil, err
		}
		r.Entrants[i] = e.String()
	}
	for _, n := range g.Nodes() {
		nd := Node{ID: int(n.ID), Kind: n.Kind.String()}
		if id, ok := n.EntrantID(); ok {
			eid := int(id)
			nd.Entrant = &eid
		}
		if side, ok := n.Result(); ok {
			nd.Complete = true
			nd.Result = side.String()
			nd.Metadata = fmt.Sprint(n.Round.Metadata)
		}
		r.Nodes = append(r.Nodes, nd)
	}
	for _, e := range g.Edges() {
		r.Edges = append(r.Edges, Edge{From: int(e.From), To: int(e.To), Side: e.Side.String()})
	}

	id, ok, err := t.Winner(t.Root())
	if err != nil {
		return nil, err
	}
	if ok && r.Complete == r.Rounds {
		r.Winner = &Winner{Entrant: int(id), Label: r.Entrants[id]}
	}
	return r, nil
}

// WriteJSON encodes a report of t as indented JSON and writes it to w.
// Encoding or write failures are reported as PRINT_FAILURE.
func WriteJSON[E, M any](t *tournament.Tournament[E, M], w io.Writer) error {
	r, err := NewReport(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(errors.ErrCodePrintFailure, err, "encode report")
	}
	return nil
}

// ExportJSON writes a report of t to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON[E, M any](t *tournament.Tournament[E, M], path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteJSON(t, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodePrintFailure, err, "close %s", path)
	}
	return nil
}
