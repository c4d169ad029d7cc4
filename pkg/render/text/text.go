// Package text renders tournament brackets as terminal trees.
//
// The grand finals is the root and each round branches into the two nodes
// that feed it, A side first:
//
//	127 (B wins --- 127 wins by 118!)
//	├── 9 (B wins --- 9 wins by 3!)
//	│   ├── ...
//	└── 127 (A wins --- 127 wins by 119!)
//	    └── ...
//
// Rounds show their winner and result once complete and "Incomplete" before.
package text

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/tournament"
)

// Styles applied to the tree. The zero styles render plain text.
var (
	RootStyle       = lipgloss.NewStyle().Bold(true)
	EnumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Tree builds the lipgloss tree of t.
// It fails with MALFORMED_BRACKET if a round's children cannot be resolved.
func Tree[E, M any](t *tournament.Tournament[E, M]) (*tree.Tree, error) {
	root, err := subtree(t, t.Root())
	if err != nil {
		return nil, err
	}
	return root.RootStyle(RootStyle).EnumeratorStyle(EnumeratorStyle), nil
}

func subtree[E, M any](t *tournament.Tournament[E, M], id tournament.NodeID) (*tree.Tree, error) {
	label, err := Label(t, id)
	if err != nil {
		return nil, err
	}
	node := tree.Root(label)

	n, err := t.Node(id)
	if err != nil || !n.IsRound() {
		return node, err
	}
	a, b, err := t.Children(id)
	if err != nil {
		return nil, err
	}
	for _, child := range []tournament.NodeID{a, b} {
		c, err := t.Node(child)
		if err != nil {
			return nil, err
		}
		if !c.IsRound() {
			l, err := Label(t, child)
			if err != nil {
				return nil, err
			}
			node.Child(l)
			continue
		}
		sub, err := subtree(t, child)
		if err != nil {
			return nil, err
		}
		node.Child(sub)
	}
	return node, nil
}

// Label returns the display text of node id: the entrant for a leaf,
// "winner (side wins --- metadata)" for a complete round and "Incomplete"
// otherwise.
func Label[E, M any](t *tournament.Tournament[E, M], id tournament.NodeID) (string, error) {
	n, err := t.Node(id)
	if err != nil {
		return "", err
	}
	if eid, ok := n.EntrantID(); ok {
		e, err := t.Entrant(eid)
		if err != nil {
			return "", err
		}
		return e.String(), nil
	}
	if !n.Round.Complete {
		return n.Round.String(), nil
	}
	w, _, err := t.WinnerEntrant(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s)", w, n.Round), nil
}

// Render writes the tree of t to w followed by a newline.
// Write failures are reported as PRINT_FAILURE.
func Render[E, M any](w io.Writer, t *tournament.Tournament[E, M]) error {
	tr, err := Tree(t)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, tr.String()); err != nil {
		return errors.Wrap(errors.ErrCodePrintFailure, err, "write bracket tree")
	}
	return nil
}
