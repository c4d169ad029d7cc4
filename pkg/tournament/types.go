package tournament

import "fmt"

// EntrantID is the stable index of an entrant in the tournament's entrant
// list. IDs are assigned 0-based in input order and never change.
type EntrantID int

// String returns the entrant's display form, e.g. "Entrant #3".
func (id EntrantID) String() string { return fmt.Sprintf("Entrant #%d", int(id)) }

// NodeID indexes a node in a bracket [Graph].
type NodeID int

// Side names one of the two branches of a round.
//
// Side labels every parent-to-child edge and is also the vocabulary for a
// round's result: a round won by SideA was won by whoever came up through its
// A child. The zero value is not a valid side.
type Side int

const (
	// SideA is the first branch of a round.
	SideA Side = iota + 1
	// SideB is the second branch of a round.
	SideB
)

// Valid reports whether s is SideA or SideB.
func (s Side) Valid() bool { return s == SideA || s == SideB }

// Other returns the opposite side. The zero value maps to itself.
func (s Side) Other() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return s
	}
}

// String returns "A", "B", or "?" for an invalid side.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "?"
	}
}

// NodeKind distinguishes entrant leaves from round nodes.
type NodeKind int

const (
	// KindEntrant is a leaf holding one entrant. It has no children.
	KindEntrant NodeKind = iota
	// KindRound is an internal node with exactly one A child and one B child.
	KindRound
)

// String returns "entrant" or "round".
func (k NodeKind) String() string {
	if k == KindRound {
		return "round"
	}
	return "entrant"
}

// Round is the payload of a round node.
//
// The zero value is an incomplete round. Once Complete is set by the solver
// the round is terminal: Result holds the winning side and Metadata whatever
// the battle policy attached.
type Round[M any] struct {
	Complete bool
	Result   Side
	Metadata M
}

// String returns "Incomplete" or "<side> wins --- <metadata>".
func (r Round[M]) String() string {
	if !r.Complete {
		return "Incomplete"
	}
	return fmt.Sprintf("%s wins --- %v", r.Result, r.Metadata)
}

// Node is a vertex of the bracket graph: either an entrant leaf or a round.
type Node[M any] struct {
	ID      NodeID
	Kind    NodeKind
	Entrant EntrantID // valid only for KindEntrant
	Round   Round[M]  // valid only for KindRound
}

// IsRound reports whether the node is a round.
func (n Node[M]) IsRound() bool { return n.Kind == KindRound }

// EntrantID returns the entrant held by a leaf, or false for rounds.
func (n Node[M]) EntrantID() (EntrantID, bool) {
	if n.Kind != KindEntrant {
		return 0, false
	}
	return n.Entrant, true
}

// Result returns the winning side of a complete round.
// It returns false for entrant leaves and incomplete rounds.
func (n Node[M]) Result() (Side, bool) {
	if n.Kind != KindRound || !n.Round.Complete {
		return 0, false
	}
	return n.Round.Result, true
}

// Metadata returns the metadata of a complete round. Entrant leaves and
// incomplete rounds report the zero M and false.
func (n Node[M]) Metadata() (M, bool) {
	if n.Kind != KindRound || !n.Round.Complete {
		var zero M
		return zero, false
	}
	return n.Round.Metadata, true
}

// String formats leaves as their entrant ID and rounds as their payload.
func (n Node[M]) String() string {
	if n.Kind == KindEntrant {
		return n.Entrant.String()
	}
	return n.Round.String()
}

// Edge connects a round (From) to one of its children (To).
type Edge struct {
	From NodeID
	To   NodeID
	Side Side
}
