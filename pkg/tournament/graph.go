package tournament

import (
	"slices"

	"github.com/matzehuels/bracket/pkg/errors"
)

// Graph is the node/edge arena of a bracket.
//
// Nodes live in an indexed slice and are addressed by [NodeID]; edges are
// parent-to-child index pairs tagged with a [Side]. The builder is the only
// writer of topology. After construction only round payloads change, and only
// through the solver.
//
// The zero value is not usable. Graph is not safe for concurrent use without
// external synchronization.
type Graph[M any] struct {
	nodes    []Node[M]
	edges    []Edge
	outgoing [][]int // nodeID -> indices into edges
	parent   []NodeID
}

func newGraph[M any](capacity int) *Graph[M] {
	return &Graph[M]{
		nodes:    make([]Node[M], 0, capacity),
		edges:    make([]Edge, 0, max(capacity-1, 0)),
		outgoing: make([][]int, 0, capacity),
		parent:   make([]NodeID, 0, capacity),
	}
}

func (g *Graph[M]) addEntrant(id EntrantID) NodeID {
	return g.addNode(Node[M]{Kind: KindEntrant, Entrant: id})
}

func (g *Graph[M]) addRound() NodeID {
	return g.addNode(Node[M]{Kind: KindRound})
}

func (g *Graph[M]) addNode(n Node[M]) NodeID {
	n.ID = NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.outgoing = append(g.outgoing, nil)
	g.parent = append(g.parent, -1)
	return n.ID
}

func (g *Graph[M]) addEdge(from, to NodeID, side Side) {
	g.edges = append(g.edges, Edge{From: from, To: to, Side: side})
	g.outgoing[from] = append(g.outgoing[from], len(g.edges)-1)
	g.parent[to] = from
}

// Has reports whether id names a node in the graph.
func (g *Graph[M]) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a copy of the node with the given ID.
// Unknown IDs fail with ROUND_NOT_FOUND.
func (g *Graph[M]) Node(id NodeID) (Node[M], error) {
	if !g.Has(id) {
		return Node[M]{}, errRoundNotFound(id)
	}
	return g.nodes[id], nil
}

// Nodes returns copies of all nodes in ID order.
func (g *Graph[M]) Nodes() []Node[M] { return slices.Clone(g.nodes) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph[M]) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph[M]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph[M]) EdgeCount() int { return len(g.edges) }

// Parent returns the round a node feeds into, or false for the root.
func (g *Graph[M]) Parent(id NodeID) (NodeID, bool) {
	if !g.Has(id) || g.parent[id] < 0 {
		return 0, false
	}
	return g.parent[id], true
}

// Child returns the child of round id on the given side.
//
// Fails with ROUND_NOT_FOUND for unknown IDs and MALFORMED_BRACKET when id
// does not have exactly one A edge and one B edge.
func (g *Graph[M]) Child(id NodeID, side Side) (NodeID, error) {
	a, b, err := g.Children(id)
	if err != nil {
		return 0, err
	}
	switch side {
	case SideA:
		return a, nil
	case SideB:
		return b, nil
	default:
		return 0, errors.New(errors.ErrCodeInternal, "invalid side %d", int(side))
	}
}

// Children returns the A and B children of round id.
//
// Fails with ROUND_NOT_FOUND for unknown IDs and MALFORMED_BRACKET when id
// does not have exactly one A edge and one B edge.
func (g *Graph[M]) Children(id NodeID) (a, b NodeID, err error) {
	if !g.Has(id) {
		return 0, 0, errRoundNotFound(id)
	}
	out := g.outgoing[id]
	if len(out) != 2 {
		return 0, 0, errors.New(errors.ErrCodeMalformedBracket,
			"node %d has %d children, want 2", int(id), len(out))
	}
	first, second := g.edges[out[0]], g.edges[out[1]]
	switch {
	case first.Side == SideA && second.Side == SideB:
		return first.To, second.To, nil
	case first.Side == SideB && second.Side == SideA:
		return second.To, first.To, nil
	default:
		return 0, 0, errors.New(errors.ErrCodeMalformedBracket,
			"node %d has child edges %s/%s, want one A and one B", int(id), first.Side, second.Side)
	}
}

// Validate checks that the graph is a binary elimination tree and returns nil
// if it is. It verifies:
//
//  1. Every round has exactly one A child and one B child
//  2. Every entrant leaf has no children
//  3. Exactly one node has no parent (the root)
//  4. Every node is reachable from the root (so the graph is connected and acyclic)
//
// Violations are reported as MALFORMED_BRACKET. Builder-produced graphs always
// validate; a failure means the graph was corrupted.
func (g *Graph[M]) Validate() error {
	root := NodeID(-1)
	for i, n := range g.nodes {
		id := NodeID(i)
		switch n.Kind {
		case KindRound:
			if _, _, err := g.Children(id); err != nil {
				return err
			}
		case KindEntrant:
			if len(g.outgoing[id]) != 0 {
				return errors.New(errors.ErrCodeMalformedBracket, "entrant node %d has children", i)
			}
		}
		if g.parent[id] < 0 {
			if root >= 0 {
				return errors.New(errors.ErrCodeMalformedBracket, "nodes %d and %d both lack a parent", int(root), i)
			}
			root = id
		}
	}
	if len(g.nodes) == 0 {
		return nil
	}
	if root < 0 {
		return errors.New(errors.ErrCodeMalformedBracket, "bracket has no root")
	}

	seen := make([]bool, len(g.nodes))
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return errors.New(errors.ErrCodeMalformedBracket, "node %d is reachable twice", int(id))
		}
		seen[id] = true
		for _, ei := range g.outgoing[id] {
			stack = append(stack, g.edges[ei].To)
		}
	}
	for i, ok := range seen {
		if !ok {
			return errors.New(errors.ErrCodeMalformedBracket, "node %d is unreachable from the root", i)
		}
	}
	return nil
}

// PostOrder returns every node below and including id, children before their
// parent and A before B. This is the order in which a full solve completes
// rounds.
func (g *Graph[M]) PostOrder(id NodeID) []NodeID {
	if !g.Has(id) {
		return nil
	}
	var order []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		if a, b, err := g.Children(n); err == nil {
			walk(a)
			walk(b)
		}
		order = append(order, n)
	}
	walk(id)
	return order
}
