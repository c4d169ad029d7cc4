package tournament

import (
	"fmt"
	"reflect"
	"time"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/observability"
)

// Tournament is a single-elimination bracket over entrants of type E whose
// completed rounds carry metadata of type M.
//
// The bracket topology is fixed by [New]. Solving fills in round results in
// place and never changes the topology. A Tournament is not safe for
// concurrent Solve calls; callers driving it from several goroutines must
// synchronize externally.
type Tournament[E, M any] struct {
	name     string
	graph    *Graph[M]
	entrants []*Entrant[E]
	root     NodeID
	battle   BattleSystem[E, M]
}

// Option configures a [Tournament].
type Option func(*options)

type options struct {
	name string
}

// WithName sets the display name used by renderers and [Tournament.String].
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New creates a tournament from entrants, seeded in slice order, that solves
// rounds with bs.
//
// Each entrant is copied into its own [Entrant] slot. Fails with
// NEEDS_AT_LEAST_ONE_ENTRANT for an empty slice and INVALID_INPUT for a nil
// battle system, including typed nil pointers and a [Policy] (value or
// pointer) without a BattleFn.
func New[E, M any](entrants []E, bs BattleSystem[E, M], opts ...Option) (*Tournament[E, M], error) {
	if len(entrants) == 0 {
		return nil, errors.New(errors.ErrCodeNeedsEntrant, "a tournament needs at least one entrant")
	}
	if err := checkBattleSystem(bs); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	slots := make([]*Entrant[E], len(entrants))
	for i, e := range entrants {
		slots[i] = newEntrant(EntrantID(i), e)
	}
	g, root := buildGraph[M](len(entrants))

	t := &Tournament[E, M]{
		name:     o.name,
		graph:    g,
		entrants: slots,
		root:     root,
		battle:   bs,
	}
	observability.Bracket().OnBuild(len(slots), t.LenRounds(), time.Since(start))
	return t, nil
}

// checkBattleSystem rejects systems that would dereference nil on the first
// battle: nil interfaces, typed nil pointers and policies without BattleFn.
func checkBattleSystem[E, M any](bs BattleSystem[E, M]) error {
	if bs == nil {
		return errors.New(errors.ErrCodeInvalidInput, "battle system must not be nil")
	}
	switch p := bs.(type) {
	case Policy[E, M]:
		if p.BattleFn == nil {
			return errors.New(errors.ErrCodeInvalidInput, "policy has no battle function")
		}
		return nil
	case *Policy[E, M]:
		if p == nil || p.BattleFn == nil {
			return errors.New(errors.ErrCodeInvalidInput, "policy has no battle function")
		}
		return nil
	}
	switch v := reflect.ValueOf(bs); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return errors.New(errors.ErrCodeInvalidInput, "battle system %T is nil", bs)
		}
	}
	return nil
}

// NewFromGenerator creates a tournament of n entrants produced by gen, which
// is called with indices 0 through n-1 in order.
func NewFromGenerator[E, M any](n int, gen func(i int) E, bs BattleSystem[E, M], opts ...Option) (*Tournament[E, M], error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeNeedsEntrant, "a tournament needs at least one entrant")
	}
	if gen == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "generator must not be nil")
	}
	entrants := make([]E, n)
	for i := range entrants {
		entrants[i] = gen(i)
	}
	return New(entrants, bs, opts...)
}

// Name returns the display name set with [WithName].
func (t *Tournament[E, M]) Name() string { return t.name }

// Root returns the grand finals node. For a single-entrant tournament this is
// the entrant's leaf.
func (t *Tournament[E, M]) Root() NodeID { return t.root }

// Graph returns the bracket graph for traversal and rendering.
// Callers must treat it as read-only.
func (t *Tournament[E, M]) Graph() *Graph[M] { return t.graph }

// LenEntrants returns the number of entrants.
func (t *Tournament[E, M]) LenEntrants() int { return len(t.entrants) }

// LenRounds returns the number of rounds, complete and incomplete.
func (t *Tournament[E, M]) LenRounds() int {
	return t.countRounds(func(Round[M]) bool { return true })
}

// LenRoundsComplete returns the number of solved rounds.
func (t *Tournament[E, M]) LenRoundsComplete() int {
	return t.countRounds(func(r Round[M]) bool { return r.Complete })
}

// LenRoundsIncomplete returns the number of unsolved rounds.
func (t *Tournament[E, M]) LenRoundsIncomplete() int {
	return t.countRounds(func(r Round[M]) bool { return !r.Complete })
}

func (t *Tournament[E, M]) countRounds(match func(Round[M]) bool) int {
	c := 0
	for _, n := range t.graph.nodes {
		if n.Kind == KindRound && match(n.Round) {
			c++
		}
	}
	return c
}

// Entrant returns the slot of the entrant with the given ID.
// Fails with ENTRANT_NOT_FOUND for out-of-range IDs.
func (t *Tournament[E, M]) Entrant(id EntrantID) (*Entrant[E], error) {
	if id < 0 || int(id) >= len(t.entrants) {
		return nil, errEntrantNotFound(id)
	}
	return t.entrants[id], nil
}

// Node returns a copy of the node with the given ID.
// Fails with ROUND_NOT_FOUND for unknown IDs.
func (t *Tournament[E, M]) Node(id NodeID) (Node[M], error) {
	return t.graph.Node(id)
}

// Child returns the child of round id on the given side.
func (t *Tournament[E, M]) Child(id NodeID, side Side) (NodeID, error) {
	return t.graph.Child(id, side)
}

// Children returns the A and B children of round id.
func (t *Tournament[E, M]) Children(id NodeID) (a, b NodeID, err error) {
	return t.graph.Children(id)
}

// Rounds returns all round IDs in play order: every round appears after the
// rounds that feed it, A branches before B branches, grand finals last.
func (t *Tournament[E, M]) Rounds() []NodeID {
	var rounds []NodeID
	for _, id := range t.graph.PostOrder(t.root) {
		if t.graph.nodes[id].Kind == KindRound {
			rounds = append(rounds, id)
		}
	}
	return rounds
}

// NextRound returns the first incomplete round in play order. All rounds that
// feed it are complete, so solving it runs exactly one battle. It returns
// false once the grand finals is decided.
func (t *Tournament[E, M]) NextRound() (NodeID, bool) {
	for _, id := range t.Rounds() {
		if !t.graph.nodes[id].Round.Complete {
			return id, true
		}
	}
	return 0, false
}

// Depth returns the number of rounds between node id and the grand finals.
// The root has depth 0.
func (t *Tournament[E, M]) Depth(id NodeID) (int, error) {
	if !t.graph.Has(id) {
		return 0, errRoundNotFound(id)
	}
	d := 0
	for p, ok := t.graph.Parent(id); ok; p, ok = t.graph.Parent(p) {
		d++
	}
	return d, nil
}

// String summarizes the tournament, e.g. "Cup: 10 entrants, 9 rounds (4 complete)".
func (t *Tournament[E, M]) String() string {
	name := t.name
	if name == "" {
		name = "Tournament"
	}
	return fmt.Sprintf("%s: %d entrants, %d rounds (%d complete)",
		name, t.LenEntrants(), t.LenRounds(), t.LenRoundsComplete())
}
