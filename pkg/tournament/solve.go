package tournament

import (
	"time"

	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/observability"
)

// Solve resolves every round up to and including the grand finals.
//
// Already-complete rounds are reused, so calling Solve again after a full or
// partial solve runs no further battles. A single-entrant tournament has no
// rounds and Solve returns nil without consulting the battle system.
func (t *Tournament[E, M]) Solve() error {
	if t.graph.nodes[t.root].Kind == KindEntrant {
		return nil
	}
	_, err := t.SolveRound(t.root)
	return err
}

// SolveRound resolves round id and every unsolved round feeding it, then
// returns the side that won round id.
//
// Rounds are resolved depth-first, A child before B child. A complete round is
// a cached answer and never reaches the battle system again. On failure the
// rounds completed before the error stay complete.
//
// Fails with ROUND_NOT_FOUND for unknown IDs, INTERNAL_ERROR when id is an
// entrant leaf or the battle system returns an invalid side,
// MALFORMED_BRACKET for a corrupted topology and ENTRANT_NOT_FOUND for a leaf
// referencing a missing entrant.
//
// A round whose battle system returns an invalid side stays Incomplete, but
// entrant writes the system made during that battle are not rolled back.
// Retrying runs the battle again and applies them a second time.
func (t *Tournament[E, M]) SolveRound(id NodeID) (Side, error) {
	n, err := t.graph.Node(id)
	if err != nil {
		return 0, err
	}
	if n.Kind != KindRound {
		return 0, errNotARound(id)
	}
	return t.solve(id)
}

func (t *Tournament[E, M]) solve(id NodeID) (Side, error) {
	if r := t.graph.nodes[id].Round; r.Complete {
		return r.Result, nil
	}

	a, b, err := t.graph.Children(id)
	if err != nil {
		return 0, err
	}
	ea, err := t.contestant(a)
	if err != nil {
		return 0, err
	}
	eb, err := t.contestant(b)
	if err != nil {
		return 0, err
	}

	hooks := observability.Bracket()
	start := time.Now()

	out := t.battle.Battle(ea, eb)
	hooks.OnBattle(int(id), out.Tie)
	side, metadata := out.Winner, out.Metadata
	if out.Tie {
		side, metadata = t.battle.Tiebreaker(ea, eb)
		hooks.OnTiebreak(int(id))
	}
	if !side.Valid() {
		return 0, errors.New(errors.ErrCodeInternal,
			"battle system returned invalid side %d for node %d", int(side), int(id))
	}

	t.graph.nodes[id].Round = Round[M]{Complete: true, Result: side, Metadata: metadata}
	hooks.OnRoundComplete(int(id), side.String(), time.Since(start))
	return side, nil
}

// contestant returns the entrant that arrives at a round from child id,
// solving id first when it is an unsolved round. An entrant leaf is a bye
// when its sibling is a round; it is passed through unchanged.
func (t *Tournament[E, M]) contestant(id NodeID) (*Entrant[E], error) {
	n := t.graph.nodes[id]
	if n.Kind == KindEntrant {
		return t.Entrant(n.Entrant)
	}
	if !n.Round.Complete {
		if _, err := t.solve(id); err != nil {
			return nil, err
		}
	}
	eid, ok, err := t.Winner(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "node %d has no winner after solving", int(id))
	}
	return t.Entrant(eid)
}

// Winner returns the entrant that won node id.
//
// An entrant leaf is its own winner. An incomplete round has no winner yet
// and reports false. A complete round follows its result edge down to a leaf.
func (t *Tournament[E, M]) Winner(id NodeID) (EntrantID, bool, error) {
	for {
		n, err := t.graph.Node(id)
		if err != nil {
			return 0, false, err
		}
		if n.Kind == KindEntrant {
			return n.Entrant, true, nil
		}
		if !n.Round.Complete {
			return 0, false, nil
		}
		if id, err = t.graph.Child(id, n.Round.Result); err != nil {
			return 0, false, err
		}
	}
}

// WinnerEntrant is like [Tournament.Winner] but returns the winner's slot.
func (t *Tournament[E, M]) WinnerEntrant(id NodeID) (*Entrant[E], bool, error) {
	eid, ok, err := t.Winner(id)
	if err != nil || !ok {
		return nil, false, err
	}
	e, err := t.Entrant(eid)
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}
