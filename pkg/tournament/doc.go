// Package tournament builds and solves single-elimination brackets.
//
// # Overview
//
// A [Tournament] lays a list of entrants out as a balanced binary tree. Every
// leaf holds one entrant and every internal node is a round between the
// winners of its two children. The root is the grand finals. Entrants are
// seeded in input order and the tree is fixed when [New] returns; only round
// results change afterwards.
//
// Entrant logic lives entirely in a [BattleSystem]. The package never looks
// inside an entrant of type E or a round's metadata of type M.
//
// # Basic Usage
//
//	t, err := tournament.New[int, string](scores, system)
//	if err != nil {
//	    return err
//	}
//	if err := t.Solve(); err != nil {
//	    return err
//	}
//	champion, _, _ := t.Winner(t.Root())
//
// [Tournament.SolveRound] solves a single round and everything below it, and
// [Tournament.NextRound] yields rounds one battle at a time for step-by-step
// play.
//
// # Sides and Byes
//
// Each round has exactly one A child and one B child, and a round's result is
// the [Side] its winner came up through. When a split leaves three entrants,
// the first of them is placed directly on the B side of the round above and
// skips a round (a bye). Every entrant count from 1 upward produces 2N-1 nodes.
//
// # Solving
//
// Solving is depth-first: the A subtree is solved before the B subtree, then
// the two winners battle. A complete round is never battled again, so repeated
// or overlapping solves are cheap and a full solve runs exactly N-1 battles.
// A tie sends the same two entrants straight to [BattleSystem.Tiebreaker].
//
// Battle systems receive the tournament's own [Entrant] slots. State written
// through [Entrant.Write] in one round is what the entrant brings to the next.
//
// # Errors
//
// All failures are *errors.Error values from
// github.com/matzehuels/bracket/pkg/errors, so callers can branch on the code.
// A failed solve leaves the rounds completed before the failure intact.
//
// # Concurrency
//
// A Tournament is not safe for concurrent mutation. Entrant slots guard their
// own values, so a battle system may hand entrants to other goroutines while a
// battle is in progress, as long as those goroutines finish before it returns.
package tournament
