package tournament

// BattleSystem decides rounds between two entrants.
//
// It is the only place entrant-specific logic enters a tournament. The solver
// always passes the contestant that came up through the round's A child as a
// and the one from the B child as b, so the returned [Side] names the edge the
// winner arrived on.
//
// Both methods receive the tournament's canonical [Entrant] slots and may
// mutate them through [Entrant.Write]; changes persist into later rounds.
type BattleSystem[E, M any] interface {
	// Battle resolves a round. It returns a decisive [Outcome] or [Tie].
	Battle(a, b *Entrant[E]) Outcome[M]

	// Tiebreaker runs immediately after Battle reports a tie, with the same two
	// entrants. It must decide: the returned side has to be SideA or SideB.
	Tiebreaker(a, b *Entrant[E]) (Side, M)
}

// Outcome is the result of one [BattleSystem.Battle] call.
type Outcome[M any] struct {
	Tie      bool
	Winner   Side // ignored when Tie is set
	Metadata M    // ignored when Tie is set
}

// Decisive returns an outcome won by side with the given metadata.
func Decisive[M any](side Side, metadata M) Outcome[M] {
	return Outcome[M]{Winner: side, Metadata: metadata}
}

// Tie returns an outcome that sends the round to the tiebreaker.
func Tie[M any]() Outcome[M] {
	return Outcome[M]{Tie: true}
}

// Policy adapts a pair of functions to [BattleSystem].
//
// A nil TiebreakerFn falls back to SideA with the zero metadata.
type Policy[E, M any] struct {
	BattleFn     func(a, b *Entrant[E]) Outcome[M]
	TiebreakerFn func(a, b *Entrant[E]) (Side, M)
}

// Battle calls p.BattleFn.
func (p Policy[E, M]) Battle(a, b *Entrant[E]) Outcome[M] {
	return p.BattleFn(a, b)
}

// Tiebreaker calls p.TiebreakerFn.
func (p Policy[E, M]) Tiebreaker(a, b *Entrant[E]) (Side, M) {
	if p.TiebreakerFn == nil {
		var zero M
		return SideA, zero
	}
	return p.TiebreakerFn(a, b)
}

var _ BattleSystem[int, string] = Policy[int, string]{}
