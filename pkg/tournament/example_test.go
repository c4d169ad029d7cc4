package tournament_test

import (
	"fmt"

	"github.com/matzehuels/bracket/pkg/tournament"
)

// highest wins; equal values go to the tiebreaker, which favors side A.
var highest = tournament.Policy[int, string]{
	BattleFn: func(a, b *tournament.Entrant[int]) tournament.Outcome[string] {
		x, y := a.Value(), b.Value()
		switch {
		case x > y:
			return tournament.Decisive(tournament.SideA, fmt.Sprintf("%d wins by %d!", x, x-y))
		case y > x:
			return tournament.Decisive(tournament.SideB, fmt.Sprintf("%d wins by %d!", y, y-x))
		default:
			return tournament.Tie[string]()
		}
	},
}

func Example() {
	t, err := tournament.New[int, string]([]int{6, 1, 2, 9, 3, 4, 127, 5, 8, 7}, highest)
	if err != nil {
		panic(err)
	}
	if err := t.Solve(); err != nil {
		panic(err)
	}

	champion, _, _ := t.WinnerEntrant(t.Root())
	finals, _ := t.Node(t.Root())
	fmt.Println(champion.Value())
	fmt.Println(finals.Round)
	fmt.Println(t)
	// Output:
	// 127
	// B wins --- 127 wins by 118!
	// Tournament: 10 entrants, 9 rounds (9 complete)
}

func ExampleTournament_NextRound() {
	t, _ := tournament.New[int, string]([]int{1, 2, 3, 4}, highest, tournament.WithName("Cup"))

	for {
		id, ok := t.NextRound()
		if !ok {
			break
		}
		if _, err := t.SolveRound(id); err != nil {
			panic(err)
		}
		n, _ := t.Node(id)
		fmt.Printf("round %d: %s\n", id, n.Round)
	}
	// Output:
	// round 1: B wins --- 2 wins by 1!
	// round 2: B wins --- 4 wins by 1!
	// round 0: B wins --- 4 wins by 2!
}
