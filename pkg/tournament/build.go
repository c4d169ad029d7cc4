package tournament

// buildGraph lays out n entrants (n >= 1) as a balanced elimination tree and
// returns the graph with its root.
//
// Seeding follows input order. Each odd split pushes the bye to the B side of
// the round that holds three entrants, so the first of those three skips a
// round.
func buildGraph[M any](n int) (*Graph[M], NodeID) {
	g := newGraph[M](2*n - 1)
	if n == 1 {
		return g, g.addEntrant(0)
	}

	ids := make([]EntrantID, n)
	for i := range ids {
		ids[i] = EntrantID(i)
	}
	root := g.addRound()
	g.addLayer(root, ids)
	return g, root
}

// addLayer attaches ids beneath parent. len(ids) is at least 2 for every call
// the builder makes.
func (g *Graph[M]) addLayer(parent NodeID, ids []EntrantID) {
	switch len(ids) {
	case 0, 1:
		// Unreachable: every split leaves at least two ids per side.
	case 2:
		g.addEdge(parent, g.addEntrant(ids[0]), SideA)
		g.addEdge(parent, g.addEntrant(ids[1]), SideB)
	case 3:
		r := g.addRound()
		g.addEdge(parent, r, SideA)
		g.addEdge(parent, g.addEntrant(ids[0]), SideB)
		g.addLayer(r, ids[1:])
	default:
		mid := len(ids) / 2
		ra := g.addRound()
		rb := g.addRound()
		g.addEdge(parent, ra, SideA)
		g.addEdge(parent, rb, SideB)
		g.addLayer(ra, ids[:mid])
		g.addLayer(rb, ids[mid:])
	}
}
