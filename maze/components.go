package maze

// ReachableFrom returns every passable cell connected to c through
// orthogonal moves, c included, in breadth-first discovery order.
// Returns nil if c is a wall or out of bounds.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ReachableFrom(c Cell) []Cell {
	if !g.Passable(c) {
		return nil
	}
	seen := make([]bool, g.width*g.height)
	seen[g.index(c)] = true
	queue := []Cell{c}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.index(n.Cell)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n.Cell)
			}
		}
	}
	return queue
}

// index maps c to a row-major index: Row*width + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}
