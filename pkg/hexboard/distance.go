package hexboard

import "container/list"

// zeroOneEntry is one slot of the 0-1 BFS deque.
type zeroOneEntry struct {
	node int32
	dist int
}

// ShortestDistance runs a 0-1 BFS from player's start virtual to their
// end virtual. Edges into a virtual node or a cell the player already
// owns cost 0; edges into an empty cell cost 1; edges into the opponent's
// cell are absent. Returns Unreachable if no path exists.
func (b *Board) ShortestDistance(player Cell) int {
	start, end := b.adj.virtLeft, b.adj.virtRight
	if player == Player2 {
		start, end = b.adj.virtTop, b.adj.virtBottom
	}

	dist := make([]int, len(b.adj.neighbors))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[start] = 0

	dq := list.New()
	dq.PushFront(zeroOneEntry{start, 0})

	n32 := int32(b.n())
	for dq.Len() > 0 {
		front := dq.Front()
		cur := front.Value.(zeroOneEntry)
		dq.Remove(front)

		if cur.node == end {
			return cur.dist
		}
		if cur.dist > dist[cur.node] {
			continue
		}

		for _, v := range b.adj.neighbors[cur.node] {
			weight := 1
			if v >= n32 {
				weight = 0
			} else if b.cells[v] == player {
				weight = 0
			} else if b.cells[v] != Empty {
				continue
			}

			nd := cur.dist + weight
			if nd < dist[v] {
				dist[v] = nd
				if weight == 0 {
					dq.PushFront(zeroOneEntry{v, nd})
				} else {
					dq.PushBack(zeroOneEntry{v, nd})
				}
			}
		}
	}

	return Unreachable
}
