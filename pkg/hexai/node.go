package hexai

import "github.com/KISSandDRY/Hex/pkg/hexboard"

// noIndex is the arena-index sentinel used for "no parent"/"no move".
const noIndex = -1

// node is one arena-allocated search tree record. Children and the
// untried-move frontier are referenced by move index (int, the board
// cell index) and by small integer arena indices, never by pointer, so
// the tree can be reset by truncating the arena instead of freeing
// anything.
type node struct {
	move           int // move that reached this node from its parent, -1 at root
	parent         int // arena index of the parent, -1 at root
	playerWhoMoved hexboard.Cell

	visits int32
	wins   float64

	raveVisits float64
	raveWins   float64

	children []int32
	untried  []int // sorted ascending by priority; highest priority at the end
}

// pool is the per-call arena of nodes, grown on demand and truncated
// (never deallocated) between calls so its backing storage is reused.
type pool struct {
	nodes   []node
	softCap int
}

func newPool(softCap int) *pool {
	p := &pool{softCap: softCap}
	p.nodes = make([]node, 0, min(softCap, 4096))
	return p
}

// reset truncates the arena to zero length, retaining its capacity.
func (p *pool) reset() {
	p.nodes = p.nodes[:0]
}

func (p *pool) size() int {
	return len(p.nodes)
}

// nearCap reports whether the arena is within the soft-cap margin of its
// configured ceiling; the search loop stops expanding once this is true.
func (p *pool) nearCap() bool {
	return len(p.nodes) >= p.softCap-nodePoolSoftCapMargin
}

func (p *pool) get(idx int32) *node {
	return &p.nodes[idx]
}

// add appends a new node and returns its arena index.
func (p *pool) add(n node) int32 {
	p.nodes = append(p.nodes, n)
	return int32(len(p.nodes) - 1)
}
