package hexboard

// disjointSet is a union-find forest with path compression and
// union-by-rank, sized once at construction and never shrunk.
type disjointSet struct {
	parent []int32
	rank   []int8
}

func newDisjointSet(n int) disjointSet {
	ds := disjointSet{
		parent: make([]int32, n),
		rank:   make([]int8, n),
	}
	for i := range ds.parent {
		ds.parent[i] = int32(i)
	}
	return ds
}

func (ds *disjointSet) find(i int32) int32 {
	for ds.parent[i] != i {
		ds.parent[i] = ds.parent[ds.parent[i]]
		i = ds.parent[i]
	}
	return i
}

func (ds *disjointSet) unite(i, j int32) {
	ri, rj := ds.find(i), ds.find(j)
	if ri == rj {
		return
	}
	if ds.rank[ri] < ds.rank[rj] {
		ri, rj = rj, ri
	}
	ds.parent[rj] = ri
	if ds.rank[ri] == ds.rank[rj] {
		ds.rank[ri]++
	}
}

func (ds *disjointSet) connected(i, j int32) bool {
	return ds.find(i) == ds.find(j)
}

// clone returns a deep copy; callers that only read never need it, but
// Board.Clone must duplicate parent/rank so copies don't alias mutable state.
func (ds disjointSet) clone() disjointSet {
	out := disjointSet{
		parent: make([]int32, len(ds.parent)),
		rank:   make([]int8, len(ds.rank)),
	}
	copy(out.parent, ds.parent)
	copy(out.rank, ds.rank)
	return out
}
