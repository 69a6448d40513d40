package gappal

// LCATree composes a suffix tree with the Bender-Farach-Colton reduction
// (Euler tour -> block partition -> sparse table over block minima ->
// normalized ±1-block RMQ tables), answering LCA queries in O(1).
type LCATree struct {
	*Tree
	tour      *EulerTour
	partition *TourPartition
	sparse    *SparseTable // over partition.blockMin
	blockRMQ  *NormalizedBlockRMQ
}

// NewLCATree builds the full LCA structure over s.
func NewLCATree(s []byte) (*LCATree, error) {
	tree, err := NewTree(s)
	if err != nil {
		return nil, err
	}
	return newLCATreeFromTree(tree), nil
}

func newLCATreeFromTree(tree *Tree) *LCATree {
	tour := NewEulerTour(tree)
	partition := NewTourPartition(tour.Depths)
	sparse := NewSparseTable(partition.blockMin)
	blockRMQ := NewNormalizedBlockRMQ(partition.B())

	return &LCATree{
		Tree:      tree,
		tour:      tour,
		partition: partition,
		sparse:    sparse,
		blockRMQ:  blockRMQ,
	}
}

// depthAt returns the depth of the node at tour position p.
func (l *LCATree) depthAt(p int) int { return l.tour.Depths[p] }

// inBlockArgmin returns, within block k, the tour position (not the
// in-block offset) of the minimum depth over the half-open in-block range
// [lo, hi).
func (l *LCATree) inBlockArgmin(k, lo, hi int) int {
	block := l.partition.GetBlock(k)
	pos, err := l.blockRMQ.Lookup(block, lo, hi)
	if err != nil {
		panic(err) // unreachable: block sizes and ranges are always valid here
	}
	return k*l.partition.B() + pos
}

// LCA returns the lowest common ancestor of u and v in O(1).
func (l *LCATree) LCA(u, v *stNode) *stNode {
	p1 := l.tour.FirstInstance[u.index]
	p2 := l.tour.FirstInstance[v.index]
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	block1 := l.partition.BlockIndex(p1)
	block2 := l.partition.BlockIndex(p2)
	pos1 := l.partition.PosInBlock(p1)
	pos2 := l.partition.PosInBlock(p2)

	if block1 == block2 {
		best := l.inBlockArgmin(block1, pos1, pos2+1)
		return l.tour.Nodes[best]
	}

	size1 := len(l.partition.GetBlock(block1))
	cand1 := l.inBlockArgmin(block1, pos1, size1)
	cand2 := l.inBlockArgmin(block2, 0, pos2+1)

	best := cand1
	if l.depthAt(cand2) < l.depthAt(best) {
		best = cand2
	}

	if block2 > block1+1 {
		between, err := l.sparse.Lookup(block1+1, block2)
		if err != nil {
			panic(err) // unreachable: block1+1 < block2 guarantees a non-empty range
		}
		betweenPos := between*l.partition.B() + l.partition.MinPosInBlock(between)
		if l.depthAt(betweenPos) < l.depthAt(best) {
			best = betweenPos
		}
	}

	return l.tour.Nodes[best]
}

// verifyLCA compares the O(1) LCA against an O(depth) walk-to-root
// reference for every pair of nodes in the tree.
func verifyLCA(l *LCATree) bool {
	nodes := l.CreateNodeArray()
	for _, u := range nodes {
		for _, v := range nodes {
			want := naiveLCA(u, v)
			got := l.LCA(u, v)
			if got != want {
				return false
			}
		}
	}
	return true
}

func naiveLCA(u, v *stNode) *stNode {
	depth := func(n *stNode) int {
		d := 0
		for p := n; p.parent != nil; p = p.parent {
			d++
		}
		return d
	}
	du, dv := depth(u), depth(v)
	for du > dv {
		u = u.parent
		du--
	}
	for dv > du {
		v = v.parent
		dv--
	}
	for u != v {
		u = u.parent
		v = v.parent
	}
	return u
}
