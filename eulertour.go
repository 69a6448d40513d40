package gappal

// EulerTour is a depth-first traversal of a suffix tree recorded as three
// parallel arrays, the input to the Bender-Farach-Colton LCA reduction.
type EulerTour struct {
	Nodes         []*stNode // node visited at each step
	Depths        []int     // depth of Nodes[i], root = 0
	FirstInstance []int     // indexed by node.index: first step visiting that node
}

// NewEulerTour builds the Euler tour of tree in a single DFS pass.
func NewEulerTour(tree *Tree) *EulerTour {
	et := &EulerTour{
		FirstInstance: make([]int, tree.NumNodes()),
	}
	for i := range et.FirstInstance {
		et.FirstInstance[i] = -1
	}

	tree.EulerWalk(tree.Root(), 0,
		func(t *Tree, n *stNode, depth any) any {
			et.record(n, depth.(int))
			return depth.(int) + 1
		},
		func(t *Tree, n *stNode, depth any) {
			et.record(n, depth.(int))
		},
	)

	return et
}

func (et *EulerTour) record(n *stNode, depth int) {
	et.Nodes = append(et.Nodes, n)
	et.Depths = append(et.Depths, depth)
	if et.FirstInstance[n.index] == -1 {
		et.FirstInstance[n.index] = len(et.Nodes) - 1
	}
}

// Len returns the number of steps in the tour (2*NumNodes()-1).
func (et *EulerTour) Len() int { return len(et.Nodes) }

// verifyEulerTour checks the invariants spec.md §8.3 and §9 Open Question 4
// call for: the ±1 property on Depths, root bookending Nodes, the leaf count
// derived from consecutive-equal triples, and the strict-increasing property
// of FirstInstance (except that entry 0, the root's, may legitimately tie
// with nothing since it is always the smallest position by construction).
func verifyEulerTour(tree *Tree, et *EulerTour, stringLength int) bool {
	n := et.Len()
	if n == 0 {
		return false
	}
	if et.Nodes[0] != tree.Root() || et.Nodes[n-1] != tree.Root() {
		return false
	}
	for i := 0; i+1 < n; i++ {
		d := et.Depths[i+1] - et.Depths[i]
		if d != 1 && d != -1 {
			return false
		}
	}
	leaves := 0
	for i := 0; i+2 < n; i++ {
		if et.Nodes[i] == et.Nodes[i+2] {
			leaves++
		}
	}
	if leaves != stringLength {
		return false
	}
	prev := -1
	for i, fi := range et.FirstInstance {
		if fi < 0 {
			return false
		}
		if i == 0 {
			if fi != 0 {
				return false
			}
		} else if fi <= prev {
			return false
		}
		prev = fi
	}
	return true
}
