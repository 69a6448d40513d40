package gappal

// AugmentedString wraps an LCA-enabled suffix tree built over
// s + '#' + reverse(s), the structure the K&K enumerator uses to compute
// common-prefix-suffix lengths in O(1).
type AugmentedString struct {
	*LCATree
	n         int // len(s)
	leafArray []*stNode
}

// separator marks the midpoint of the augmented string. Like the suffix
// tree's own sentinel, it must not appear in natural input.
const separator = '#'

// NewAugmentedString builds A = s + '#' + reverse(s) and its LCA suffix tree.
func NewAugmentedString(s []byte) (*AugmentedString, error) {
	for _, b := range s {
		if b == separator {
			return nil, newError("NewAugmentedString", KindInvalidArgument, ErrSentinelInInput)
		}
	}

	n := len(s)
	a := make([]byte, 2*n+1)
	copy(a, s)
	a[n] = separator
	for i := 0; i < n; i++ {
		a[n+1+i] = s[n-1-i]
	}

	lca, err := NewLCATree(a)
	if err != nil {
		return nil, err
	}

	return &AugmentedString{
		LCATree:   lca,
		n:         n,
		leafArray: lca.LeafArray(),
	}, nil
}

// N returns len(s), the length of the original (non-augmented) string.
func (a *AugmentedString) N() int { return a.n }

// Cpsl returns the length of the longest string that is simultaneously a
// prefix of A[rightPos:] and a prefix of reverse(A[:leftPos+1]) - the
// common prefix-suffix length the K&K sweep extends candidate arms with.
func (a *AugmentedString) Cpsl(leftPos, rightPos int) int {
	augLen := 2*a.n + 1
	leftPrime := augLen - leftPos - 1
	leftLeaf := a.leafArray[leftPrime]
	rightLeaf := a.leafArray[rightPos]
	anchor := a.LCA(leftLeaf, rightLeaf)
	depth := a.NodeEdgeDepth(anchor)
	if a.NodeIsLeaf(anchor) {
		// Both positions name the same suffix; its leaf depth also counts
		// the tree's trailing sentinel.
		depth--
	}
	return depth
}
