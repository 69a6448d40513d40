package gappal

// EquivClassTable assigns, for a fixed substring length L, a class id to
// every starting position of the original string such that two positions
// share an id iff their length-L substrings are equal (forward), or iff
// the length-L substrings ending there are equal once reversed (reverse).
// Class id 0 means "no valid length-L substring at that position".
type EquivClassTable struct {
	L          int
	Forward    []int // length n+1
	Reverse    []int // length n+1
	NumClasses int
}

// NewEquivClassTable builds the table by a single DFS over aug's suffix
// tree. The DFS tracks, per root-to-node path, the depth crossing point
// where the path first reaches L characters; every leaf in the subtree
// below that crossing shares one freshly allocated class id - the standard
// trick that makes two positions' L-windows comparable by an integer
// equality check instead of a string comparison.
func NewEquivClassTable(aug *AugmentedString, L int) *EquivClassTable {
	n := aug.N()
	augLen := 2*n + 1
	substrClasses := make([]int, augLen)
	classCounter := 0

	var walk func(node *stNode, label int)
	walk = func(node *stNode, label int) {
		preDepth := 0
		if node.parent != nil {
			preDepth = node.parent.edgeDepth
		}
		postDepth := node.edgeDepth

		if label == 0 && preDepth < L && postDepth >= L {
			classCounter++
			label = classCounter
		}

		if node.isLeaf() {
			// postDepth is inflated by one relative to the real position
			// within the augmented string, because every leaf's incoming
			// edge carries the tree's own terminating sentinel as its
			// last character; the "-1" below is exactly that correction.
			// node.pathPosition already accounts for it (it is the start
			// position in the augmented string itself), so it is used
			// directly here instead of re-deriving it from postDepth.
			if postDepth-1 >= L {
				substrClasses[node.pathPosition] = label
			}
			return
		}
		for c := node.firstChild; c != nil; c = c.nextSibling {
			walk(c, label)
		}
	}
	walk(aug.Root(), 0)

	forward := make([]int, n+1)
	reverse := make([]int, n+1)
	for i := 0; i <= n-L; i++ {
		forward[i] = substrClasses[i]
		reverse[n-i] = substrClasses[n+1+i]
	}

	maxID := 0
	for _, v := range forward {
		if v > maxID {
			maxID = v
		}
	}
	for _, v := range reverse {
		if v > maxID {
			maxID = v
		}
	}

	return &EquivClassTable{
		L:          L,
		Forward:    forward,
		Reverse:    reverse,
		NumClasses: maxID + 1,
	}
}

// verifyEquivClasses checks the pairwise correctness property from
// spec.md §8.5 by brute force: class equality must coincide exactly with
// substring equality in both directions, and invalid positions must carry
// class 0.
func verifyEquivClasses(s []byte, table *EquivClassTable) bool {
	n := len(s)
	L := table.L
	for i := 0; i <= n; i++ {
		if i > n-L && table.Forward[i] != 0 {
			return false
		}
		if i < L && table.Reverse[i] != 0 {
			return false
		}
	}
	for i := 0; i <= n-L; i++ {
		for j := 0; j <= n-L; j++ {
			want := string(s[i:i+L]) == string(s[j:j+L])
			got := table.Forward[i] == table.Forward[j]
			if want != got {
				return false
			}
		}
	}
	for i := L; i <= n; i++ {
		for j := L; j <= n; j++ {
			want := reverseBytes(s[i-L:i])
			wantEq := string(want) == string(reverseBytes(s[j-L:j]))
			got := table.Reverse[i] == table.Reverse[j]
			if wantEq != got {
				return false
			}
		}
	}
	return true
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
