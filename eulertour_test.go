package gappal

import "testing"

func TestEulerTourInvariants(t *testing.T) {
	for _, s := range []string{"BANANA", "MISSISSIPPI", "A", "AAAA", "ABCDE"} {
		tree, err := NewTree([]byte(s))
		if err != nil {
			t.Fatalf("NewTree(%q): %v", s, err)
		}
		et := NewEulerTour(tree)

		if got, want := et.Len(), 2*tree.NumNodes()-1; got != want {
			t.Fatalf("%q: Len() = %d, want %d", s, got, want)
		}
		if !verifyEulerTour(tree, et, tree.StringLength()) {
			t.Fatalf("%q: verifyEulerTour failed", s)
		}
	}
}

func TestEulerTourFirstInstanceOfRootIsZero(t *testing.T) {
	tree, err := NewTree([]byte("BANANA"))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	et := NewEulerTour(tree)
	if et.FirstInstance[tree.NodeIndex(tree.Root())] != 0 {
		t.Fatalf("root's first instance = %d, want 0", et.FirstInstance[0])
	}
}
