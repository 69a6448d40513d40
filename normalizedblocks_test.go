package gappal

import "testing"

func TestNormalizedBlockRMQFullBlock(t *testing.T) {
	// B=4, a +-1 block.
	block := []int{2, 3, 2, 1}
	db := NewNormalizedBlockRMQ(4)

	pos, err := db.Lookup(block, 0, 4)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if block[pos] != 1 {
		t.Fatalf("Lookup(0,4) = %d (value %d), want value 1", pos, block[pos])
	}

	pos, err = db.Lookup(block, 0, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if block[pos] != 2 {
		t.Fatalf("Lookup(0,2) = %d (value %d), want value 2", pos, block[pos])
	}
}

func TestNormalizedBlockRMQRemainderBlock(t *testing.T) {
	db := NewNormalizedBlockRMQ(4)
	remainder := []int{5, 4, 5}

	pos, err := db.Lookup(remainder, 0, 3)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if remainder[pos] != 4 {
		t.Fatalf("Lookup(0,3) = %d (value %d), want value 4", pos, remainder[pos])
	}

	// A second call with the same remainder shape must succeed.
	if _, err := db.Lookup(remainder, 1, 3); err != nil {
		t.Fatalf("second remainder lookup: %v", err)
	}
}

func TestNormalizedBlockRMQDifferentRemainderIsFatal(t *testing.T) {
	db := NewNormalizedBlockRMQ(4)
	if _, err := db.Lookup([]int{5, 4, 5}, 0, 2); err != nil {
		t.Fatalf("first remainder lookup: %v", err)
	}
	if _, err := db.Lookup([]int{1, 2, 1}, 0, 2); err == nil {
		t.Fatal("expected an error for a second, differently-shaped remainder block")
	}
}

func TestNormalizedBlockRMQBlockTooLargeIsFatal(t *testing.T) {
	db := NewNormalizedBlockRMQ(4)
	if _, err := db.Lookup([]int{1, 2, 3, 2, 1}, 0, 2); err == nil {
		t.Fatal("expected a block-size-mismatch error")
	}
}
