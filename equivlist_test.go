package gappal

import "testing"

func TestEquivClassListChronologicalOrder(t *testing.T) {
	s := []byte("abcabc")
	list := NewEquivClassList(s, 2)

	list.Add(1, 0)
	list.Add(1, 3)
	list.Add(1, 5)

	var positions []int
	for item := list.PreviousStartItem(1); item != nil; item = item.nextItem {
		positions = append(positions, item.position)
	}
	want := []int{0, 3, 5}
	if len(positions) != len(want) {
		t.Fatalf("got %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("got %v, want %v", positions, want)
		}
	}

	if list.LastItem(1).position != 5 {
		t.Fatalf("LastItem(1).position = %d, want 5", list.LastItem(1).position)
	}
	if list.LastItem(0) != nil {
		t.Fatal("LastItem(0) should be nil, nothing was ever added to class 0")
	}
}

func TestEquivClassListNextRunSkipsSameCharacterRuns(t *testing.T) {
	// Class 1 gets positions whose characters are: a, a, b, a (s[0]=s[1]='a', s[2]='b', s[3]='a').
	s := []byte("aaba")
	list := NewEquivClassList(s, 2)
	list.Add(1, 0)
	list.Add(1, 1)
	list.Add(1, 2)
	list.Add(1, 3)

	first := list.PreviousStartItem(1)
	if first.position != 0 {
		t.Fatalf("first item position = %d, want 0", first.position)
	}
	// The run of 'a's at 0,1 should be skipped in one hop to position 2 ('b').
	second := first.nextRun
	if second == nil || second.position != 2 {
		t.Fatalf("nextRun from position 0 = %v, want position 2", second)
	}
	third := second.nextRun
	if third == nil || third.position != 3 {
		t.Fatalf("nextRun from position 2 = %v, want position 3", third)
	}
	if third.nextRun != nil {
		t.Fatal("the last run's nextRun must be nil until a future item closes it")
	}
}

func TestEquivClassListCursor(t *testing.T) {
	s := []byte("xxxxxxxxxx")
	list := NewEquivClassList(s, 1)
	if list.PreviousStartItem(0) != nil {
		t.Fatal("cursor on an empty class should be nil")
	}
	list.Add(0, 7)
	list.Add(0, 9)
	if list.PreviousStartItem(0).position != 7 {
		t.Fatalf("default cursor should be the first item added, got position %d", list.PreviousStartItem(0).position)
	}
	list.SetPreviousStartItem(0, list.LastItem(0))
	if list.PreviousStartItem(0).position != 9 {
		t.Fatalf("cursor after SetPreviousStartItem = %d, want 9", list.PreviousStartItem(0).position)
	}
}
