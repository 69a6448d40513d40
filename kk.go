package gappal

// Palindrome is one maximal gapped palindrome found by an Enumerator's
// sweep: the left arm spans [LeftStart, LeftEnd), the right arm spans
// [RightStart, RightEnd), and reverse(s[LeftStart:LeftEnd]) ==
// s[RightStart:RightEnd].
type Palindrome struct {
	LeftStart, LeftEnd, RightStart, RightEnd int
}

// Enumerator finds every maximal gapped palindrome in a string whose arm
// length is at least a configured minimum and whose gap length falls
// within a configured closed interval, in O(n + output) time.
type Enumerator struct {
	s    []byte
	L    int
	gMin int
	gMax int

	aug   *AugmentedString
	table *EquivClassTable
	list  *EquivClassList
}

// NewEnumerator builds the augmented suffix tree, the L-length equivalence
// classes, and an empty array-of-lists ready for the sweep. minArmLength
// must be >= 1 and 0 <= gapMin <= gapMax.
func NewEnumerator(s []byte, minArmLength, gapMin, gapMax int) (*Enumerator, error) {
	if minArmLength < 1 {
		return nil, newError("NewEnumerator", KindInvalidArgument, ErrEmptyRange)
	}
	if gapMin < 0 || gapMin > gapMax {
		return nil, newError("NewEnumerator", KindInvalidArgument, ErrEmptyRange)
	}

	aug, err := NewAugmentedString(s)
	if err != nil {
		return nil, err
	}
	table := NewEquivClassTable(aug, minArmLength)
	list := NewEquivClassList(s, table.NumClasses)

	return &Enumerator{
		s:     s,
		L:     minArmLength,
		gMin:  gapMin,
		gMax:  gapMax,
		aug:   aug,
		table: table,
		list:  list,
	}, nil
}

// Run sweeps the string once, calling emit for every maximal gapped
// palindrome found, in order of increasing right-arm start and then
// increasing left-arm end. Returning false from emit stops the sweep
// immediately; any palindromes already emitted remain valid.
func (e *Enumerator) Run(emit func(Palindrome) bool) {
	n := len(e.s)
	for j := 0; j < n; j++ {
		lc := e.table.Reverse[j]
		if lc == 0 {
			continue
		}
		e.list.Add(lc, j)

		rc := e.table.Forward[j]
		cursor := e.list.PreviousStartItem(rc)
		if cursor == nil {
			continue
		}

		// The cursor stays on the class's last item when every item is out
		// of range, so items added to the class later are still reached.
		for cursor.nextItem != nil && cursor.position < j-e.gMax {
			cursor = cursor.nextItem
		}
		e.list.SetPreviousStartItem(rc, cursor)
		if cursor.position < j-e.gMax {
			continue
		}

		for cursor != nil && cursor.position <= j-e.gMin {
			arm := e.aug.Cpsl(cursor.position-1, j)
			p := Palindrome{
				LeftStart:  cursor.position - arm,
				LeftEnd:    cursor.position,
				RightStart: j,
				RightEnd:   j + arm,
			}
			if !emit(p) {
				return
			}
			cursor = cursor.nextItem
		}
	}
}

// Enumerate is a convenience wrapper around NewEnumerator and Run for
// one-shot use.
func Enumerate(s []byte, minArmLength, gapMin, gapMax int, emit func(Palindrome) bool) error {
	e, err := NewEnumerator(s, minArmLength, gapMin, gapMax)
	if err != nil {
		return err
	}
	e.Run(emit)
	return nil
}
