package gappal

// equivItem is one entry in an equivalence class's position list.
type equivItem struct {
	position int
	nextItem *equivItem // next position added to the same class, chronological order
	nextRun  *equivItem // next item in the class whose character differs from this one's
}

// EquivClassList holds, for each of K equivalence classes, a chronological
// list of positions plus a per-class cursor used by the K&K sweep to avoid
// rescanning positions it has already passed.
type EquivClassList struct {
	s []byte

	last        []*equivItem // last item appended to each class, or nil
	first       []*equivItem // first item ever appended to each class, or nil
	cursor      []*equivItem // previousStartItem per class
	cursorIsSet []bool

	// runStart holds the items accumulated so far in the current run for
	// each class, so that once a run boundary is found (the next item's
	// character differs) every item in the run can have its nextRun
	// back-patched to the new item in one step. This replaces the
	// original's deferred next-run pointer array with a backlog slice per
	// class, since Go slices grow without a manual realloc step.
	runStart [][]*equivItem
}

// NewEquivClassList creates an array-of-lists for numClasses classes over s.
func NewEquivClassList(s []byte, numClasses int) *EquivClassList {
	return &EquivClassList{
		s:           s,
		last:        make([]*equivItem, numClasses),
		first:       make([]*equivItem, numClasses),
		cursor:      make([]*equivItem, numClasses),
		cursorIsSet: make([]bool, numClasses),
		runStart:    make([][]*equivItem, numClasses),
	}
}

// Add appends position to class's list, chronologically after any existing
// items, and closes out the current run if this item's character differs
// from the run's.
func (l *EquivClassList) Add(class, position int) {
	item := &equivItem{position: position}

	if l.first[class] == nil {
		l.first[class] = item
	} else {
		l.last[class].nextItem = item
	}
	l.last[class] = item

	run := l.runStart[class]
	if len(run) == 0 || l.s[run[0].position] == l.s[position] {
		l.runStart[class] = append(run, item)
		return
	}

	for _, prev := range run {
		prev.nextRun = item
	}
	l.runStart[class] = []*equivItem{item}
}

// LastItem returns the most recently added item in class, or nil.
func (l *EquivClassList) LastItem(class int) *equivItem { return l.last[class] }

// PreviousStartItem returns class's cursor, defaulting to the first item
// ever added to the class if the cursor has never been set.
func (l *EquivClassList) PreviousStartItem(class int) *equivItem {
	if l.cursorIsSet[class] {
		return l.cursor[class]
	}
	return l.first[class]
}

// SetPreviousStartItem updates class's cursor.
func (l *EquivClassList) SetPreviousStartItem(class int, item *equivItem) {
	l.cursor[class] = item
	l.cursorIsSet[class] = true
}
