package gappal

import "math/bits"

// SparseTable answers range-minimum-position queries over a fixed array in
// O(1) after an O(m log m) build, using the classic doubling construction.
type SparseTable struct {
	values []int
	table  [][]int // table[j][i] = index of the minimum of values[i .. i+2^j)
}

// NewSparseTable builds a sparse table over values.
func NewSparseTable(values []int) *SparseTable {
	m := len(values)
	cols := 1
	if m > 1 {
		cols = bits.Len(uint(m)) // 2^(cols-1) <= m < 2^cols: a column for every floor(log2(r-l))
	}

	st := &SparseTable{values: values}
	st.table = make([][]int, cols)
	st.table[0] = make([]int, m)
	for i := range st.table[0] {
		st.table[0][i] = i
	}

	for j := 1; j < cols; j++ {
		st.table[j] = make([]int, m)
		half := 1 << (j - 1)
		for i := 0; i < m; i++ {
			i2 := i + half
			if i2 >= m {
				st.table[j][i] = st.table[j-1][i]
				continue
			}
			st.table[j][i] = st.pickMin(st.table[j-1][i], st.table[j-1][i2])
		}
	}

	return st
}

func (st *SparseTable) pickMin(a, b int) int {
	if st.values[b] < st.values[a] {
		return b
	}
	return a
}

// Lookup returns the index of the minimum value in values[l:r]. l must be
// strictly less than r.
func (st *SparseTable) Lookup(l, r int) (int, error) {
	if l >= r {
		return 0, newError("SparseTable.Lookup", KindInvalidArgument, ErrEmptyRange)
	}
	m := len(st.values)
	k := bits.Len(uint(r-l)) - 1 // floor(log2(r-l))
	if r-(1<<k) >= m {
		return st.table[k][l], nil
	}
	return st.pickMin(st.table[k][l], st.table[k][r-(1<<k)]), nil
}
