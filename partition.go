package gappal

import "math/bits"

// TourPartition splits an Euler tour's depth array into fixed-size blocks
// and records each block's minimum value and the position of that minimum
// within the block.
type TourPartition struct {
	depths []int
	blockB int

	blockMin      []int
	minPosInBlock []int
}

// blockSize computes B = max(1, ceil(log2(m)/2)) via bits.Len, which gives
// floor(log2(m))+1 for m>0 - the same bit-trick style of arithmetic
// flonle-diy-redis's radix trie uses for its own size computations.
func blockSize(m int) int {
	if m <= 1 {
		return 1
	}
	log2 := bits.Len(uint(m - 1)) // ceil(log2(m)) for m > 1
	b := (log2 + 1) / 2
	if b < 1 {
		b = 1
	}
	return b
}

// NewTourPartition partitions depths into blocks of size blockSize(len(depths)).
func NewTourPartition(depths []int) *TourPartition {
	m := len(depths)
	b := blockSize(m)
	tp := &TourPartition{depths: depths, blockB: b}

	numBlocks := (m + b - 1) / b
	tp.blockMin = make([]int, numBlocks)
	tp.minPosInBlock = make([]int, numBlocks)

	for k := 0; k < numBlocks; k++ {
		block := tp.GetBlock(k)
		minVal, minPos := block[0], 0
		for i, v := range block {
			if v < minVal {
				minVal, minPos = v, i
			}
		}
		tp.blockMin[k] = minVal
		tp.minPosInBlock[k] = minPos
	}

	return tp
}

// B returns the block size.
func (tp *TourPartition) B() int { return tp.blockB }

// NumBlocks returns the number of blocks.
func (tp *TourPartition) NumBlocks() int { return len(tp.blockMin) }

// BlockIndex returns the block containing tour position p.
func (tp *TourPartition) BlockIndex(p int) int { return p / tp.blockB }

// PosInBlock returns p's offset within its block.
func (tp *TourPartition) PosInBlock(p int) int { return p % tp.blockB }

// GetBlock returns a copy of depths[k*B .. min(len(depths), (k+1)*B)).
func (tp *TourPartition) GetBlock(k int) []int {
	start := k * tp.blockB
	end := start + tp.blockB
	if end > len(tp.depths) {
		end = len(tp.depths)
	}
	out := make([]int, end-start)
	copy(out, tp.depths[start:end])
	return out
}

// BlockMin returns the minimum value in block k.
func (tp *TourPartition) BlockMin(k int) int { return tp.blockMin[k] }

// MinPosInBlock returns the position within block k of its minimum.
func (tp *TourPartition) MinPosInBlock(k int) int { return tp.minPosInBlock[k] }

// verifyTourPartition checks that every non-final block has exactly B
// entries and the final block is non-empty.
func verifyTourPartition(tp *TourPartition) bool {
	n := tp.NumBlocks()
	if n == 0 {
		return false
	}
	for k := 0; k < n-1; k++ {
		if len(tp.GetBlock(k)) != tp.blockB {
			return false
		}
	}
	return len(tp.GetBlock(n-1)) > 0
}
