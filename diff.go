package dring

import "sort"

// DiffSet is the set of offsets at which two buffers differ.
//
// Offsets below the common length are stored explicitly. Offsets in the tail
// [common, total) exist in only one buffer and always count as different.
type DiffSet struct {
	offsets  []int // ascending, all < common
	common   int
	total    int
	tailSide Side
}

// Compare returns the offset-aligned differences between a and b.
func Compare(a, b []byte) *DiffSet {
	common := min(len(a), len(b))
	d := &DiffSet{
		common: common,
		total:  max(len(a), len(b)),
	}
	if len(b) > len(a) {
		d.tailSide = SideB
	}
	for i := 0; i < common; i++ {
		if a[i] != b[i] {
			d.offsets = append(d.offsets, i)
		}
	}
	return d
}

// Contains reports whether off is a differing offset.
func (d *DiffSet) Contains(off int) bool {
	if off < 0 || off >= d.total {
		return false
	}
	if off >= d.common {
		return true
	}
	i := sort.SearchInts(d.offsets, off)
	return i < len(d.offsets) && d.offsets[i] == off
}

// Offsets returns the differing offsets inside the common region, ascending.
// Tail offsets are not listed; see Tail.
func (d *DiffSet) Offsets() []int {
	return d.offsets
}

// Tail returns the range [start, end) held only by the longer buffer and the
// side that supplies it. start == end when both buffers have equal length.
func (d *DiffSet) Tail() (start, end int, side Side) {
	return d.common, d.total, d.tailSide
}

// Count returns the total number of differing offsets, tail included.
func (d *DiffSet) Count() int {
	return len(d.offsets) + d.total - d.common
}

// Empty reports whether the buffers are identical.
func (d *DiffSet) Empty() bool {
	return d.Count() == 0
}

// Index returns the zero-based rank of off among all differing offsets.
// The boolean is false when off is not a differing offset.
func (d *DiffSet) Index(off int) (int, bool) {
	if !d.Contains(off) {
		return 0, false
	}
	if off >= d.common {
		return len(d.offsets) + off - d.common, true
	}
	return sort.SearchInts(d.offsets, off), true
}

// Next returns the first differing offset strictly after off.
func (d *DiffSet) Next(off int) (int, bool) {
	i := sort.SearchInts(d.offsets, off+1)
	if i < len(d.offsets) {
		return d.offsets[i], true
	}
	next := max(off+1, d.common)
	if next < d.total {
		return next, true
	}
	return 0, false
}

// Prev returns the last differing offset strictly before off.
func (d *DiffSet) Prev(off int) (int, bool) {
	if off > d.common && d.common < d.total {
		return min(off, d.total) - 1, true
	}
	i := sort.SearchInts(d.offsets, off)
	if i > 0 {
		return d.offsets[i-1], true
	}
	return 0, false
}
