// Package dring provides domain types for comparing two binary files.
package dring

// Side identifies one of the two compared files.
type Side int

// Sides of a comparison.
const (
	SideA Side = iota
	SideB
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// File is the immutable content of one compared file.
type File struct {
	Path string
	Data []byte
}

// Len returns the number of bytes in the file.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}

// At returns the byte at off. The boolean is false when off lies outside the
// file, which is how bytes past the end of the shorter file are represented.
func (f *File) At(off int) (byte, bool) {
	if f == nil || off < 0 || off >= len(f.Data) {
		return 0, false
	}
	return f.Data[off], true
}

// Slice returns the bytes in the inclusive range [start, end], clipped to the
// file. Returns nil if nothing of the range lies inside the file.
func (f *File) Slice(start, end int) []byte {
	if f == nil || start > end {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end >= len(f.Data) {
		end = len(f.Data) - 1
	}
	if start > end {
		return nil
	}
	return f.Data[start : end+1]
}

// Comparison is the startup product: both files and their differences.
type Comparison struct {
	A    *File
	B    *File
	Diff *DiffSet
}

// NewComparison compares a and b.
func NewComparison(a, b *File) *Comparison {
	return &Comparison{
		A:    a,
		B:    b,
		Diff: Compare(a.Data, b.Data),
	}
}

// File returns the file on the given side.
func (c *Comparison) File(s Side) *File {
	if s == SideB {
		return c.B
	}
	return c.A
}

// Len returns the size of the shared offset space, max(len(A), len(B)).
func (c *Comparison) Len() int {
	return max(c.A.Len(), c.B.Len())
}
