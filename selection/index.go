package selection

import "fmt"

// Index is the path from a Collection down to one Slice. Index values are
// ordered lexicographically with Layout most significant.
type Index struct {
	Layout int
	Line   int
	Run    int
	Slice  int
}

// Compare returns -1, 0 or +1 when i sorts before, equal to or after j.
func (i Index) Compare(j Index) int {
	switch {
	case i.Layout != j.Layout:
		return cmpInt(i.Layout, j.Layout)
	case i.Line != j.Line:
		return cmpInt(i.Line, j.Line)
	case i.Run != j.Run:
		return cmpInt(i.Run, j.Run)
	default:
		return cmpInt(i.Slice, j.Slice)
	}
}

// Less reports whether i sorts before j.
func (i Index) Less(j Index) bool { return i.Compare(j) < 0 }

func (i Index) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", i.Layout, i.Line, i.Run, i.Slice)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
