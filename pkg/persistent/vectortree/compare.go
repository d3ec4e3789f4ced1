package vectortree

// Equal reports whether a and b have the same length and eq returns true
// for every pair of elements at the same index.
func Equal[T any](a, b Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		ea, _ := a.Get(i)
		eb, _ := b.Get(i)
		if !eq(ea, eb) {
			return false
		}
	}
	return true
}

// CompareSize orders two Vectors by length alone: it returns a negative
// number if a is shorter than b, 0 if they have equal length, and a
// positive number if a is longer. It does not look at elements at all, so
// two same-length Vectors with entirely different contents compare equal
// under CompareSize. This mirrors an unusual but intentional comparison
// used by the container this package's algorithms are modeled on; most
// callers that want an element-aware ordering should use CompareFunc
// instead.
func CompareSize[T any](a, b Vector[T]) int {
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return 1
	default:
		return 0
	}
}

// CompareFunc orders two Vectors lexicographically, calling cmp on pairs
// of elements at the same index (cmp returns a negative number, zero, or
// a positive number the way strings.Compare does) until one differs or
// one Vector runs out of elements, in which case the shorter Vector
// sorts first.
func CompareFunc[T any](a, b Vector[T], cmp func(T, T) int) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		ea, _ := a.Get(i)
		eb, _ := b.Get(i)
		if c := cmp(ea, eb); c != 0 {
			return c
		}
	}
	return CompareSize(a, b)
}
