package vectortree

// setChild assigns node.children[idx] = val, keeping node.length in sync
// with the number of non-nil children.
func setChild[T any](node *interior[T], idx int, val any) {
	wasNil := node.children[idx] == nil
	node.children[idx] = val
	isNil := val == nil
	switch {
	case wasNil && !isNil:
		node.length++
	case !wasNil && isNil:
		node.length--
	}
}

// copyPath clones every interior node from root down to the leaf addressed
// by path, applies mutate to a clone of that leaf, and returns the new
// root. Nodes not on path are shared unchanged with root; the caller's
// root is left untouched.
func copyPath[T any](root any, path []int, mutate func(*leaf[T]) *leaf[T]) any {
	if len(path) == 0 {
		panic("vectortree: copyPath called with empty path")
	}
	top := root.(*interior[T]).clone()
	node := top
	for level, idx := range path {
		if level == len(path)-1 {
			var l *leaf[T]
			if existing := node.children[idx]; existing != nil {
				l = existing.(*leaf[T]).clone()
			} else {
				l = newLeaf[T]()
			}
			setChild(node, idx, mutate(l))
			break
		}
		var child *interior[T]
		if existing := node.children[idx]; existing != nil {
			child = existing.(*interior[T]).clone()
		} else {
			child = newInterior[T]()
		}
		setChild(node, idx, child)
		node = child
	}
	return top
}

// copyPath2 clones the union of two root-to-leaf paths, applying mutateA
// and mutateB to clones of the two (possibly identical) addressed leaves.
// Shared prefix nodes between pathA and pathB are cloned only once, giving
// the same sharing behavior as applying copyPath twice in sequence would
// not: the second copyPath call would otherwise re-clone the first call's
// fresh copies along the common prefix for no benefit.
func copyPath2[T any](root any, pathA, pathB []int, mutateA, mutateB func(*leaf[T]) *leaf[T]) any {
	if len(pathA) == 0 || len(pathB) == 0 {
		panic("vectortree: copyPath2 called with empty path")
	}
	if pathsEqual(pathA, pathB) {
		combined := func(l *leaf[T]) *leaf[T] {
			return mutateB(mutateA(l))
		}
		return copyPath(root, pathA, combined)
	}
	top := root.(*interior[T]).clone()
	descend2(top, pathA, pathB, mutateA, mutateB)
	return top
}

func pathsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// descend2 mutates node (already a fresh clone) in place, recursing down
// the divergent tails of pathA and pathB.
func descend2[T any](node *interior[T], pathA, pathB []int, mutateA, mutateB func(*leaf[T]) *leaf[T]) {
	idxA, idxB := pathA[0], pathB[0]
	restA, restB := pathA[1:], pathB[1:]

	if idxA == idxB {
		if len(restA) == 0 {
			var l *leaf[T]
			if existing := node.children[idxA]; existing != nil {
				l = existing.(*leaf[T]).clone()
			} else {
				l = newLeaf[T]()
			}
			setChild(node, idxA, mutateB(mutateA(l)))
			return
		}
		child := cloneInteriorChild[T](node, idxA)
		setChild(node, idxA, child)
		descend2(child, restA, restB, mutateA, mutateB)
		return
	}

	applyLeafMutation(node, idxA, restA, mutateA)
	applyLeafMutation(node, idxB, restB, mutateB)
}

func cloneInteriorChild[T any](node *interior[T], idx int) *interior[T] {
	if existing := node.children[idx]; existing != nil {
		return existing.(*interior[T]).clone()
	}
	return newInterior[T]()
}

// applyLeafMutation clones the single path (idx, rest...) under node and
// applies mutate to the addressed leaf.
func applyLeafMutation[T any](node *interior[T], idx int, rest []int, mutate func(*leaf[T]) *leaf[T]) {
	if len(rest) == 0 {
		var l *leaf[T]
		if existing := node.children[idx]; existing != nil {
			l = existing.(*leaf[T]).clone()
		} else {
			l = newLeaf[T]()
		}
		setChild(node, idx, mutate(l))
		return
	}
	child := cloneInteriorChild[T](node, idx)
	setChild(node, idx, child)
	idxNext, restNext := rest[0], rest[1:]
	applyLeafMutation(child, idxNext, restNext, mutate)
}
