package vectortree

// PushBack returns a new Vector with v appended to the end of the
// sequence, growing the tree (and, if the current tree is full, adding a
// new root level) as needed. It returns ErrCapacityExceeded if the result
// would need a height beyond MaxHeight.
func (v Vector[T]) PushBack(value T) (Vector[T], error) {
	newSize := v.size + 1
	newHeight := heightForSize(newSize)
	if newHeight > MaxHeight {
		return v, ErrCapacityExceeded
	}

	appendLeaf := func(l *leaf[T]) *leaf[T] {
		l.values[l.length] = value
		l.length++
		return l
	}

	index := v.size
	path := pathToLeaf(index, newHeight)

	var root any
	switch {
	case v.root == nil:
		root = wrapEmptyRoot[T](newHeight)
	case newHeight > v.height:
		root = growRoot[T](v.root, v.height, newHeight)
	default:
		root = v.root
	}

	newRoot := copyPath[T](root, path, appendLeaf)
	return Vector[T]{size: newSize, height: newHeight, root: newRoot, activePath: path}, nil
}

// wrapEmptyRoot builds a fresh, entirely empty interior spine of the given
// height, used the first time a Vector grows from empty.
func wrapEmptyRoot[T any](height int) any {
	var node any = newInterior[T]()
	for i := 1; i < height; i++ {
		parent := newInterior[T]()
		setChild(parent, 0, node)
		node = parent
	}
	return node
}

// growRoot wraps root (of the given height) in newHeight-height fresh
// interior levels, so that the existing tree becomes the leftmost (index
// 0) descendant of the new root.
func growRoot[T any](root any, height, newHeight int) any {
	node := root
	for h := height; h < newHeight; h++ {
		parent := newInterior[T]()
		setChild(parent, 0, node)
		node = parent
	}
	return node
}

// PopBack returns a new Vector without its last element. It returns
// ErrEmpty if v has no elements.
func (v Vector[T]) PopBack() (Vector[T], error) {
	if v.size == 0 {
		return v, ErrEmpty
	}
	if v.size == 1 {
		return Vector[T]{}, nil
	}

	index := v.size - 1
	path := pathToLeaf(index, v.height)
	removeLast := func(l *leaf[T]) *leaf[T] {
		l.length--
		var zero T
		l.values[l.length] = zero
		return l
	}
	newRoot := copyPath[T](v.root, path, removeLast)
	newSize := v.size - 1
	newHeight := heightForSize(newSize)
	if newHeight < v.height {
		newRoot = shrinkRoot[T](newRoot, v.height, newHeight)
	}
	newActivePath := pathToLeaf(newSize-1, newHeight)
	return Vector[T]{size: newSize, height: newHeight, root: newRoot, activePath: newActivePath}, nil
}

// shrinkRoot strips height-newHeight empty outer interior levels (each
// only ever populated at child index 0, since the tree is left-packed)
// from root, leaving the interior node that was its leftmost child as the
// new root.
func shrinkRoot[T any](root any, height, newHeight int) any {
	node := root
	for h := height; h > newHeight; h-- {
		node = node.(*interior[T]).children[0]
	}
	return node
}

// SetAt returns a new Vector with the element at index i replaced by
// value. It returns an *OutOfRangeError if i is not in [0, v.Len()).
func (v Vector[T]) SetAt(i int, value T) (Vector[T], error) {
	if i < 0 || i >= v.size {
		return v, outOfRange("SetAt", i, v.size)
	}
	path := pathToLeaf(i, v.height)
	slot := indexInLeaf(i)
	newRoot := copyPath[T](v.root, path, func(l *leaf[T]) *leaf[T] {
		l.values[slot] = value
		return l
	})
	return Vector[T]{size: v.size, height: v.height, root: newRoot, activePath: v.activePath}, nil
}

// Erase removes the element at index i by moving the last element into
// its place and shrinking the sequence by one (erase does not preserve
// element order). It returns an *OutOfRangeError if i is not in
// [0, v.Len()).
func (v Vector[T]) Erase(i int) (Vector[T], error) {
	if i < 0 || i >= v.size {
		return v, outOfRange("Erase", i, v.size)
	}
	lastIndex := v.size - 1
	if i == lastIndex {
		return v.PopBack()
	}

	last, err := v.Get(lastIndex)
	if err != nil {
		return v, err
	}

	erasedPath := pathToLeaf(i, v.height)
	activePath := pathToLeaf(lastIndex, v.height)
	erasedSlot := indexInLeaf(i)

	overwriteErased := func(l *leaf[T]) *leaf[T] {
		l.values[erasedSlot] = last
		return l
	}
	removeLast := func(l *leaf[T]) *leaf[T] {
		l.length--
		var zero T
		l.values[l.length] = zero
		return l
	}

	newRoot := copyPath2[T](v.root, erasedPath, activePath, overwriteErased, removeLast)
	newSize := v.size - 1
	newHeight := heightForSize(newSize)
	if newHeight < v.height {
		newRoot = shrinkRoot[T](newRoot, v.height, newHeight)
	}
	newActivePath := pathToLeaf(newSize-1, newHeight)
	return Vector[T]{size: newSize, height: newHeight, root: newRoot, activePath: newActivePath}, nil
}

// EraseAt is equivalent to Erase(it.Index()); it exists for callers
// holding an Iterator rather than a raw index.
func (v Vector[T]) EraseAt(it Iterator[T]) (Vector[T], error) {
	return v.Erase(it.index)
}

// Insert always returns ErrUnsupported: this container only supports
// appending and swap-and-pop removal, never arbitrary-position insertion.
func (v Vector[T]) Insert(i int, value T) (Vector[T], error) {
	return v, ErrUnsupported
}

// ForEach returns a new Vector in which every element e has been replaced
// by f(e). It clones the entire tree up front (via Clone) so that the
// transform can be applied to freshly owned nodes without disturbing v or
// any other Vector sharing structure with it.
func (v Vector[T]) ForEach(f func(T) T) Vector[T] {
	if v.size == 0 {
		return v
	}
	out := v.Clone()
	forEachLeaf[T](out.root, out.height, func(l *leaf[T]) {
		for i := 0; i < l.length; i++ {
			l.values[i] = f(l.values[i])
		}
	})
	return out
}

func forEachLeaf[T any](node any, levelsBelow int, visit func(*leaf[T])) {
	if levelsBelow == 0 {
		visit(node.(*leaf[T]))
		return
	}
	n := node.(*interior[T])
	for _, child := range n.children {
		if child == nil {
			continue
		}
		forEachLeaf[T](child, levelsBelow-1, visit)
	}
}
