package vectortree

import (
	"fmt"
	"strings"

	"github.com/BarisAlbayrakIEEE/VectorTree/pkg/errutil"
	"github.com/BarisAlbayrakIEEE/VectorTree/pkg/persistent/hash"
)

// Validate checks v's internal invariants: the root is nil exactly when
// the vector is empty, every leaf along the tree holds no more than
// BufferSize elements, no leaf or interior node is reachable at a depth
// other than the one its height implies, and the leaf lengths add up to
// v.Len(). It is meant for use in tests and
// diagnostics, not on any hot path.
func (v Vector[T]) Validate() error {
	if v.size == 0 {
		if v.root != nil {
			return fmt.Errorf("vectortree: empty vector has non-nil root")
		}
		return nil
	}
	if v.root == nil {
		return fmt.Errorf("vectortree: non-empty vector has nil root")
	}
	if v.height < 1 {
		return fmt.Errorf("vectortree: non-empty vector has height %d", v.height)
	}
	if v.size > capacityForHeight(v.height) {
		return fmt.Errorf("vectortree: size %d exceeds capacity %d for height %d",
			v.size, capacityForHeight(v.height), v.height)
	}

	var errs []error
	counted := validateNode[T](v.root, v.height, &errs)
	if counted != v.size {
		errs = append(errs, fmt.Errorf("vectortree: counted %d elements, want %d", counted, v.size))
	}
	return errutil.Multi(errs...)
}

func validateNode[T any](node any, levelsBelow int, errs *[]error) int {
	if levelsBelow == 0 {
		l, ok := node.(*leaf[T])
		if !ok {
			*errs = append(*errs, fmt.Errorf("vectortree: expected leaf at bottom level, got %T", node))
			return 0
		}
		if l.length < 0 || l.length > BufferSize {
			*errs = append(*errs, fmt.Errorf("vectortree: leaf length %d out of range", l.length))
		}
		return l.length
	}
	n, ok := node.(*interior[T])
	if !ok {
		*errs = append(*errs, fmt.Errorf("vectortree: expected interior node, got %T", node))
		return 0
	}
	total := 0
	seenNil := false
	for _, child := range n.children {
		if child == nil {
			seenNil = true
			continue
		}
		if seenNil {
			*errs = append(*errs, fmt.Errorf("vectortree: non-nil child after nil child; tree is not left-packed"))
		}
		total += validateNode[T](child, levelsBelow-1, errs)
	}
	return total
}

// Dump renders the shape of v's tree: a header line, then one line per
// level giving the number of nodes at that level and their total number of
// live (non-nil) children, or, at the leaf level, their total number of
// elements. It is a diagnostic aid, not a stable format.
func (v Vector[T]) Dump() string {
	if v.root == nil {
		return "empty vector\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%d height=%d capacity=%d\n", v.size, v.height, capacityForHeight(v.height))
	dumpLevel[T](&sb, []any{v.root}, v.height, 0)
	return sb.String()
}

func dumpLevel[T any](sb *strings.Builder, nodes []any, levelsBelow, depth int) {
	if len(nodes) == 0 {
		return
	}
	live := 0
	var next []any
	for _, n := range nodes {
		if levelsBelow == 0 {
			live += n.(*leaf[T]).length
			continue
		}
		in := n.(*interior[T])
		live += in.length
		for _, child := range in.children {
			if child != nil {
				next = append(next, child)
			}
		}
	}
	label := "elements"
	if levelsBelow > 0 {
		label = "children"
	}
	fmt.Fprintf(sb, "  depth %d: %d node(s), %d live %s\n", depth, len(nodes), live, label)
	if levelsBelow > 0 {
		dumpLevel[T](sb, next, levelsBelow-1, depth+1)
	}
}

// Hash returns a content hash of v, combining elemHash(e) for every
// element e in order using a DJB-style combinator. Two Vectors that are
// Equal under the same element equality function produce the same Hash,
// provided elemHash is consistent with that equality.
func (v Vector[T]) Hash(elemHash func(T) uint32) uint32 {
	hs := make([]uint32, v.size)
	for i := 0; i < v.size; i++ {
		e, _ := v.Get(i)
		hs[i] = elemHash(e)
	}
	return hash.DJB(hs...)
}
