// Package vectortree implements a persistent, indexed sequence container
// backed by a bitmapped vector trie, in the style of Clojure's
// PersistentVector (see https://hypirion.com/musings/understanding-persistent-vector-pt-1).
//
// A Vector[T] is an immutable handle: every mutating method returns a new
// handle and leaves the receiver's value untouched. New handles share
// untouched subtrees with the value they were derived from; only the
// nodes along the path from the root to the affected leaf are copied.
package vectortree
