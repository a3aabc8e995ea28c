package matrix

import (
	"sync"

	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// DestroyParallel drops m's reference to its root, farming the work out
// across p worker goroutines when the root is an inner block with more
// than one nonempty child. This is the only parallel code path this
// module has, and one the caller must never invoke while the tree is
// still reachable from anywhere else. p is
// clamped to the number of top-level subtrees (at most 4); p<=1 runs
// entirely on the calling goroutine.
//
// Go's garbage collector reclaims the underlying storage once every
// reference is gone; DestroyParallel's job is just to make that true as
// soon as possible, concurrently, for large trees.
func (m *Matrix[T]) DestroyParallel(p int) error {
	if m.root.IsEmpty() && m.shape == (index.Shape{}) {
		return ErrDestroyWhileReachable
	}

	in, ok := m.root.AsInner()
	if !ok || p <= 1 {
		m.root = qtree.Empty[T]()
		m.shape = index.Shape{}

		return nil
	}

	sem := make(chan struct{}, p)
	var wg sync.WaitGroup
	for _, pos := range qtree.Positions {
		child, _ := in.Child(pos)
		if child.IsEmpty() {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(c qtree.Node[T]) {
			defer wg.Done()
			defer func() { <-sem }()
			destroySubtree(c)
		}(child)
	}
	wg.Wait()

	m.root = qtree.Empty[T]()
	m.shape = index.Shape{}

	return nil
}

// destroySubtree visits every inner block of a subtree. It clears no child
// slot itself; the storage becomes collectable once DestroyParallel resets
// m.root.
func destroySubtree[T any](n qtree.Node[T]) {
	in, ok := n.AsInner()
	if !ok {
		return
	}
	for _, pos := range qtree.Positions {
		child, _ := in.Child(pos)
		destroySubtree(child)
	}
}
