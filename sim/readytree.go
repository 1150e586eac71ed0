// Ordered ready set shared by the SJF, SRTF and priority schedulers.
// A red-black tree keyed by (sort key, arrival time, process id) keeps
// selection O(log n) with the documented deterministic tie-break: earlier
// arrival first, then lower process id.

package sim

import "github.com/emirpasic/gods/trees/redblacktree"

// treeKey orders the ready tree. key is the variant's primary sort value
// (remaining burst, effective priority); lower sorts first.
type treeKey struct {
	key     float64
	arrival int64
	id      int
}

func treeCmp(a, b any) int {
	ka, kb := a.(treeKey), b.(treeKey)
	switch {
	case ka.key < kb.key:
		return -1
	case ka.key > kb.key:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// readyTree wraps the red-black tree with the small surface the schedulers
// need. Keys are fixed at insertion; a process's key never changes while it
// waits (see the aging key derivation in priosched.go).
type readyTree struct {
	rbt *redblacktree.Tree
}

func newReadyTree() *readyTree {
	return &readyTree{rbt: redblacktree.NewWith(treeCmp)}
}

func (t *readyTree) Put(p *Process, key float64) {
	t.rbt.Put(treeKey{key: key, arrival: p.ArrivalTime, id: p.ID}, p)
}

// PeekMin returns the best process and its key without removing it.
// Returns nil when the tree is empty.
func (t *readyTree) PeekMin() (*Process, float64) {
	node := t.rbt.Left()
	if node == nil {
		return nil, 0
	}
	return node.Value.(*Process), node.Key.(treeKey).key
}

// PopMin removes and returns the best process, or nil when empty.
func (t *readyTree) PopMin() *Process {
	node := t.rbt.Left()
	if node == nil {
		return nil
	}
	t.rbt.Remove(node.Key)
	return node.Value.(*Process)
}

func (t *readyTree) Len() int { return t.rbt.Size() }
