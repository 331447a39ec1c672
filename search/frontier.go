package search

import (
	"container/heap"
	"fmt"
	"sort"
)

// Frontier is the set of discovered but not yet expanded nodes, ordered by
// one discipline. Implementations are not safe for concurrent use; each
// Search owns its own.
type Frontier[S comparable] interface {
	// Push adds n. Duplicated states are allowed; the driver resolves them.
	Push(n *Node[S])
	// Pop removes and returns the next node, or nil when empty.
	Pop() *Node[S]
	// Len returns the number of stored entries, stale ones included.
	Len() int
	// States returns the distinct stored states in the order they would be
	// popped, each state listed once at its earliest position.
	States() []S
}

// NewFrontier returns the frontier used by alg:
//
//	BFS    → FIFO by insertion
//	DFS    → LIFO (most recent first)
//	UCS    → min g
//	AStar  → min g + h
//	Greedy → min h
//
// Priority ties always break by earliest insertion.
func NewFrontier[S comparable](alg Algorithm) (Frontier[S], error) {
	switch alg {
	case BFS:
		return &fifoFrontier[S]{}, nil
	case DFS:
		return &lifoFrontier[S]{}, nil
	case UCS:
		return newPriorityFrontier[S](func(n *Node[S]) float64 { return n.G }), nil
	case AStar:
		return newPriorityFrontier[S](func(n *Node[S]) float64 { return n.F() }), nil
	case Greedy:
		return newPriorityFrontier[S](func(n *Node[S]) float64 { return n.H }), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// fifoFrontier is a slice-backed queue. head advances on Pop; the backing
// array is compacted once more than half of it is consumed.
type fifoFrontier[S comparable] struct {
	items []*Node[S]
	head  int
}

func (f *fifoFrontier[S]) Push(n *Node[S]) { f.items = append(f.items, n) }

func (f *fifoFrontier[S]) Pop() *Node[S] {
	if f.head >= len(f.items) {
		return nil
	}
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	if f.head > len(f.items)/2 {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return n
}

func (f *fifoFrontier[S]) Len() int { return len(f.items) - f.head }

func (f *fifoFrontier[S]) States() []S {
	return distinct(f.items[f.head:], false)
}

// lifoFrontier is a slice-backed stack.
type lifoFrontier[S comparable] struct {
	items []*Node[S]
}

func (f *lifoFrontier[S]) Push(n *Node[S]) { f.items = append(f.items, n) }

func (f *lifoFrontier[S]) Pop() *Node[S] {
	last := len(f.items) - 1
	if last < 0 {
		return nil
	}
	n := f.items[last]
	f.items[last] = nil
	f.items = f.items[:last]

	return n
}

func (f *lifoFrontier[S]) Len() int { return len(f.items) }

func (f *lifoFrontier[S]) States() []S {
	return distinct(f.items, true)
}

// priorityFrontier is a binary min-heap keyed by a node priority, with the
// insertion sequence as secondary key. There is no decrease-key: improved
// costs are pushed as new entries and stale ones are discarded when popped.
type priorityFrontier[S comparable] struct {
	pq nodePQ[S]
}

func newPriorityFrontier[S comparable](key func(*Node[S]) float64) *priorityFrontier[S] {
	return &priorityFrontier[S]{pq: nodePQ[S]{key: key}}
}

func (f *priorityFrontier[S]) Push(n *Node[S]) {
	heap.Push(&f.pq, pqItem[S]{node: n, priority: f.pq.key(n)})
}

func (f *priorityFrontier[S]) Pop() *Node[S] {
	if f.pq.Len() == 0 {
		return nil
	}

	return heap.Pop(&f.pq).(pqItem[S]).node
}

func (f *priorityFrontier[S]) Len() int { return f.pq.Len() }

func (f *priorityFrontier[S]) States() []S {
	ordered := make([]pqItem[S], len(f.pq.items))
	copy(ordered, f.pq.items)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].before(ordered[j]) })
	nodes := make([]*Node[S], len(ordered))
	for i := range ordered {
		nodes[i] = ordered[i].node
	}

	return distinct(nodes, false)
}

// pqItem snapshots the priority at push time so the heap order never
// depends on later mutation.
type pqItem[S comparable] struct {
	node     *Node[S]
	priority float64
}

// before orders by priority, then by earliest insertion.
func (a pqItem[S]) before(b pqItem[S]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.node.seq < b.node.seq
}

// nodePQ implements heap.Interface over pqItem.
type nodePQ[S comparable] struct {
	items []pqItem[S]
	key   func(*Node[S]) float64
}

func (pq nodePQ[S]) Len() int           { return len(pq.items) }
func (pq nodePQ[S]) Less(i, j int) bool { return pq.items[i].before(pq.items[j]) }
func (pq nodePQ[S]) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *nodePQ[S]) Push(x any) { pq.items = append(pq.items, x.(pqItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = pqItem[S]{}
	pq.items = old[:n-1]

	return item
}

// distinct lists node states once each, scanning forward or from the end.
func distinct[S comparable](nodes []*Node[S], reverse bool) []S {
	seen := make(map[S]struct{}, len(nodes))
	out := make([]S, 0, len(nodes))
	add := func(n *Node[S]) {
		if _, ok := seen[n.State]; ok {
			return
		}
		seen[n.State] = struct{}{}
		out = append(out, n.State)
	}
	if reverse {
		for i := len(nodes) - 1; i >= 0; i-- {
			add(nodes[i])
		}
	} else {
		for _, n := range nodes {
			add(n)
		}
	}

	return out
}
