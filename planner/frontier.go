package planner

import "container/heap"

// pathNode is one action in a plan prefix. Entries that share a prefix
// share its nodes, so pushing a successor costs O(1) regardless of depth.
type pathNode struct {
	action Action
	parent *pathNode
	depth  int
}

// extend returns the path n followed by a.
func (n *pathNode) extend(a Action) *pathNode {
	d := 1
	if n != nil {
		d = n.depth + 1
	}

	return &pathNode{action: a, parent: n, depth: d}
}

// actions materialises the path in start-to-end order. A nil path is empty.
func (n *pathNode) actions() []Action {
	if n == nil {
		return []Action{}
	}
	out := make([]Action, n.depth)
	for at := n; at != nil; at = at.parent {
		out[at.depth-1] = at.action
	}

	return out
}

// entry is one frontier element.
type entry struct {
	cost  int       // accumulated step cost; unused by depth-first
	seq   uint64    // push order, the tie-break among equal costs
	state State     // search state
	path  *pathNode // actions leading to state
}

// frontier is the discipline-specific container of discovered states.
type frontier interface {
	push(e entry)
	pop() entry
	Len() int
}

// newFrontier returns the container matching s.
func newFrontier(s Strategy) frontier {
	if s == DepthFirst {
		return &stackFrontier{}
	}
	pq := &priorityFrontier{}
	heap.Init(pq)

	return pq
}

// priorityFrontier is a min-heap ordered by (cost, seq). The sequence number
// makes equal-cost entries pop in insertion order.
type priorityFrontier []entry

// Len returns the number of items in the heap.
func (pq priorityFrontier) Len() int { return len(pq) }

// Less orders by cost, then by push order.
func (pq priorityFrontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq priorityFrontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *priorityFrontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *priorityFrontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*pq = old[:n-1]

	return item
}

func (pq *priorityFrontier) push(e entry) { heap.Push(pq, e) }
func (pq *priorityFrontier) pop() entry  { return heap.Pop(pq).(entry) }

// stackFrontier is a LIFO stack.
type stackFrontier []entry

func (st stackFrontier) Len() int { return len(st) }

func (st *stackFrontier) push(e entry) { *st = append(*st, e) }

func (st *stackFrontier) pop() entry {
	old := *st
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*st = old[:n-1]

	return item
}
