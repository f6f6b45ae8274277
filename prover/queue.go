package prover

// A binary min-heap over passive clauses, ordered by heuristic priority
// with FIFO tie-breaking on clause identifiers. This is strongly inspired
// from Minisat's mtl/Heap.h, by way of the activity queue used in CDCL
// solvers.

type queue struct {
	content []*Clause
}

// lt orders by priority, then by identifier, so runs are reproducible.
func (q *queue) lt(a, b *Clause) bool {
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.ID < b.ID
}

// Traversal functions.
func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (q *queue) percolateUp(i int) {
	x := q.content[i]
	p := parent(i)
	for i != 0 && q.lt(x, q.content[p]) {
		q.content[i] = q.content[p]
		i = p
		p = parent(p)
	}
	q.content[i] = x
}

func (q *queue) percolateDown(i int) {
	x := q.content[i]
	for left(i) < len(q.content) {
		child := left(i)
		if right(i) < len(q.content) && q.lt(q.content[right(i)], q.content[child]) {
			child = right(i)
		}
		if !q.lt(q.content[child], x) {
			break
		}
		q.content[i] = q.content[child]
		i = child
	}
	q.content[i] = x
}

func (q *queue) len() int    { return len(q.content) }
func (q *queue) empty() bool { return len(q.content) == 0 }

func (q *queue) insert(c *Clause) {
	q.content = append(q.content, c)
	q.percolateUp(len(q.content) - 1)
}

func (q *queue) removeMin() *Clause {
	x := q.content[0]
	last := len(q.content) - 1
	q.content[0] = q.content[last]
	q.content = q.content[:last]
	if len(q.content) > 1 {
		q.percolateDown(0)
	}
	return x
}
