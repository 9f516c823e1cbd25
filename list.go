package orderedlist

import (
	"sync"

	"gopkg.in/karlseguin/bytepool.v3"
)

// Compare reports whether a should be placed before b.
type Compare[V any] func(a, b V) bool

// A doubly linked list kept sorted by its Compare. Every value carries an
// opaque reference tag which the list never looks at.
//
// Insert, Copy, Move and Clear are safe to call concurrently. Iteration is
// not: the list is unlocked while iterating; consumers are responsible for
// holding RLock/RUnlock around an iteration that may race with an Insert.
type List[V any, R any] struct {
	sync.RWMutex
	head     int
	tail     int
	count    int
	capacity int
	nodes    []node[V, R]
	compare  Compare[V]
	pool     *bytepool.Pool
}

// Creates an empty list ordered by compare. A nil config uses the defaults
// of Configure().
func New[V any, R any](compare Compare[V], config *Configuration) *List[V, R] {
	if compare == nil {
		panic("orderedlist: nil compare")
	}
	if config == nil {
		config = Configure()
	}
	pool := bp
	if config.dumpCount > 0 {
		pool = bytepool.New(config.dumpSize, config.dumpCount)
	}
	return &List[V, R]{
		head:     none,
		tail:     none,
		compare:  compare,
		capacity: config.capacity,
		pool:     pool,
	}
}

// Inserts elem before the first value it precedes, or at the end. Equal
// values keep their insertion order.
func (l *List[V, R]) Insert(elem V, ref R) {
	defer l.Unlock()
	l.Lock()
	if l.nodes == nil && l.capacity > 0 {
		l.nodes = make([]node[V, R], 0, l.capacity)
	}

	prev, next := none, l.head
	for next != none && l.compare(elem, l.nodes[next].data) == false {
		prev, next = next, l.nodes[next].next
	}

	index := len(l.nodes)
	l.nodes = append(l.nodes, newNode(elem, ref, prev, next))
	if prev == none {
		l.head = index
	} else {
		l.nodes[prev].next = index
	}
	if next == none {
		l.tail = index
	} else {
		l.nodes[next].prev = index
	}
	l.count++
}

func (l *List[V, R]) Len() int {
	defer l.RUnlock()
	l.RLock()
	return l.count
}

// Returns an independent copy. Values and tags are copied by assignment, so
// a value which is itself a pointer, slice or map still shares what it
// points to.
func (l *List[V, R]) Copy() *List[V, R] {
	defer l.RUnlock()
	l.RLock()
	c := l.empty()
	if l.count == 0 {
		return c
	}

	c.nodes = make([]node[V, R], 0, l.count)
	prev := none
	for at := l.head; at != none; at = l.nodes[at].next {
		n := &l.nodes[at]
		index := len(c.nodes)
		c.nodes = append(c.nodes, newNode(n.data, n.ref, prev, none))
		if prev == none {
			c.head = index
		} else {
			c.nodes[prev].next = index
		}
		prev = index
	}
	c.tail = prev
	c.count = l.count
	return c
}

// Hands the whole chain to a new list and leaves l empty. l keeps its
// compare and can be inserted into again.
func (l *List[V, R]) Move() *List[V, R] {
	defer l.Unlock()
	l.Lock()
	m := l.empty()
	m.head, m.tail, m.count, m.nodes = l.head, l.tail, l.count, l.nodes
	l.head, l.tail, l.count, l.nodes = none, none, 0, nil
	return m
}

// Releases every node, head to tail, and returns how many were released.
func (l *List[V, R]) Clear() int {
	defer l.Unlock()
	l.Lock()
	var zero node[V, R]
	released := 0
	for at := l.head; at != none; released++ {
		next := l.nodes[at].next
		l.nodes[at] = zero
		at = next
	}
	l.head, l.tail, l.count, l.nodes = none, none, 0, nil
	return released
}

// an empty list sharing l's policy
func (l *List[V, R]) empty() *List[V, R] {
	return &List[V, R]{
		head:     none,
		tail:     none,
		compare:  l.compare,
		capacity: l.capacity,
		pool:     l.pool,
	}
}
