package orderedlist

import (
	"errors"
	"fmt"

	"gopkg.in/karlseguin/intset.v1"
)

var (
	ErrCycle      = errors.New("orderedlist: cycle in chain")
	ErrBrokenLink = errors.New("orderedlist: broken link")
	ErrUnsorted   = errors.New("orderedlist: out of order")
	ErrCount      = errors.New("orderedlist: count mismatch")
	ErrTail       = errors.New("orderedlist: tail mismatch")
)

// Walks the chain and checks that it is linked both ways without cycles,
// that head, tail and Len agree with it and that it is sorted.
func (l *List[V, R]) Verify() error {
	defer l.RUnlock()
	l.RLock()

	if l.head == none {
		if l.tail != none {
			return fmt.Errorf("%w: tail %d on empty chain", ErrTail, l.tail)
		}
		if l.count != 0 {
			return fmt.Errorf("%w: %d on empty chain", ErrCount, l.count)
		}
		return nil
	}

	// indexes are stored +1, the set doesn't need to hold 0
	visited := intset.NewSized32(uint32(len(l.nodes)))
	reached, last := 0, none
	for at := l.head; at != none; at = l.nodes[at].next {
		if at < 0 || at >= len(l.nodes) {
			return fmt.Errorf("%w: %d links to %d outside the chain", ErrBrokenLink, last, at)
		}
		if visited.Exists(uint32(at+1)) {
			return fmt.Errorf("%w: %d reached twice", ErrCycle, at)
		}
		visited.Set(uint32(at + 1))

		n := &l.nodes[at]
		if n.prev != last {
			return fmt.Errorf("%w: %d points back to %d, not %d", ErrBrokenLink, at, n.prev, last)
		}
		if last != none && l.compare(n.data, l.nodes[last].data) {
			return fmt.Errorf("%w: %d precedes %d", ErrUnsorted, at, last)
		}
		last = at
		reached++
	}

	if last != l.tail {
		return fmt.Errorf("%w: chain ends at %d, tail is %d", ErrTail, last, l.tail)
	}
	if reached != l.count {
		return fmt.Errorf("%w: %d reachable, count is %d", ErrCount, reached, l.count)
	}
	return nil
}
