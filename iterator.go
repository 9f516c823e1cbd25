package orderedlist

// Iterators take no lock. Advancing or dereferencing one while the list is
// being mutated is a data race; hold RLock on the list if that can happen.

// Walks a list from head to tail.
type Forward[V any, R any] struct {
	list *List[V, R]
	at   int
}

// Walks a list from tail to head.
type Backward[V any, R any] struct {
	list *List[V, R]
	at   int
}

func (l *List[V, R]) Begin() Forward[V, R] {
	return Forward[V, R]{l, l.head}
}

func (l *List[V, R]) End() Forward[V, R] {
	return Forward[V, R]{l, none}
}

func (l *List[V, R]) RBegin() Backward[V, R] {
	return Backward[V, R]{l, l.tail}
}

func (l *List[V, R]) REnd() Backward[V, R] {
	return Backward[V, R]{l, none}
}

// Equal iterators point at the same node of the same list.
func (i Forward[V, R]) Equal(other Forward[V, R]) bool {
	return i.list == other.list && i.at == other.at
}

func (i Forward[V, R]) Valid() bool {
	return i.at != none
}

// Does nothing once past the tail.
func (i *Forward[V, R]) Next() {
	if i.at != none {
		i.at = i.list.nodes[i.at].next
	}
}

// The current value, writable in place. Must not be called on End().
func (i Forward[V, R]) Value() *V {
	return &i.list.nodes[i.at].data
}

// Must not be called on End().
func (i Forward[V, R]) Ref() R {
	return i.list.nodes[i.at].ref
}

func (i Backward[V, R]) Equal(other Backward[V, R]) bool {
	return i.list == other.list && i.at == other.at
}

func (i Backward[V, R]) Valid() bool {
	return i.at != none
}

// Does nothing once past the head.
func (i *Backward[V, R]) Next() {
	if i.at != none {
		i.at = i.list.nodes[i.at].prev
	}
}

// Must not be called on REnd().
func (i Backward[V, R]) Value() *V {
	return &i.list.nodes[i.at].data
}

// Must not be called on REnd().
func (i Backward[V, R]) Ref() R {
	return i.list.nodes[i.at].ref
}

// Calls fn for each value until it returns false. Like the iterators, Each
// is unlocked.
func (l *List[V, R]) Each(desc bool, fn func(value V, ref R) bool) {
	if desc {
		for it := l.RBegin(); it.Valid(); it.Next() {
			if fn(*it.Value(), it.Ref()) == false {
				return
			}
		}
	} else {
		for it := l.Begin(); it.Valid(); it.Next() {
			if fn(*it.Value(), it.Ref()) == false {
				return
			}
		}
	}
}
