package orderedlist

// arena index standing in for a nil link
const none = -1

// A node is addressed by its index in the owning list's arena. Only the list
// rewires next/prev.
type node[V any, R any] struct {
	data V
	ref  R
	next int
	prev int
}

func newNode[V any, R any](data V, ref R, prev, next int) node[V, R] {
	return node[V, R]{
		data: data,
		ref:  ref,
		prev: prev,
		next: next,
	}
}
