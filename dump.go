package orderedlist

import (
	"fmt"
	"io"

	"gopkg.in/karlseguin/bytepool.v3"
)

var (
	bp = bytepool.New(4096, 64)
)

// Writes each value followed by its tag in parentheses, head to tail, as in
// "3(b) 3(d) 5(a) 8(c) ". The output can't be read back.
func (l *List[V, R]) WriteTo(w io.Writer) (int64, error) {
	buffer := l.render()
	defer buffer.Release()
	n, err := w.Write(buffer.Bytes())
	return int64(n), err
}

func (l *List[V, R]) String() string {
	buffer := l.render()
	defer buffer.Release()
	return buffer.String()
}

func (l *List[V, R]) render() *bytepool.Bytes {
	buffer := l.pool.Checkout()
	defer l.RUnlock()
	l.RLock()
	for at := l.head; at != none; at = l.nodes[at].next {
		n := &l.nodes[at]
		fmt.Fprintf(buffer, "%v(%v) ", n.data, n.ref)
	}
	return buffer
}
