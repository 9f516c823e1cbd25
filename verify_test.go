package orderedlist

import (
	"errors"
	"testing"

	. "github.com/karlseguin/expect"
)

type VerifyTests struct{}

func Test_Verify(t *testing.T) {
	Expectify(new(VerifyTests), t)
}

func (_ VerifyTests) AcceptsAValidChain() {
	l := testList(9, 1, 5, 1, 7)
	Expect(l.Verify() == nil).To.Equal(true)
}

func (_ VerifyTests) DetectsACycle() {
	l := testList(1, 2, 3)
	l.nodes[l.tail].next = l.head
	Expect(errors.Is(l.Verify(), ErrCycle)).To.Equal(true)
}

func (_ VerifyTests) DetectsAnAsymmetricLink() {
	l := testList(1, 2, 3)
	l.nodes[l.tail].prev = l.head
	Expect(errors.Is(l.Verify(), ErrBrokenLink)).To.Equal(true)
}

func (_ VerifyTests) DetectsALinkOutsideTheArena() {
	l := testList(1, 2)
	l.nodes[l.head].next = 40
	Expect(errors.Is(l.Verify(), ErrBrokenLink)).To.Equal(true)
}

func (_ VerifyTests) DetectsAnUnsortedChain() {
	l := testList(1, 2, 3)
	l.nodes[l.head].data = 10
	Expect(errors.Is(l.Verify(), ErrUnsorted)).To.Equal(true)
}

func (_ VerifyTests) DetectsAWrongCount() {
	l := testList(1, 2, 3)
	l.count = 4
	Expect(errors.Is(l.Verify(), ErrCount)).To.Equal(true)
}

func (_ VerifyTests) DetectsAWrongTail() {
	l := testList(1, 2, 3)
	l.tail = l.head
	Expect(errors.Is(l.Verify(), ErrTail)).To.Equal(true)
}

func (_ VerifyTests) DetectsAnEmptyChainWithATail() {
	l := New[int, string](ascending, nil)
	l.tail = 0
	Expect(errors.Is(l.Verify(), ErrTail)).To.Equal(true)
}
