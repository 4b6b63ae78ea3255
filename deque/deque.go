package deque

import (
	"errors"
	"fmt"

	"github.com/xmas7/too-many-lists/maybe"
)

// Deque is a doubly-linked double-ended queue of values of type T. The
// zero value is an empty deque, ready to use.
//
// The deque holds two strong entry points, one onto the front node and one
// onto the back node. Every node in between is kept alive by its
// predecessor's next link; prev links carry no ownership.
type Deque[T any] struct {
	front  *node[T]
	back   *node[T]
	length int
}

// node is one element of the chain. refs counts the strong links pointing
// at the node (the deque's end handles plus the predecessor's next link);
// a node is dead once refs reaches zero. borrow is the runtime borrow
// flag: 0 is free, n>0 means n shared borrows, -1 means one exclusive
// borrow.
type node[T any] struct {
	value  T
	next   *node[T]
	prev   weakRef[T]
	refs   int
	borrow int
}

// New creates an empty deque. Equivalent to declaring a zero-value Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of values in the deque.
func (d *Deque[T]) Len() int {
	return d.length
}

// IsEmpty tells whether the deque holds no values.
func (d *Deque[T]) IsEmpty() bool {
	return d.front == nil
}

// PushFront links a new node in as the front of the deque. O(1).
func (d *Deque[T]) PushFront(v T) {
	n := &node[T]{value: v}
	if d.front == nil {
		n.refs = 2 // both end handles hold the only node
		d.front, d.back = n, n
	} else {
		// the old front keeps one strong link: it loses the front handle
		// but gains the new node's next link
		n.next = d.front
		d.front.prev = weakRef[T]{target: n}
		n.refs = 1 // front handle
		d.front = n
	}
	d.length++
	tracer().Debugf("deque: pushed %v at front, length now %d", v, d.length)
}

// PushBack links a new node in as the back of the deque. O(1).
func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if d.back == nil {
		n.refs = 2
		d.front, d.back = n, n
	} else {
		d.back.next = n
		n.prev = weakRef[T]{target: d.back}
		d.back.refs-- // the old back loses the back handle; its next link counts on n
		n.refs = 2    // back handle + predecessor's next link
		d.back = n
	}
	d.length++
	tracer().Debugf("deque: pushed %v at back, length now %d", v, d.length)
}

// PopFront detaches the front node and returns its value, or Nothing if
// the deque is empty. Popping a node with a live borrow guard is a
// contract violation and panics. O(1).
func (d *Deque[T]) PopFront() maybe.Maybe[T] {
	if d.front == nil {
		return maybe.Nothing[T]()
	}
	n := d.front
	assertThat(n.borrow == 0, "PopFront while a borrow guard on the front node is live")
	n.refs-- // front handle goes away
	if n.next != nil {
		// the successor's strong link moves from n.next to the front handle
		d.front = n.next
		n.next = nil
		d.front.prev = weakRef[T]{}
	} else {
		// single node: both end handles are cleared together
		n.refs-- // back handle
		d.front, d.back = nil, nil
	}
	assertThat(n.refs == 0, "front node still strongly referenced after detaching, refs=%d", n.refs)
	n.prev = weakRef[T]{}
	d.length--
	return maybe.Just(n.value)
}

// PopBack detaches the back node and returns its value, or Nothing if the
// deque is empty. Popping a node with a live borrow guard is a contract
// violation and panics. O(1).
func (d *Deque[T]) PopBack() maybe.Maybe[T] {
	if d.back == nil {
		return maybe.Nothing[T]()
	}
	n := d.back
	assertThat(n.borrow == 0, "PopBack while a borrow guard on the back node is live")
	n.refs-- // back handle goes away
	if prev, ok := n.prev.upgrade(); ok {
		prev.next = nil // the predecessor's strong link onto n goes away
		n.refs--
		prev.refs++ // the back handle now holds the predecessor
		d.back = prev
	} else {
		// single node: both end handles are cleared together
		n.refs-- // front handle
		d.front, d.back = nil, nil
	}
	assertThat(n.refs == 0, "back node still strongly referenced after detaching, refs=%d", n.refs)
	n.prev = weakRef[T]{}
	d.length--
	return maybe.Just(n.value)
}

// Front returns a copy of the front value, or Nothing if the deque is
// empty. The shared borrow is scoped inside the call; an outstanding
// exclusive borrow on the front node is a contract violation and panics
// with an error wrapping ErrBorrowConflict (use PeekFront when the
// conflict must be handled as a value).
func (d *Deque[T]) Front() maybe.Maybe[T] {
	return d.snapshot(d.front)
}

// Back returns a copy of the back value, or Nothing if the deque is empty.
// Borrow scoping as with Front.
func (d *Deque[T]) Back() maybe.Maybe[T] {
	return d.snapshot(d.back)
}

// snapshot scopes a shared borrow around a single read, going through the
// same acquisition path as the guarded peeks.
func (d *Deque[T]) snapshot(n *node[T]) maybe.Maybe[T] {
	r, err := peek(n).Value()
	if errors.Is(err, ErrEmpty) {
		return maybe.Nothing[T]()
	}
	if err != nil {
		panic(fmt.Errorf("deque: copy-out peek: %w", err))
	}
	v := r.Value()
	r.Release()
	return maybe.Just(v)
}

// Clear discards all values by dropping the two end handles and unwinding
// the strong next-chain iteratively, front to back. prev links hold no
// ownership, so no cycle-breaking is needed; refcounts deterministically
// reach zero on the way. Nodes with live borrow guards cannot be cleared.
func (d *Deque[T]) Clear() {
	n := d.front
	if n != nil {
		n.refs--
	}
	if d.back != nil {
		d.back.refs--
	}
	d.front, d.back = nil, nil
	d.length = 0
	count := 0
	for n != nil {
		assertThat(n.borrow == 0, "Clear while a borrow guard is live")
		next := n.next
		n.next = nil
		n.prev = weakRef[T]{}
		assertThat(n.refs == 0, "node still strongly referenced during Clear, refs=%d", n.refs)
		if next != nil {
			next.refs-- // predecessor's next link goes away
		}
		n = next
		count++
	}
	tracer().Debugf("deque: cleared %d nodes", count)
}
