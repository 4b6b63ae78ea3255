package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xmas7/too-many-lists/maybe"
)

// List is a handle on an immutable persistent list of values of type T.
// The zero value is the empty list. Handles are values and cheap to pass
// around; the cells they point at are shared and never mutated.
//
// A handle owns one strong link to its head cell. Handles obtained from
// Push, Tail, Pop or Clone must each be given to Release exactly once when
// no longer needed, or the cell bookkeeping goes stale (the memory itself
// is reclaimed by the runtime either way).
type List[T any] struct {
	head   *cell[T]
	length int
}

// cell is one element of the shared chain. value and next are set at
// construction time and never change; refs is the only mutable field and
// counts the strong links (handles plus predecessor cells) pointing here.
type cell[T any] struct {
	value T
	next  *cell[T]
	refs  int
}

// Immutable creates an empty list. Equivalent to declaring a zero-value
// List.
func Immutable[T any]() List[T] {
	return List[T]{}
}

// Of builds a list containing the given values in order, i.e.
// Of(1, 2, 3).All() yields 1, 2, 3.
func Of[T any](values ...T) List[T] {
	l := List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		rest := l
		l = l.Push(values[i])
		rest.Release() // the new cell now carries the link the intermediate handle held
	}
	return l
}

// Len returns the number of values reachable from this handle. O(1).
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty tells whether the handle refers to the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Push conses a value onto the front and returns a new handle. The
// receiver is left untouched and remains fully usable; the new list shares
// the receiver's entire chain as its tail. O(1), allocates one cell.
func (l List[T]) Push(v T) List[T] {
	c := &cell[T]{value: v, next: l.head, refs: 1}
	if l.head != nil {
		l.head.refs++ // the new cell's next link is an additional strong link
	}
	tracer().Debugf("list: consed %v onto chain of length %d", v, l.length)
	return List[T]{head: c, length: l.length + 1}
}

// Head returns a copy of the first value, or Nothing for the empty list.
// Values are only ever borrowed by copy: the cell may be shared with other
// handles and must not be moved out of.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Tail returns a new handle on the list without its first value, or the
// empty list. O(1), bumps the refcount of the second cell; the receiver is
// unaffected.
func (l List[T]) Tail() List[T] {
	if l.head == nil || l.head.next == nil {
		return List[T]{}
	}
	t := l.head.next
	t.refs++
	return List[T]{head: t, length: l.length - 1}
}

// Pop combines Head and Tail: it returns a copy of the first value (or
// Nothing) together with a handle on the rest. The receiver is not
// mutated; "popping" a persistent list means moving on to a new handle.
func (l List[T]) Pop() (maybe.Maybe[T], List[T]) {
	return l.Head(), l.Tail()
}

// Clone returns an additional handle on the same list. O(1); no cells are
// copied, the head refcount is bumped.
func (l List[T]) Clone() List[T] {
	if l.head != nil {
		l.head.refs++
	}
	return l
}

// Release drops this handle's strong link. Refcounts are decremented along
// the chain and cells that reach zero are unlinked; the walk stops at the
// first cell still referenced elsewhere, leaving the shared suffix intact.
// The unwind is iterative, so releasing is safe for chains of any length.
// Releasing an empty handle is a no-op; the handle is empty afterwards.
func (l *List[T]) Release() {
	c := l.head
	l.head = nil
	l.length = 0
	freed := 0
	for c != nil {
		c.refs--
		if c.refs > 0 {
			break // still shared by another handle or cell
		}
		next := c.next
		c.next = nil
		c = next
		freed++
	}
	tracer().Debugf("list: release freed %d cells", freed)
}

// All returns an iterator over copies of the values, head to tail. The
// sequence is lazy, finite and restartable; iteration never affects the
// handle.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.head; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}

// String renders the list head-to-tail, e.g. "(3 2 1)".
func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	first := true
	for c := l.head; c != nil; c = c.next {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", c.value))
	}
	b.WriteByte(')')
	return b.String()
}

// Equal compares two lists element-wise. Shared suffixes are recognized by
// cell identity, so comparing a list to its own clone is O(1).
func Equal[T comparable](a, b List[T]) bool {
	if a.length != b.length {
		return false
	}
	x, y := a.head, b.head
	for x != nil && y != nil {
		if x == y { // same shared cell, suffixes are identical
			return true
		}
		if x.value != y.value {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}
