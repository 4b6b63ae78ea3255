package deque

import (
	"errors"

	"github.com/xmas7/too-many-lists/result"
)

// ErrEmpty is returned (wrapped in a Result) when a borrow guard is
// requested on an end of an empty deque.
var ErrEmpty = errors.New("deque is empty")

// ErrBorrowConflict is returned (wrapped in a Result) when a borrow
// acquisition would overlap with a live borrow on the same node: an
// exclusive borrow excludes every other borrow, a shared borrow excludes
// exclusive ones. The conflict surfaces at the acquisition site and is
// never retried automatically.
var ErrBorrowConflict = errors.New("borrow conflict: node already borrowed")

// --- Weak back-references --------------------------------------------------

// weakRef is a non-owning link to a node. It never contributes to the
// target's refcount and must tolerate the target having been released.
type weakRef[T any] struct {
	target *node[T]
}

// upgrade yields the target node while it is still strongly referenced,
// or reports that it is gone.
func (w weakRef[T]) upgrade() (*node[T], bool) {
	if w.target == nil || w.target.refs == 0 {
		return nil, false
	}
	return w.target, true
}

// --- Per-node borrow tracking ------------------------------------------

func (n *node[T]) borrowShared() error {
	if n.borrow < 0 {
		return ErrBorrowConflict
	}
	n.borrow++
	return nil
}

func (n *node[T]) borrowExclusive() error {
	if n.borrow != 0 {
		return ErrBorrowConflict
	}
	n.borrow = -1
	return nil
}

func (n *node[T]) unborrowShared() {
	assertThat(n.borrow > 0, "release of a shared borrow that is not held")
	n.borrow--
}

func (n *node[T]) unborrowExclusive() {
	assertThat(n.borrow == -1, "release of an exclusive borrow that is not held")
	n.borrow = 0
}

// --- Guards ----------------------------------------------------------------

// Ref is a shared borrow guard on one node. While any Ref on a node is
// live, the node's value may be read but no exclusive borrow can be
// acquired. Release the guard before the next structural operation on the
// node.
type Ref[T any] struct {
	n *node[T]
}

// Value reads the borrowed value.
func (r Ref[T]) Value() T {
	assertThat(r.n != nil && r.n.borrow > 0, "read through a released borrow guard")
	return r.n.value
}

// Release gives the borrow back. Releasing a guard twice panics.
func (r Ref[T]) Release() {
	assertThat(r.n != nil, "release of a zero borrow guard")
	r.n.unborrowShared()
}

// RefMut is an exclusive borrow guard on one node. While it is live, no
// other borrow, shared or exclusive, can be acquired on the node.
// Release the guard before the next structural operation on the node.
type RefMut[T any] struct {
	n *node[T]
}

// Value reads the borrowed value.
func (r RefMut[T]) Value() T {
	assertThat(r.n != nil && r.n.borrow == -1, "read through a released borrow guard")
	return r.n.value
}

// Set replaces the borrowed value.
func (r RefMut[T]) Set(v T) {
	assertThat(r.n != nil && r.n.borrow == -1, "write through a released borrow guard")
	r.n.value = v
}

// Ptr exposes the borrowed value for in-place mutation. The pointer must
// not outlive the guard.
func (r RefMut[T]) Ptr() *T {
	assertThat(r.n != nil && r.n.borrow == -1, "access through a released borrow guard")
	return &r.n.value
}

// Release gives the borrow back. Releasing a guard twice panics.
func (r RefMut[T]) Release() {
	assertThat(r.n != nil, "release of a zero borrow guard")
	r.n.unborrowExclusive()
}

// --- Guarded peeks -----------------------------------------------------

// PeekFront acquires a shared borrow on the front node. The result is
// Err(ErrEmpty) on an empty deque and Err(ErrBorrowConflict) while an
// exclusive borrow on the front node is live.
func (d *Deque[T]) PeekFront() result.Result[Ref[T]] {
	return peek(d.front)
}

// PeekBack acquires a shared borrow on the back node; failure modes as
// with PeekFront.
func (d *Deque[T]) PeekBack() result.Result[Ref[T]] {
	return peek(d.back)
}

// PeekFrontMut acquires an exclusive borrow on the front node. The result
// is Err(ErrEmpty) on an empty deque and Err(ErrBorrowConflict) while any
// borrow on the front node is live.
func (d *Deque[T]) PeekFrontMut() result.Result[RefMut[T]] {
	return peekMut(d.front)
}

// PeekBackMut acquires an exclusive borrow on the back node; failure modes
// as with PeekFrontMut.
func (d *Deque[T]) PeekBackMut() result.Result[RefMut[T]] {
	return peekMut(d.back)
}

func peek[T any](n *node[T]) result.Result[Ref[T]] {
	if n == nil {
		return result.Err[Ref[T]](ErrEmpty)
	}
	if err := n.borrowShared(); err != nil {
		return result.Err[Ref[T]](err)
	}
	return result.Ok(Ref[T]{n: n})
}

func peekMut[T any](n *node[T]) result.Result[RefMut[T]] {
	if n == nil {
		return result.Err[RefMut[T]](ErrEmpty)
	}
	if err := n.borrowExclusive(); err != nil {
		return result.Err[RefMut[T]](err)
	}
	return result.Ok(RefMut[T]{n: n})
}
