package deque

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xmas7/too-many-lists/maybe"
)

// All returns an iterator over copies of the values, front to back. Each
// step reads its node under a transient shared borrow, released before the
// value is yielded. The sequence is lazy, finite and restartable; the
// deque's structure must not be mutated while a walk is live.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.front; n != nil; n = n.next {
			err := n.borrowShared()
			assertThat(err == nil, "iteration over a node with an exclusive borrow outstanding")
			v := n.value
			n.unborrowShared()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over copies of the values, back to front.
// The walk follows the weak prev links and stops as soon as an upgrade
// fails; borrow scoping as with All.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := d.back
		for n != nil {
			err := n.borrowShared()
			assertThat(err == nil, "iteration over a node with an exclusive borrow outstanding")
			v := n.value
			n.unborrowShared()
			if !yield(v) {
				return
			}
			prev, ok := n.prev.upgrade()
			if !ok {
				return // reached the front, or the target is gone
			}
			n = prev
		}
	}
}

// Drain returns a consuming iterator: each step pops the front value. The
// sequence ends when the deque is empty and is not restartable, since it
// consumes the deque.
func (d *Deque[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := d.PopFront().Value()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Iter is a double-ended consuming iterator. Next and NextBack consume
// from the two ends independently; once they meet, both yield Nothing.
type Iter[T any] struct {
	d *Deque[T]
}

// Iter returns a double-ended consuming iterator over the deque.
func (d *Deque[T]) Iter() *Iter[T] {
	return &Iter[T]{d: d}
}

// Next consumes and returns the front value, or Nothing once exhausted.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	return it.d.PopFront()
}

// NextBack consumes and returns the back value, or Nothing once exhausted.
func (it *Iter[T]) NextBack() maybe.Maybe[T] {
	return it.d.PopBack()
}

// String renders the deque front-to-back, e.g. "⟨0 ⇄ 1 ⇄ 2⟩".
func (d *Deque[T]) String() string {
	b := strings.Builder{}
	b.WriteString("⟨")
	first := true
	for v := range d.All() {
		if !first {
			b.WriteString(" ⇄ ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", v))
	}
	b.WriteString("⟩")
	return b.String()
}
