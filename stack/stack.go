package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xmas7/too-many-lists/maybe"
)

// Stack is a LIFO stack of values of type T. The zero value is an empty
// stack, ready to use:
//
//	var s stack.Stack[int]
//	s.Push(42)
//	v := s.Pop()   // Just(42)
//	v = s.Pop()    // Nothing
//
// A Stack must not be copied while non-empty; both copies would claim
// ownership of the same node chain.
type Stack[T any] struct {
	head   *node[T]
	length int
}

// node is one element of the ownership chain. Each node exclusively owns
// its successor; detaching a node transfers that ownership to the stack.
type node[T any] struct {
	value T
	next  *node[T]
}

// New creates an empty stack. Equivalent to declaring a zero-value Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

// IsEmpty tells whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push puts a value on top of the stack. The new node takes ownership of
// the previous head as its successor. O(1).
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{value: v, next: s.head}
	s.length++
	tracer().Debugf("stack: pushed %v, length now %d", v, s.length)
}

// Pop detaches the top node and returns its value, or Nothing if the stack
// is empty. O(1).
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	n := s.head
	s.head = n.next // ownership of the successor moves to the stack
	n.next = nil
	s.length--
	return maybe.Just(n.value)
}

// Peek returns a copy of the top value without removing it, or Nothing if
// the stack is empty.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// PeekRef returns a pointer to the top value for in-place mutation, or nil
// if the stack is empty. The pointer is exclusive for its duration: the
// caller must drop it before the next Push, Pop or walk.
func (s *Stack[T]) PeekRef() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.value
}

// Clear discards all values. The chain is unlinked iteratively, head first,
// so clearing is safe for chains of any length.
func (s *Stack[T]) Clear() {
	n := s.head
	s.head = nil
	s.length = 0
	count := 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
		count++
	}
	tracer().Debugf("stack: cleared %d nodes", count)
}

// --- Iteration ---------------------------------------------------------

// walk is the single traversal primitive all iterator forms are built on.
// It visits the chain top-to-bottom and stops early when visit returns
// false.
func (s *Stack[T]) walk(visit func(*node[T]) bool) {
	for n := s.head; n != nil; n = n.next {
		if !visit(n) {
			return
		}
	}
}

// Drain returns a consuming iterator: each step pops the top value. The
// sequence ends when the stack is empty and is not restartable, since it
// consumes the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop().Value()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over copies of the values, top to bottom. The
// sequence is lazy, finite and restartable; the stack must not be mutated
// while a walk is live.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.walk(func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// Refs returns an iterator over pointers to the values, top to bottom, for
// in-place mutation. Only one pointer is live per step, and the walk
// advances on the node's link rather than through the yielded pointer, so
// mutating the value never interferes with advancing. The stack's
// structure must not be mutated while a walk is live.
func (s *Stack[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s.walk(func(n *node[T]) bool {
			return yield(&n.value)
		})
	}
}

// --- Formatting & comparison --------------------------------------------

// String renders the stack top-to-bottom, e.g. "⟨3 2 1⟩".
func (s *Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteString("⟨")
	first := true
	s.walk(func(n *node[T]) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", n.value))
		return true
	})
	b.WriteString("⟩")
	return b.String()
}

// Equal compares two stacks element-wise, top to bottom.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a.length != b.length {
		return false
	}
	x, y := a.head, b.head
	for x != nil && y != nil {
		if x.value != y.value {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}
