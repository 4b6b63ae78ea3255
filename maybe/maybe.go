/*
Package maybe provides an optional-value type.

A Maybe[T] is either Just(x), carrying a value x of type T, or Nothing.
It is the return type for every list operation in this module which may
legitimately come up empty: popping from an empty stack, reading the head
of an empty list, and so on. Absence is ordinary control flow, not an
error condition.

Clients may pattern-match on a Maybe:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
		// empty case
	}

or, when a switch is inconvenient, unpack it with Value or WithDefault.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T: either Just(x) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x into Just(x).
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing creates the empty case of Maybe[T].
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Value unpacks a Maybe into a value and a flag. For Nothing, the flag is
// false and the value is the zero value for T.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the wrapped value for Just(x), def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if any.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsJust tells whether m carries a value.
func IsJust[T any](m Maybe[T]) bool {
	_, ok := m.Value()
	return ok
}

// AndThen chains a partial function onto an optional value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value wrapped in x, if any.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		v = f(v)
		return Just[T](v)
	case m.Nothing():
	}
	return x
}

// OrElse returns x if it is Just, otherwise y.
func OrElse[T any](x, y Maybe[T]) Maybe[T] {
	if IsJust(x) {
		return x
	}
	return y
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on a Maybe; see the package comment.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
