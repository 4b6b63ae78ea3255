/*
Package result provides a type for computations that may fail.

A Result[T] is either Ok(x), carrying a value x of type T, or Err(e),
carrying an error. In this module it is the return type of fallible
acquisitions, in particular the deque's borrow guards: acquiring a guard
may fail with a borrow conflict, and the caller must handle that case
explicitly before touching the value.

Clients may pattern-match on a Result:

	var v int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// use v
	case m.Err(&e):
		// handle e
	}

or unpack it with Value, which returns the conventional (T, error) pair.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

// Result is the outcome of a computation that may fail: Ok(x) or Err(e).
type Result[T any] interface {
	Match() Matcher[T]
	Value() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value x into Ok(x).
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates the failure case of Result[T].
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Value unpacks a Result into the conventional (T, error) pair. For Err,
// the value is the zero value for T.
func (r result[T]) Value() (T, error) {
	return r.value, r.err
}

// WithDefault returns the wrapped value for Ok(x), def for Err.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// IsOk tells whether r carries a value.
func IsOk[T any](r Result[T]) bool {
	_, err := r.Value()
	return err == nil
}

// AndThen chains a fallible function onto a result, propagating the first
// error encountered.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	v, err := x.Value()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on a Result; see the package comment.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
