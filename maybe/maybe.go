/*
Package maybe implements an optional value: a Maybe is either Just a value
or Nothing.

Maybe is the result type of the projections of package either (MapLeft,
FilterRight, …) and of match outcomes which should be treated as optional.

	x := maybe.Just(7)
	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
	}
*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	IsNothing() bool
	Get() (T, bool)
	WithDefault(T) T
	OrElseGet(func() T) T
	Map(func(T) T) Maybe[T]
	Filter(func(T) bool) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x. Note that x may be a nil pointer; Just(nil) is still
// a present value holding nil. Use FromPtr to treat nil as Nothing.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPtr returns Nothing for a nil pointer and Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the value and true, or the zero value of T and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// OrElseGet calls f only if m is Nothing.
func (m maybe[T]) OrElseGet(f func() T) T {
	if m.tag {
		return m.value
	}
	return f()
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Filter(p func(T) bool) Maybe[T] {
	if m.tag && p(m.value) {
		return m
	}
	return Nothing[T]()
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two variants of a Maybe.
// A case method returns the matcher itself if the variant fits and nil otherwise.
// Matchers are pointers, so the switch works for non-comparable T as well.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
