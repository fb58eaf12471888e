/*
Package fp holds the small functional building blocks shared by the
sub-packages of this module: predicates and a handful of function combinators.

Sub-packages:

  - either: a container holding exactly one of two alternative values
  - maybe:  an optional value
  - match:  first-match-wins matching over ordered guard/action cases
  - pred:   reusable predicates to be used as guards

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fp

// Predicate is a function from a value to true/false, used to test a
// match condition.
type Predicate[T any] func(T) bool

// Test applies p to x. A nil predicate never holds.
func (p Predicate[T]) Test(x T) bool {
	if p == nil {
		return false
	}
	return p(x)
}

// Negate returns the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(x T) bool {
		return !p(x)
	}
}

// True returns a predicate which holds for every input.
func True[T any]() Predicate[T] {
	return func(T) bool {
		return true
	}
}

// False returns a predicate which holds for no input.
func False[T any]() Predicate[T] {
	return func(T) bool {
		return false
	}
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Ignore lifts a function without arguments to one ignoring its argument.
func Ignore[A, B any](f func() B) func(A) B {
	return func(A) B {
		return f()
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
