/*
Package pred provides reusable predicates, to be used as guards for the cases
of package match.

Absence

Subjects of pointer, slice, map, channel, function or interface type may be nil.
Most predicates of this package answer false for a nil subject; they are built
on NilSafe, which makes that policy explicit. Predicates on values which cannot
be nil, like Range or Length, are lifted to pointers by Deref:

	inRange := pred.Deref(pred.Range(1, 5)) // fp.Predicate[*int], false for nil

The exception is Eq: a nil pattern value is a programming error and panics with
ErrNilPattern, on first evaluation rather than on construction.
*/
package pred

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lucianogreiner/fp4j"
)

// ErrNilPattern is the panic value of a predicate constructed from a nil
// pattern where a non-nil one is required.
var ErrNilPattern = errors.New("nil pattern value")

// Equaler is implemented by types with a notion of equality beyond ==.
// Eq consults it if == does not hold.
type Equaler[T any] interface {
	Equal(T) bool
}

// NilSafe returns a predicate answering false for nil subjects and
// deferring to p for all others.
func NilSafe[T any](p fp.Predicate[T]) fp.Predicate[T] {
	return func(x T) bool {
		return !isNil(x) && p(x)
	}
}

// Deref lifts p to pointers. The resulting predicate answers false for nil.
func Deref[T any](p fp.Predicate[T]) fp.Predicate[*T] {
	return func(x *T) bool {
		return x != nil && p(*x)
	}
}

// Eq returns a predicate which holds for subjects identical or equal to v.
// A nil v will panic with ErrNilPattern when the predicate is tested, even
// for a nil subject.
// A nil subject is never equal to a non-nil v.
//
// For interface types T, values of uncomparable dynamic type (slices, maps,
// funcs) without an Equal method are compared with reflect.DeepEqual.
func Eq[T comparable](v T) fp.Predicate[T] {
	return func(x T) bool {
		if isNil(v) {
			panic(fmt.Errorf("pred.Eq: %w", ErrNilPattern))
		}
		if isNil(x) {
			return false
		}
		canEq := comparableValue(v) && comparableValue(x)
		if canEq && v == x {
			return true
		}
		if e, ok := any(v).(Equaler[T]); ok {
			return e.Equal(x)
		}
		if !canEq {
			return reflect.DeepEqual(any(v), any(x))
		}
		return false
	}
}

// In returns a predicate which holds if the subject is Eq to any of vs.
func In[T comparable](vs ...T) fp.Predicate[T] {
	ps := make([]fp.Predicate[T], len(vs))
	for i, v := range vs {
		ps[i] = Eq(v)
	}
	return Or(ps...)
}

// InstanceOf returns a predicate which holds if the dynamic type of the subject
// is U or, for an interface type U, implements U.
//
//	pred.InstanceOf[any, fmt.Stringer]()
func InstanceOf[T, U any]() fp.Predicate[T] {
	return NilSafe[T](func(x T) bool {
		_, ok := any(x).(U)
		return ok
	})
}

// Not returns the logical negation of p.
func Not[T any](p fp.Predicate[T]) fp.Predicate[T] {
	return p.Negate()
}

// And returns a predicate which holds if all of ps hold. Evaluation stops
// at the first predicate which does not hold.
func And[T any](ps ...fp.Predicate[T]) fp.Predicate[T] {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate which holds if any of ps holds. Evaluation stops
// at the first predicate which holds.
func Or[T any](ps ...fp.Predicate[T]) fp.Predicate[T] {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	switch v := reflect.ValueOf(x); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// comparableValue is false if == on x would panic at runtime.
func comparableValue(x any) bool {
	return reflect.TypeOf(x).Comparable()
}
