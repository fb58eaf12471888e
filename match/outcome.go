package match

import (
	"fmt"

	"github.com/lucianogreiner/fp4j/maybe"
)

// Kind tells the three possible results of evaluating a match apart.
type Kind int8

const (
	NoMatch Kind = iota // no case matched
	Effect             // a case matched and ran for its side effect only
	Value              // a case matched and produced a value
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case Effect:
		return "effect"
	case Value:
		return "value"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Outcome is the result of evaluating a match. The zero value is NoMatch.
type Outcome[R any] struct {
	kind  Kind
	value R
}

func valueOf[R any](x R) Outcome[R] {
	return Outcome[R]{kind: Value, value: x}
}

func effect[R any]() Outcome[R] {
	return Outcome[R]{kind: Effect}
}

// Kind returns which of the three results o is.
func (o Outcome[R]) Kind() Kind {
	return o.kind
}

// Matched is true if a case matched, whether or not it produced a value.
func (o Outcome[R]) Matched() bool {
	return o.kind != NoMatch
}

// HasValue is true if a case matched and produced a value.
func (o Outcome[R]) HasValue() bool {
	return o.kind == Value
}

// Get returns the value produced by the matching case. If there is none,
// it returns the zero value of R and false.
func (o Outcome[R]) Get() (R, bool) {
	return o.value, o.kind == Value
}

// OrElse returns the value produced by the matching case, or other.
func (o Outcome[R]) OrElse(other R) R {
	if o.kind == Value {
		return o.value
	}
	return other
}

// OrElseGet returns the value produced by the matching case, or the result
// of f. f is called only if there is no value.
func (o Outcome[R]) OrElseGet(f func() R) R {
	if o.kind == Value {
		return o.value
	}
	return f()
}

// Maybe converts o to an optional value. Both NoMatch and Effect become Nothing.
func (o Outcome[R]) Maybe() maybe.Maybe[R] {
	if o.kind == Value {
		return maybe.Just(o.value)
	}
	return maybe.Nothing[R]()
}

func (o Outcome[R]) String() string {
	if o.kind == Value {
		return fmt.Sprintf("Value(%v)", o.value)
	}
	return o.kind.String()
}

// --- Matching --------------------------------------------------------------

// OutcomeMatcher lets clients switch over the kinds of an Outcome:
//
//	var s string
//	switch m := o.Match(); m {
//	case m.Value(&s):
//	case m.Effect():
//	case m.NoMatch():
//	}
type OutcomeMatcher[R any] interface {
	Value(*R) OutcomeMatcher[R]
	Effect() OutcomeMatcher[R]
	NoMatch() OutcomeMatcher[R]
}

type outcomeMatcher[R any] struct {
	o Outcome[R]
}

// Match returns a matcher to switch over the kind of o.
func (o Outcome[R]) Match() OutcomeMatcher[R] {
	return &outcomeMatcher[R]{o: o}
}

func (om *outcomeMatcher[R]) Value(v *R) OutcomeMatcher[R] {
	if om.o.kind == Value {
		*v = om.o.value
		return om
	}
	return nil
}

func (om *outcomeMatcher[R]) Effect() OutcomeMatcher[R] {
	if om.o.kind == Effect {
		return om
	}
	return nil
}

func (om *outcomeMatcher[R]) NoMatch() OutcomeMatcher[R] {
	if om.o.kind == NoMatch {
		return om
	}
	return nil
}
