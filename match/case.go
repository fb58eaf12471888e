package match

import (
	"github.com/lucianogreiner/fp4j"
)

// Case is one branch of a match: a guard predicate and an action.
// Cases are created with the When… and Otherwise… functions and are
// immutable afterwards. The zero Case never matches.
type Case[T, R any] struct {
	guard    fp.Predicate[T]
	action   func(T) Outcome[R]
	label    string
	catchAll bool
}

func (c Case[T, R]) matches(x T) bool {
	return c.guard.Test(x)
}

func (c Case[T, R]) apply(x T) Outcome[R] {
	return c.action(x)
}

// Named returns a copy of c labelled with name. Labels show up in traces
// and in Cases.Tree.
func (c Case[T, R]) Named(name string) Case[T, R] {
	c.label = name
	return c
}

// Label returns the label of c.
func (c Case[T, R]) Label() string {
	if c.label == "" {
		if c.catchAll {
			return "otherwise"
		}
		return "case"
	}
	return c.label
}

// --- When ------------------------------------------------------------------

// When creates a case applying f to the subject if p holds for it.
func When[T, R any](p fp.Predicate[T], f func(T) R) Case[T, R] {
	return Case[T, R]{guard: p, action: fp.Compose(f, valueOf[R])}
}

// WhenGet creates a case producing the result of f if p holds.
// The subject is not passed to f.
func WhenGet[T, R any](p fp.Predicate[T], f func() R) Case[T, R] {
	return When(p, fp.Ignore[T](f))
}

// WhenConst creates a case producing r if p holds.
func WhenConst[T, R any](p fp.Predicate[T], r R) Case[T, R] {
	return WhenGet(p, fp.Const(r))
}

// WhenDo creates a case which, if p holds, calls f with the subject for
// its side effect. The outcome of a match ending in such a case has kind Effect.
// The result type comes first to allow WhenDo[string](p, f).
func WhenDo[R, T any](p fp.Predicate[T], f func(T)) Case[T, R] {
	return Case[T, R]{guard: p, action: func(x T) Outcome[R] {
		f(x)
		return effect[R]()
	}}
}

// --- Otherwise -------------------------------------------------------------

// Otherwise creates a case applying f to any subject.
// It should be the last case of a match, see package documentation.
func Otherwise[T, R any](f func(T) R) Case[T, R] {
	return catchAll(When(fp.True[T](), f))
}

// OtherwiseGet creates a case producing the result of f for any subject.
// Use as OtherwiseGet[T](f).
func OtherwiseGet[T, R any](f func() R) Case[T, R] {
	return catchAll(WhenGet(fp.True[T](), f))
}

// OtherwiseConst creates a case producing r for any subject.
// Use as OtherwiseConst[T](r).
func OtherwiseConst[T, R any](r R) Case[T, R] {
	return catchAll(WhenConst(fp.True[T](), r))
}

// OtherwiseDo creates a case calling f for any subject, for its side effect.
// Use as OtherwiseDo[R](f).
func OtherwiseDo[R, T any](f func(T)) Case[T, R] {
	return catchAll(WhenDo[R](fp.True[T](), f))
}

func catchAll[T, R any](c Case[T, R]) Case[T, R] {
	c.catchAll = true
	return c
}
