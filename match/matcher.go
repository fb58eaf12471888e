package match

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Cases is an ordered list of cases. Order is significant: the first case
// whose guard holds wins.
type Cases[T, R any] []Case[T, R]

// Eval scans cs in order and applies the action of the first case whose
// guard holds for x. If no case matches, or cs is empty, the outcome is NoMatch.
func (cs Cases[T, R]) Eval(x T) Outcome[R] {
	for i, c := range cs {
		if c.matches(x) {
			tracer().Debugf("case #%d (%s) matches %v", i, c.Label(), x)
			return c.apply(x)
		}
	}
	tracer().Debugf("none of %d cases matches %v", len(cs), x)
	return Outcome[R]{}
}

// Tree renders cs for debugging. Cases following a catch-all case are
// marked as unreachable.
func (cs Cases[T, R]) Tree() tp.Tree {
	root := tp.New()
	branch := root.AddBranch(fmt.Sprintf("%d cases", len(cs)))
	dead := false
	for i, c := range cs {
		name := fmt.Sprintf("#%d %s", i, c.Label())
		if dead {
			name += " (unreachable)"
		}
		branch.AddNode(name)
		dead = dead || c.catchAll
	}
	return root
}

// Matcher binds a subject to an ordered list of cases. Evaluation is lazy
// and may be repeated.
type Matcher[T, R any] struct {
	subject T
	cases   Cases[T, R]
}

// Bind creates a Matcher for subject x. The cases are copied.
func Bind[T, R any](x T, cases ...Case[T, R]) *Matcher[T, R] {
	cs := make(Cases[T, R], len(cases))
	copy(cs, cases)
	return &Matcher[T, R]{subject: x, cases: cs}
}

// Get evaluates the cases of m against its subject.
func (m *Matcher[T, R]) Get() Outcome[R] {
	return m.cases.Eval(m.subject)
}

// Subject returns the subject m is bound to.
func (m *Matcher[T, R]) Subject() T {
	return m.subject
}

// Cases returns a copy of the cases of m.
func (m *Matcher[T, R]) Cases() Cases[T, R] {
	cs := make(Cases[T, R], len(m.cases))
	copy(cs, m.cases)
	return cs
}

// Match evaluates cases against x. It is equivalent to Bind(x, cases...).Get().
func Match[T, R any](x T, cases ...Case[T, R]) Outcome[R] {
	return Bind(x, cases...).Get()
}

// Func creates a reusable function evaluating cases against its argument.
// Build a rule set once, apply it to many subjects.
func Func[T, R any](cases ...Case[T, R]) func(T) Outcome[R] {
	cs := make(Cases[T, R], len(cases))
	copy(cs, cases)
	return cs.Eval
}
