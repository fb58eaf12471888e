/*
Package match implements declarative first-match-wins matching.

A match is an ordered list of cases, each one a guard predicate paired with an
action. Cases are evaluated against a subject value in insertion order; the
action of the first case whose guard holds is applied to the subject and its
result returned. Later cases are skipped, their guards are not even tested.

	func describe(n int) string {
		return match.Match(n,
			match.WhenConst(pred.Eq(10), "Bingo!"),
			match.When(pred.In(2, 3, 5, 7), func(v int) string {
				return fmt.Sprintf("%d is a Prime Number!", v)
			}),
			match.OtherwiseConst[int]("Something we can't tell!"),
		).OrElse("")
	}

Evaluating a match returns an Outcome, which tells apart three results:
no case matched, a case ran for its effect only (WhenDo), and a case produced
a value. “No match” is not an error.

Rule sets may be built once and applied to many subjects with Func, or bound
to a single subject and evaluated lazily with Bind.

Ordering

There is no check for exhaustiveness or reachability. Otherwise is nothing
but a case with an always-true guard and should be placed last: every case
following it is dead. Cases.Tree marks such cases when rendering a rule set.

Panics raised by guards or actions are not recovered; they propagate to
the caller of Match, Get or the function returned by Func.

Concurrency

Cases are immutable. A rule set may be evaluated from many goroutines
as long as the guards and actions given by the client are safe to do so.
*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.match'.
func tracer() tracing.Trace {
	return tracing.Select("fp.match")
}
