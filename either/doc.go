/*
Package either implements a binary disjoint union: an Either holds exactly one
of two alternative values, a left one or a right one.

Which side is populated is decided at construction, by calling either Left or
Right, and never changes afterwards. Either values are immutable and may be
shared between goroutines freely.

Accessing the side which is not populated is an error (ErrAbsent), or a
panic for the Must… variants. Projections onto one side (MapLeft, FilterRight, …)
collapse to a maybe.Maybe, dropping the other side:

	e := either.Right[string](10)
	twice := either.MapRight(e, func(n int) int { return 2 * n }) // Just(20)

A left or right value which is a nil pointer counts as populated. Clients
wanting nil to mean “absent” should convert with maybe.FromPtr first.
*/
package either

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.either'.
func tracer() tracing.Trace {
	return tracing.Select("fp.either")
}
