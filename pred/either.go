package pred

import (
	"github.com/lucianogreiner/fp4j"
	"github.com/lucianogreiner/fp4j/either"
)

// HasLeft holds for non-nil Eithers with the left side populated.
func HasLeft[L, R any]() fp.Predicate[either.Either[L, R]] {
	return NilSafe[either.Either[L, R]](func(e either.Either[L, R]) bool {
		return e.IsLeft()
	})
}

// HasRight holds for non-nil Eithers with the right side populated.
func HasRight[L, R any]() fp.Predicate[either.Either[L, R]] {
	return NilSafe[either.Either[L, R]](func(e either.Either[L, R]) bool {
		return e.IsRight()
	})
}

// Left holds for Eithers with the left side populated and p holding for
// the left value. p is not tested if there is no left value.
func Left[L, R any](p fp.Predicate[L]) fp.Predicate[either.Either[L, R]] {
	return And[either.Either[L, R]](HasLeft[L, R](), func(e either.Either[L, R]) bool {
		return p(e.MustLeft())
	})
}

// Right holds for Eithers with the right side populated and p holding for
// the right value. p is not tested if there is no right value.
func Right[L, R any](p fp.Predicate[R]) fp.Predicate[either.Either[L, R]] {
	return And[either.Either[L, R]](HasRight[L, R](), func(e either.Either[L, R]) bool {
		return p(e.MustRight())
	})
}
