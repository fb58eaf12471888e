package pred

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/lucianogreiner/fp4j"
)

// --- Slices ----------------------------------------------------------------

// Empty holds for nil or zero-length slices.
func Empty[E any]() fp.Predicate[[]E] {
	return func(xs []E) bool {
		return len(xs) == 0
	}
}

// Has holds for slices containing v.
func Has[E comparable](v E) fp.Predicate[[]E] {
	return Contain(v)
}

// Contain holds for non-empty slices containing every one of vs.
func Contain[E comparable](vs ...E) fp.Predicate[[]E] {
	return NilSafe[[]E](func(xs []E) bool {
		if len(xs) == 0 {
			return false
		}
		for _, v := range vs {
			if !slices.Contains(xs, v) {
				return false
			}
		}
		return true
	})
}

// Size holds for non-nil slices of length n. Note that a nil slice does
// not have size 0, while an empty non-nil one does.
func Size[E any](n int) fp.Predicate[[]E] {
	return SizeIs[E](func(l int) bool {
		return l == n
	})
}

// SizeIs holds for non-nil slices whose length satisfies p.
func SizeIs[E any](p fp.Predicate[int]) fp.Predicate[[]E] {
	return NilSafe[[]E](func(xs []E) bool {
		return p(len(xs))
	})
}

// --- Numbers ---------------------------------------------------------------

// Range holds for subjects between lo and hi, inclusive.
// Use Deref(Range(lo, hi)) for pointers.
func Range[N cmp.Ordered](lo, hi N) fp.Predicate[N] {
	return func(x N) bool {
		return lo <= x && x <= hi
	}
}

// --- Strings ---------------------------------------------------------------

// HasLength holds for non-empty strings.
func HasLength() fp.Predicate[string] {
	return func(s string) bool {
		return len(s) > 0
	}
}

// Length holds for strings of n runes. Length counts runes, not bytes:
// Length(4) holds for "Grüß", which is 5 bytes long.
// Use Deref(Length(n)) for string pointers.
func Length(n int) fp.Predicate[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) == n
	}
}
