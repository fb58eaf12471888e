package either

import (
	"errors"
	"fmt"

	"github.com/lucianogreiner/fp4j"
	"github.com/lucianogreiner/fp4j/maybe"
)

// ErrAbsent is returned when a client requests the side of an Either
// which is not populated.
var ErrAbsent = errors.New("value not present")

// ErrNoLeft and ErrNoRight wrap ErrAbsent for the respective side.
var (
	ErrNoLeft  = fmt.Errorf("left %w", ErrAbsent)
	ErrNoRight = fmt.Errorf("right %w", ErrAbsent)
)

// ErrNilEither is the panic value of Fold for a nil Either, which has
// neither side.
var ErrNilEither = fmt.Errorf("nil Either: %w", ErrAbsent)

// Either holds either a value of type L or a value of type R, never both
// and never none.
type Either[L, R any] interface {
	IsLeft() bool
	IsRight() bool
	Left() (L, error)
	Right() (R, error)
	MustLeft() L
	MustRight() R
	LeftOrElse(L) L
	RightOrElse(R) R
	LeftOrElseGet(func() L) L
	RightOrElseGet(func() R) R
	LeftOrError(func() error) (L, error)
	RightOrError(func() error) (R, error)
	LeftMaybe() maybe.Maybe[L]
	RightMaybe() maybe.Maybe[R]
	FilterLeft(fp.Predicate[L]) maybe.Maybe[L]
	FilterRight(fp.Predicate[R]) maybe.Maybe[R]
	Match() Matcher[L, R]
}

type either[L, R any] struct {
	left  maybe.Maybe[L]
	right maybe.Maybe[R]
}

// Left creates an Either with the left side populated.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: maybe.Just(l), right: maybe.Nothing[R]()}
}

// Right creates an Either with the right side populated.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{left: maybe.Nothing[L](), right: maybe.Just(r)}
}

func (e either[L, R]) IsLeft() bool {
	return e.left.IsJust()
}

func (e either[L, R]) IsRight() bool {
	return e.right.IsJust()
}

// Left returns the left value, or ErrNoLeft if e is a right Either.
func (e either[L, R]) Left() (L, error) {
	l, ok := e.left.Get()
	if !ok {
		tracer().Debugf("left value requested from %v", e)
		return l, ErrNoLeft
	}
	return l, nil
}

// Right returns the right value, or ErrNoRight if e is a left Either.
func (e either[L, R]) Right() (R, error) {
	r, ok := e.right.Get()
	if !ok {
		tracer().Debugf("right value requested from %v", e)
		return r, ErrNoRight
	}
	return r, nil
}

// MustLeft returns the left value and panics with ErrNoLeft if there is none.
func (e either[L, R]) MustLeft() L {
	l, err := e.Left()
	if err != nil {
		panic(err)
	}
	return l
}

// MustRight returns the right value and panics with ErrNoRight if there is none.
func (e either[L, R]) MustRight() R {
	r, err := e.Right()
	if err != nil {
		panic(err)
	}
	return r
}

func (e either[L, R]) LeftOrElse(other L) L {
	return e.left.WithDefault(other)
}

func (e either[L, R]) RightOrElse(other R) R {
	return e.right.WithDefault(other)
}

// LeftOrElseGet returns the left value, if present, or the result of f.
// f is called only if the left side is absent.
func (e either[L, R]) LeftOrElseGet(f func() L) L {
	return e.left.OrElseGet(f)
}

// RightOrElseGet returns the right value, if present, or the result of f.
// f is called only if the right side is absent.
func (e either[L, R]) RightOrElseGet(f func() R) R {
	return e.right.OrElseGet(f)
}

// LeftOrError returns the left value, if present, or the error created by mkerr.
// If mkerr returns nil, ErrNoLeft is returned instead.
func (e either[L, R]) LeftOrError(mkerr func() error) (L, error) {
	if l, ok := e.left.Get(); ok {
		return l, nil
	}
	var l L
	return l, orAbsent(mkerr(), ErrNoLeft)
}

// RightOrError returns the right value, if present, or the error created by mkerr.
// If mkerr returns nil, ErrNoRight is returned instead.
func (e either[L, R]) RightOrError(mkerr func() error) (R, error) {
	if r, ok := e.right.Get(); ok {
		return r, nil
	}
	var r R
	return r, orAbsent(mkerr(), ErrNoRight)
}

func orAbsent(err, absent error) error {
	if err == nil {
		return absent
	}
	return err
}

func (e either[L, R]) LeftMaybe() maybe.Maybe[L] {
	return e.left
}

func (e either[L, R]) RightMaybe() maybe.Maybe[R] {
	return e.right
}

// FilterLeft returns Just the left value if it is present and p holds for it.
func (e either[L, R]) FilterLeft(p fp.Predicate[L]) maybe.Maybe[L] {
	return e.left.Filter(p)
}

// FilterRight returns Just the right value if it is present and p holds for it.
func (e either[L, R]) FilterRight(p fp.Predicate[R]) maybe.Maybe[R] {
	return e.right.Filter(p)
}

func (e either[L, R]) String() string {
	if l, ok := e.left.Get(); ok {
		return fmt.Sprintf("Left(%v)", l)
	}
	r, _ := e.right.Get()
	return fmt.Sprintf("Right(%v)", r)
}

// --- Projections -----------------------------------------------------------

// MapLeft applies f to the left value of e, if present. The result is a
// Maybe, not an Either: the right side is dropped.
func MapLeft[L, R, U any](e Either[L, R], f func(L) U) maybe.Maybe[U] {
	if e == nil {
		return maybe.Nothing[U]()
	}
	return maybe.Map(f, e.LeftMaybe())
}

// MapRight applies f to the right value of e, if present. The result is a
// Maybe, not an Either: the left side is dropped.
func MapRight[L, R, U any](e Either[L, R], f func(R) U) maybe.Maybe[U] {
	if e == nil {
		return maybe.Nothing[U]()
	}
	return maybe.Map(f, e.RightMaybe())
}

// FlatMapLeft applies f to the left value of e, if present, and returns its result.
func FlatMapLeft[L, R, U any](e Either[L, R], f func(L) maybe.Maybe[U]) maybe.Maybe[U] {
	if e == nil {
		return maybe.Nothing[U]()
	}
	return maybe.AndThen(f, e.LeftMaybe())
}

// FlatMapRight applies f to the right value of e, if present, and returns its result.
func FlatMapRight[L, R, U any](e Either[L, R], f func(R) maybe.Maybe[U]) maybe.Maybe[U] {
	if e == nil {
		return maybe.Nothing[U]()
	}
	return maybe.AndThen(f, e.RightMaybe())
}

// Fold eliminates e by calling exactly one of onLeft or onRight.
// As Either has exactly two variants, Fold is an exhaustive match.
// A nil e has no variant; Fold panics with ErrNilEither.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e == nil {
		panic(ErrNilEither)
	}
	if l, ok := e.LeftMaybe().Get(); ok {
		return onLeft(l)
	}
	r, _ := e.RightMaybe().Get()
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two variants of an Either:
//
//	var s string
//	var n int
//	switch m := e.Match(); m {
//	case m.Left(&s):
//	case m.Right(&n):
//	}
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (e either[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

func (em *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if l, ok := em.e.left.Get(); ok {
		*v = l
		return em
	}
	return nil
}

func (em *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if r, ok := em.e.right.Get(); ok {
		*v = r
		return em
	}
	return nil
}
