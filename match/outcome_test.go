package match_test

import (
	"testing"

	. "github.com/lucianogreiner/fp4j/match"
	"github.com/lucianogreiner/fp4j/pred"
)

func TestOutcomeSimple(t *testing.T) {
	cases := []Case[int, int]{
		When(pred.Eq(7), func(n int) int { return n * 2 }),
		WhenDo[int](pred.Eq(8), func(int) {}),
	}
	x := Match(7, cases...)
	y := Match(8, cases...)
	z := Match(9, cases...)

	var v int
	switch m := x.Match(); m {
	case m.Value(&v):
		t.Logf("Value(%d)", v)
	case m.Effect():
		t.Error("expected 7 to produce a value, not an effect")
	case m.NoMatch():
		t.Error("expected 7 to match")
	}
	if v != 14 {
		t.Errorf("expected v to be 14, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Value(&v):
		t.Errorf("expected 8 to have no value, has %d", v)
	case m.Effect():
		t.Logf("Effect")
	case m.NoMatch():
		t.Error("expected 8 to match")
	}

	switch m := z.Match(); m {
	case m.Value(&v):
		t.Errorf("expected 9 to have no value, has %d", v)
	case m.Effect():
		t.Error("expected 9 not to match")
	case m.NoMatch():
		t.Logf("NoMatch")
	}
}

func TestOutcomeKinds(t *testing.T) {
	var zero Outcome[string]
	if zero.Kind() != NoMatch || zero.Matched() || zero.HasValue() {
		t.Errorf("expected zero outcome to be no-match, is %v", zero)
	}
	if zero.OrElse("x") != "x" {
		t.Error("expected no-match outcome to default to x")
	}
	if zero.Maybe().IsJust() {
		t.Error("expected no-match outcome to convert to Nothing")
	}
	o := Match("a", OtherwiseConst[string]("b"))
	if o.Kind() != Value || !o.HasValue() || o.OrElse("x") != "b" {
		t.Errorf("expected value outcome b, is %v", o)
	}
	if s := o.String(); s != "Value(b)" {
		t.Errorf("expected outcome to print as Value(b), is %q", s)
	}
	e := Match("a", OtherwiseDo[string](func(string) {}))
	if !e.Matched() || e.HasValue() || e.Kind().String() != "effect" {
		t.Errorf("expected effect outcome, is %v", e)
	}
	calls := 0
	e.OrElseGet(func() string {
		calls++
		return ""
	})
	o.OrElseGet(func() string {
		calls++
		return ""
	})
	if calls != 1 {
		t.Errorf("expected OrElseGet to call its supplier once, called %d times", calls)
	}
}
