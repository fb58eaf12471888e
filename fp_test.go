package fp_test

import (
	"fmt"
	"testing"

	"github.com/lucianogreiner/fp4j"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := fp.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := fp.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestIgnore(t *testing.T) {
	f := fp.Ignore[string](fp.Const(42))
	if f("whatever") != 42 {
		t.Logf("f(…) = %d", f("whatever"))
		t.Error("expected Ignore(Const(42)) to return 42 for any input")
	}
}

func TestPredicates(t *testing.T) {
	even := fp.Predicate[int](func(n int) bool { return n%2 == 0 })
	if !even.Test(4) || even.Test(3) {
		t.Error("expected even to hold for 4 and not for 3")
	}
	odd := even.Negate()
	if odd.Test(4) || !odd.Test(3) {
		t.Error("expected negated even to hold for 3 and not for 4")
	}
	if !fp.True[int]()(0) || fp.False[int]()(0) {
		t.Error("expected True to hold and False not to hold")
	}
	var none fp.Predicate[int]
	if none.Test(1) {
		t.Error("expected nil predicate never to hold")
	}
}
