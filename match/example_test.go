package match_test

import (
	"fmt"

	"github.com/lucianogreiner/fp4j/match"
	"github.com/lucianogreiner/fp4j/pred"
)

func ExampleMatch() {
	someOperation := func(amount int) string {
		return match.Match(amount,
			match.WhenConst(pred.Eq(10), "Bingo!"),
			match.When(pred.In(2, 3, 5, 7), func(v int) string {
				return fmt.Sprintf("%d is a Prime Number!", v)
			}),
			match.OtherwiseConst[int]("Something we can't tell!"),
		).OrElse("")
	}
	fmt.Println(someOperation(10))
	fmt.Println(someOperation(3))
	fmt.Println(someOperation(4))
	// Output:
	// Bingo!
	// 3 is a Prime Number!
	// Something we can't tell!
}

func ExampleFunc() {
	sizeOf := match.Func(
		match.WhenConst(pred.Empty[int](), "empty"),
		match.WhenConst(pred.Contain(1, 2), "has 1 and 2"),
		match.WhenConst(pred.Size[int](3), "three elements"),
	)
	for _, xs := range [][]int{nil, {1, 2, 3}, {4, 5, 6}, {7}} {
		o := sizeOf(xs)
		fmt.Println(xs, o)
	}
	// Output:
	// [] Value(empty)
	// [1 2 3] Value(has 1 and 2)
	// [4 5 6] Value(three elements)
	// [7] no-match
}
