package flags_test

import (
	"fmt"

	"github.com/cwbudde/algo-align/flags"
)

func ExampleReverse() {
	out, _ := flags.Reverse([]int{1, 0, 0, 2, 0, 8}, 4)
	fmt.Println(out)

	// Output:
	// [8 0 0 4 0 1]
}

func ExampleAccept() {
	q, _ := flags.ParseQuality("patchy")
	fmt.Println(flags.Accept([]int{0, 7, 31}, q.MaxFlag()))

	// Output:
	// [true true false]
}
