package preamble_test

import (
	"fmt"

	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/preamble"
)

func ExampleLine() {
	for _, spec := range []dist.Spec{
		dist.Uniform{Lower: 2, Upper: 4},
		dist.Identical{Length: 7},
		dist.Binomial{Trials: 10, P: 0.5},
	} {
		line, _ := preamble.Line(5, spec)
		fmt.Println(line)
	}
	// Output:
	// # 5 3.0 0.6666666666666666
	// # 5 7 0
	// # 5 5.0 2.5
}
