package dist_test

import (
	"fmt"

	"github.com/matzehuels/strprof/pkg/dist"
)

func ExampleParse() {
	spec, err := dist.Parse("uniform", []string{"2", "4"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(spec.Kind(), spec.Params())

	_, err = dist.Parse("uniform", []string{"5", "3"})
	fmt.Println(err)
	// Output:
	// uniform [2 4]
	// INVALID_PARAMETER: uniform upper bound must exceed lower bound, got [5, 3]
}

func ExampleSampler_Sample() {
	s, _ := dist.New(dist.Identical{Length: 5}, dist.NewRand(1))
	fmt.Println(s.Sample(), s.Sample())
	// Output: 5 5
}
