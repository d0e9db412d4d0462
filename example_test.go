package gasket_test

import (
	"fmt"

	"github.com/gogpu/gasket"
)

func Example() {
	seed, err := gasket.CanvasSeed(960)
	if err != nil {
		panic(err)
	}
	p, err := gasket.New(seed)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 3; i++ {
		s, err := p.Step()
		if err != nil {
			panic(err)
		}
		fmt.Printf("step %d: +%d circles, %d total\n", s.Depth, s.Accepted, s.Circles)
	}
	// Output:
	// step 1: +2 circles, 5 total
	// step 2: +6 circles, 11 total
	// step 3: +18 circles, 29 total
}

func ExampleDescartes() {
	outer := gasket.MustCircle(-1, 0, 0)
	left := gasket.MustCircle(2, -0.5, 0)
	right := gasket.MustCircle(2, 0.5, 0)

	k := gasket.Descartes(outer, left, right)
	fmt.Println(k.Positive, k.Negative)
	// Output: 3 3
}

func ExamplePacking_Steps() {
	seed, _ := gasket.CanvasSeed(400)
	p, _ := gasket.New(seed)

	stats, _ := p.Steps(100)
	fmt.Println(len(stats), p.Len(), p.Done())
	// Output: 16 533 true
}
