package iitii_test

import (
	"fmt"
	"sort"

	"github.com/biodatageeks/iitii"
)

type pair struct{ beg, end int }

func Example() {
	b := iitii.NewBuilder[int](
		func(p pair) int { return p.beg },
		func(p pair) int { return p.end },
	)
	b.Add(pair{12, 34})
	b.Add(pair{0, 23})
	b.Add(pair{34, 56})
	db := b.Build()

	hits := db.OverlapAll(22, 25)
	sort.Slice(hits, func(i, j int) bool { return hits[i].beg < hits[j].beg })
	for _, h := range hits {
		fmt.Printf("[%d,%d)\n", h.beg, h.end)
	}
	// Output:
	// [0,23)
	// [12,34)
}

func ExampleBuilder_BuildInterpolated() {
	b := iitii.NewBuilder[int](
		func(p pair) int { return p.beg },
		func(p pair) int { return p.end },
	)
	for i := 0; i < 1000; i++ {
		b.Add(pair{i * 10, i*10 + 15})
	}
	db := b.BuildInterpolated(4)

	var hits []*pair
	db.Overlap(500, 520, &hits)
	fmt.Println(len(hits))
	// Output:
	// 3
}
