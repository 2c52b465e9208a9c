package textcluster_test

import (
	"fmt"

	"github.com/clipperhouse/textcluster"
)

func Example() {
	clusters := textcluster.New("Hello, 🇩🇪🇫🇷!")

	it := clusters.Iterator()
	for it.MoveNext() {
		fmt.Printf("[%s]\n", it.String())
	}
	// Output:
	// [H]
	// [e]
	// [l]
	// [l]
	// [o]
	// [,]
	// [ ]
	// [🇩🇪]
	// [🇫🇷]
	// [!]
}

func ExampleClusters_Count() {
	clusters := textcluster.New("Å̈b")
	fmt.Println(clusters.Count())
	// Output:
	// 2
}
