// Command vtbench compares the persistent vector in
// pkg/persistent/vectortree against a plain Go slice for push, pop and
// traversal workloads, and can dump the shape of a vector's tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"

	vt "github.com/BarisAlbayrakIEEE/VectorTree/pkg/persistent/vectortree"
)

func main() {
	size := flag.Int("size", 100000, "number of elements to push")
	dump := flag.Bool("dump", false, "print the tree shape of the resulting vector instead of timings")
	flag.Parse()

	if *size < 0 {
		log.Fatalf("vtbench: -size must be non-negative, got %d", *size)
	}

	if *dump {
		v := buildVector(*size)
		dumpTree(v)
		return
	}

	runComparison(*size)
}

func buildVector(n int) vt.Vector[int] {
	v := vt.New[int]()
	for i := 0; i < n; i++ {
		var err error
		v, err = v.PushBack(i)
		if err != nil {
			log.Fatalf("vtbench: PushBack: %v", err)
		}
	}
	return v
}

func runComparison(n int) {
	title := color.New(color.FgHiCyan, color.Bold)
	label := color.New(color.FgYellow)

	title.Printf("vtbench: size=%d\n", n)

	start := time.Now()
	v := buildVector(n)
	vtPush := time.Since(start)

	start = time.Now()
	s := make([]int, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, i)
	}
	slicePush := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		_, _ = v.Get(i)
	}
	vtTraversal := time.Since(start)

	start = time.Now()
	sum := 0
	for _, e := range s {
		sum += e
	}
	sliceTraversal := time.Since(start)

	start = time.Now()
	for v.Len() > 0 {
		var err error
		v, err = v.PopBack()
		if err != nil {
			log.Fatalf("vtbench: PopBack: %v", err)
		}
	}
	vtPop := time.Since(start)

	start = time.Now()
	for len(s) > 0 {
		s = s[:len(s)-1]
	}
	slicePop := time.Since(start)

	label.Println("push back:")
	fmt.Printf("  Vector[int]: %v\n  []int:       %v\n", vtPush, slicePush)
	label.Println("full traversal:")
	fmt.Printf("  Vector[int]: %v\n  []int:       %v\n", vtTraversal, sliceTraversal)
	label.Println("pop back:")
	fmt.Printf("  Vector[int]: %v\n  []int:       %v\n", vtPop, slicePop)
}

func dumpTree(v vt.Vector[int]) {
	fmt.Print(v.Dump())
	if err := v.Validate(); err != nil {
		color.New(color.FgRed).Printf("invariant violation: %v\n", err)
		return
	}
	color.New(color.FgGreen).Println("tree is structurally valid")
}
