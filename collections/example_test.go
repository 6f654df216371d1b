package collections_test

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-lazy-ranges/collections"
	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

func ExampleNew() {
	v := collections.New(1, 2, 3, 4, 5)
	fmt.Println(v.Len(), v.At(4), v.Category())
	// Output: 5 5 random-access
}

func ExampleVector_Set() {
	v := collections.New("a", "b")
	if err := v.Set(1, "B"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(v.Set(2, "C"))
	fmt.Println(v.All())
	// Output:
	// collections: index out of range: 2 (len 2)
	// [a B]
}

func ExampleNewList() {
	l := collections.NewList(2, 3)
	l.PushFront(1)
	back, _ := l.PopBack()
	fmt.Println(l.All(), back)
	// Output: [1 2] 3
}

func ExampleScan() {
	nums := collections.Scan(strings.NewReader("3 1 4 1 5"), bufio.ScanWords, strconv.Atoi)
	doubled := ranges.Map(nums, func(n int) int { return n * 2 })
	fmt.Println(doubled.Collect(), nums.Err())
	// Output: [6 2 8 2 10] <nil>
}

func ExampleIota() {
	odd := ranges.Where(collections.Iota(0, 10), func(n int) bool { return n%2 == 1 })
	fmt.Println(odd.Collect())
	// Output: [1 3 5 7 9]
}

func ExampleSnapshot() {
	words := collections.Words(strings.NewReader("keep these words"))
	snap := collections.Snapshot[string](ranges.Map(words, strings.ToUpper))
	fmt.Println(snap.Len(), snap.All())
	// Output: 3 [KEEP THESE WORDS]
}
