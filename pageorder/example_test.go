package pageorder_test

import (
	"fmt"

	"github.com/katalvlaran/aoc24/pageorder"
)

// ExampleTable_Sort repairs an update using the rules 97|75, 75|47 and 97|47.
func ExampleTable_Sort() {
	tbl := pageorder.NewTable()
	_ = tbl.Insert(97, 75)
	_ = tbl.Insert(75, 47)
	_ = tbl.Insert(97, 47)

	u := pageorder.Update{75, 47, 97}
	ok, _ := tbl.IsSorted(u)
	fmt.Println("sorted:", ok)

	_ = tbl.Sort(u)
	fmt.Println(u, "middle:", u.Middle())
	// Output:
	// sorted: false
	// [97 75 47] middle: 75
}

// ExampleTable_Get shows that a missing relation is an error, not a default.
func ExampleTable_Get() {
	tbl := pageorder.NewTable()
	_ = tbl.Insert(1, 2)
	_ = tbl.Insert(2, 3)

	o, _ := tbl.Get(3, 2)
	fmt.Println(o)
	_, err := tbl.Get(1, 3)
	fmt.Println(err)
	// Output:
	// Greater
	// 1,3: pageorder: pages are not related by any rule
}
