package main

import (
	"fmt"

	"github.com/sanity-io/litter"

	"github.com/kevinxiao27/seqlist/intlist"
	"github.com/kevinxiao27/seqlist/seq"
	"github.com/kevinxiao27/seqlist/util"
	"github.com/kevinxiao27/seqlist/vector"
)

func main() {
	litter.Config.HidePrivateFields = false

	alist := seq.NewAList[int]()
	llist := seq.NewLList[int]()
	for _, l := range []seq.List[int]{alist, llist} {
		seq.AppendAll(l, 1, 2, 3, 2, 1)
		l.MoveToStart()
		l.Insert(0)
	}

	fmt.Printf("alist: %s\n", seq.Dump[int](alist))
	fmt.Printf("llist: %s\n", seq.Dump[int](llist))

	a := seq.ToSlice[int](alist)
	b := seq.ToSlice[int](llist)
	if len(a) == len(b) {
		fmt.Println("Lengths match")
	} else {
		fmt.Println("Lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			fmt.Printf("Position %d differs: alist=%d, llist=%d\n", i, a[i], b[i])
		}
	}

	sum := util.Reduce(a, func(x int, acc int) int { return acc + x }, 0)
	fmt.Printf("sum: %d distinct: %v evens: %v\n",
		sum,
		seq.Distinct[int](llist),
		seq.Filter[int](alist, func(x int) bool { return x%2 == 0 }))

	vec := vector.New[string](0)
	vec.PushBack("grow")
	vec.PushBack("on")
	vec.PushBack("demand")
	fmt.Printf("vector: %v size=%d cap=%d\n", vec.Data(), vec.Size(), vec.Capacity())

	ints := intlist.New()
	ints.PushBack(2)
	ints.PushFront(1)
	ints.PushBack(3)
	ints.PopBack()
	fmt.Printf("intlist: %s\n", ints)
}
