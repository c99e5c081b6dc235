package seq

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sanity-io/litter"

	"github.com/kevinxiao27/seqlist/util"
)

// ToSlice returns the elements in order. The cursor is restored to where it
// was before the traversal.
func ToSlice[E any](l List[E]) []E {
	pos := l.CurrPos()
	out := make([]E, 0, l.Length())

	l.MoveToStart()
	for i := 0; i < l.Length(); i++ {
		v, err := l.GetValue()
		if err != nil {
			break
		}
		out = append(out, v)
		l.Next()
	}

	_ = l.MoveToPos(pos)
	return out
}

// AppendAll appends every item in order. The cursor is unaffected.
func AppendAll[E any](l List[E], items ...E) {
	for _, item := range items {
		l.Append(item)
	}
}

// Filter returns the elements for which fn is true, in order.
func Filter[E any](l List[E], fn func(E) bool) []E {
	return util.Filter(ToSlice(l), fn)
}

// Map returns fn applied to each element, in order.
func Map[E, V any](l List[E], fn func(E) V) []V {
	return util.MapN(ToSlice(l), func(e E) (V, error) {
		return fn(e), nil
	})
}

// Distinct returns the elements with duplicates dropped, keeping the first
// occurrence of each value in order.
func Distinct[E comparable](l List[E]) []E {
	seen := mapset.NewSet[E]()
	return util.Filter(ToSlice(l), func(e E) bool {
		return seen.Add(e)
	})
}

// Dump renders the list contents for debugging.
func Dump[E any](l List[E]) string {
	return litter.Sdump(ToSlice(l))
}
