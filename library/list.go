package library

import (
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
)

// Below this segment size the merge sort hands over to insertion sort.
const sortThreshold = 16

// lessThan orders numbers across int/float and strings lexically; any other
// pairing is considered unordered.
func lessThan(a, b object.Object) bool {
	switch av := a.(type) {
	case *object.Integer:
		switch bv := b.(type) {
		case *object.Integer:
			return av.Value < bv.Value
		case *object.Float:
			return float64(av.Value) < bv.Value
		}
	case *object.Float:
		switch bv := b.(type) {
		case *object.Float:
			return av.Value < bv.Value
		case *object.Integer:
			return av.Value < float64(bv.Value)
		}
	case *object.String:
		if bv, ok := b.(*object.String); ok {
			return av.Value < bv.Value
		}
	}
	return false
}

func insertionSort(items []object.Object, left, right int) {
	for i := left + 1; i <= right; i++ {
		key := items[i]
		j := i - 1
		for j >= left && lessThan(key, items[j]) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

func mergeRuns(items []object.Object, l, m, r int) {
	left := make([]object.Object, m-l+1)
	right := make([]object.Object, r-m)
	copy(left, items[l:m+1])
	copy(right, items[m+1:r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		// Stable: the left run wins ties.
		if !lessThan(right[j], left[i]) {
			items[k] = left[i]
			i++
		} else {
			items[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		items[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		items[k] = right[j]
		j++
		k++
	}
}

func hybridSort(items []object.Object, l, r int) {
	if l >= r {
		return
	}
	if r-l < sortThreshold {
		insertionSort(items, l, r)
		return
	}
	m := l + (r-l)/2
	hybridSort(items, l, m)
	hybridSort(items, m+1, r)
	mergeRuns(items, l, m, r)
}

// sort orders the list in place.
func libSort(args []object.Object) object.Object {
	if len(args) != 1 {
		report.Hint(report.Argument, report.CurrentLine(), 0,
			"Usage: sort(myList)", "sort() expects 1 list")
		return object.NULL
	}
	list, ok := args[0].(*object.List)
	if !ok {
		report.Hint(report.Argument, report.CurrentLine(), 0,
			"Usage: sort(myList)", "sort() expects 1 list")
		return object.NULL
	}
	if len(list.Elements) > 1 {
		hybridSort(list.Elements, 0, len(list.Elements)-1)
	}
	return object.NULL
}

// shuffle is a Fisher-Yates pass over the shared random generator, in
// place.
func libShuffle(args []object.Object) object.Object {
	if len(args) != 1 {
		report.Hint(report.Argument, report.CurrentLine(), 0,
			"Usage: shuffle(myList)", "shuffle() expects 1 list")
		return object.NULL
	}
	list, ok := args[0].(*object.List)
	if !ok {
		report.Hint(report.Argument, report.CurrentLine(), 0,
			"Usage: shuffle(myList)", "shuffle() expects 1 list")
		return object.NULL
	}
	items := list.Elements
	for i := len(items) - 1; i > 0; i-- {
		j := int(rngNext() % uint64(i+1))
		items[i], items[j] = items[j], items[i]
	}
	return object.NULL
}
