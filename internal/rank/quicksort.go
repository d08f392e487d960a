// Package rank orders scored items with a partition-based sort.
package rank

// Partition splits items into those whose key is less than, equal to, and
// greater than pivot. Each output keeps the relative order of the input and
// is a new slice; items itself is not modified.
func Partition[T any](items []T, pivot float64, key func(T) float64) (less, equal, greater []T) {
	for _, it := range items {
		switch k := key(it); {
		case k < pivot:
			less = append(less, it)
		case k > pivot:
			greater = append(greater, it)
		default:
			equal = append(equal, it)
		}
	}
	return less, equal, greater
}

// segment is a pending range of the output still to be sorted.
type segment[T any] struct {
	items  []T
	offset int
}

// QuickSort returns a new slice holding items in ascending key order.
//
// The pivot is the key of the first item of each segment and items equal to it
// keep their input order. Segments are processed from an explicit stack, so
// already-sorted input costs O(n^2) time but never deep recursion.
func QuickSort[T any](items []T, key func(T) float64) []T {
	out := make([]T, len(items))
	if len(items) == 0 {
		return out
	}

	stack := []segment[T]{{items: items, offset: 0}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(seg.items) == 1 {
			out[seg.offset] = seg.items[0]
			continue
		}

		less, equal, greater := Partition(seg.items, key(seg.items[0]), key)
		mid := seg.offset + len(less)
		copy(out[mid:], equal)

		if len(greater) > 0 {
			stack = append(stack, segment[T]{items: greater, offset: mid + len(equal)})
		}
		if len(less) > 0 {
			stack = append(stack, segment[T]{items: less, offset: seg.offset})
		}
	}
	return out
}
