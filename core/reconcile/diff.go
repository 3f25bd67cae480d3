package reconcile

import "cmp"

// SortedDiff walks two sorted, de-duplicated slices and returns the elements
// found only in a (to add) and only in b (to remove).
// Both inputs must be sorted under the same order; unsorted input yields
// meaningless output rather than an error.
func SortedDiff[T cmp.Ordered](a, b []T) (onlyA, onlyB []T) {
	onlyA = []T{}
	onlyB = []T{}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp.Compare(a[i], b[j]); {
		case c < 0:
			onlyA = append(onlyA, a[i])
			i++
		case c > 0:
			onlyB = append(onlyB, b[j])
			j++
		default:
			i++
			j++
		}
	}
	onlyA = append(onlyA, a[i:]...)
	onlyB = append(onlyB, b[j:]...)

	return onlyA, onlyB
}
