package sorting

// Bubble sorts arr in place by repeatedly swapping adjacent elements
// that are out of order, stopping early once a pass makes no swap.
// Stable. Complexity: O(n²), O(n) on already sorted input.
func Bubble(arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts arr in place by moving the minimum of the unsorted
// suffix to its final position on each pass. Not stable.
// Complexity: O(n²).
func Selection(arr []int) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
		}
	}
}

// Insertion sorts arr in place by growing a sorted prefix one element at
// a time. Stable. Complexity: O(n²), O(n) on nearly sorted input.
func Insertion(arr []int) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}

// Merge sorts arr in place via top-down merge sort with one scratch
// buffer. Stable. Complexity: O(n log n) time, O(n) space.
func Merge(arr []int) {
	if len(arr) < 2 {
		return
	}
	scratch := make([]int, len(arr))
	mergeSort(arr, scratch, 0, len(arr)-1)
}

func mergeSort(arr, scratch []int, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(arr, scratch, lo, mid)
	mergeSort(arr, scratch, mid+1, hi)
	mergeHalves(arr, scratch, lo, mid, hi)
}

// mergeHalves merges the sorted runs arr[lo..mid] and arr[mid+1..hi],
// preferring the left run on ties to keep the sort stable.
func mergeHalves(arr, scratch []int, lo, mid, hi int) {
	copy(scratch[lo:hi+1], arr[lo:hi+1])

	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			arr[k] = scratch[j]
			j++
		case j > hi:
			arr[k] = scratch[i]
			i++
		case scratch[i] <= scratch[j]:
			arr[k] = scratch[i]
			i++
		default:
			arr[k] = scratch[j]
			j++
		}
	}
}

// Quick sorts arr in place using Lomuto partitioning with the last
// element as pivot. Not stable. Complexity: O(n log n) average, O(n²)
// worst case on adversarial input.
func Quick(arr []int) {
	quickSort(arr, 0, len(arr)-1)
}

func quickSort(arr []int, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(arr, lo, hi)
	quickSort(arr, lo, p-1)
	quickSort(arr, p+1, hi)
}

// partition places arr[hi] into its sorted position and returns that
// position; everything left of it is smaller, everything right is not.
func partition(arr []int, lo, hi int) int {
	pivot := arr[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if arr[j] < pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[hi] = arr[hi], arr[i]
	return i
}

// QuickMedian sorts arr in place like Quick but picks the pivot as the
// median of the first, middle and last elements, which defuses the
// sorted-input worst case. Complexity: O(n log n) average.
func QuickMedian(arr []int) {
	quickSortMedian(arr, 0, len(arr)-1)
}

func quickSortMedian(arr []int, lo, hi int) {
	if lo >= hi {
		return
	}
	medianOfThree(arr, lo, hi)
	p := partition(arr, lo, hi)
	quickSortMedian(arr, lo, p-1)
	quickSortMedian(arr, p+1, hi)
}

// medianOfThree moves the median of arr[lo], arr[mid], arr[hi] into
// arr[hi] so partition can use it as pivot.
func medianOfThree(arr []int, lo, hi int) {
	mid := lo + (hi-lo)/2
	if arr[mid] < arr[lo] {
		arr[mid], arr[lo] = arr[lo], arr[mid]
	}
	if arr[hi] < arr[lo] {
		arr[hi], arr[lo] = arr[lo], arr[hi]
	}
	if arr[mid] < arr[hi] {
		arr[mid], arr[hi] = arr[hi], arr[mid]
	}
}

// Heap sorts arr in place by building a max-heap and repeatedly swapping
// the root behind the shrinking heap boundary. Not stable.
// Complexity: O(n log n), O(1) extra space.
func Heap(arr []int) {
	n := len(arr)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(arr, i, n)
	}
	for end := n - 1; end > 0; end-- {
		arr[0], arr[end] = arr[end], arr[0]
		siftDown(arr, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within arr[:n].
func siftDown(arr []int, i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && arr[left] > arr[largest] {
			largest = left
		}
		if right < n && arr[right] > arr[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		arr[i], arr[largest] = arr[largest], arr[i]
		i = largest
	}
}

// Counting sorts arr in place by tallying value occurrences. Negative
// values are handled by offsetting against the minimum.
// Complexity: O(n + k) for value range k.
func Counting(arr []int) {
	if len(arr) < 2 {
		return
	}

	lo, hi := arr[0], arr[0]
	for _, v := range arr[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts := make([]int, hi-lo+1)
	for _, v := range arr {
		counts[v-lo]++
	}

	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			arr[i] = v + lo
			i++
		}
	}
}

// Shell sorts arr in place using the n/2 gap sequence, an insertion
// sort generalized across shrinking gaps. Not stable.
// Complexity: O(n log² n) for this gap sequence.
func Shell(arr []int) {
	n := len(arr)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			key := arr[i]
			j := i
			for ; j >= gap && arr[j-gap] > key; j -= gap {
				arr[j] = arr[j-gap]
			}
			arr[j] = key
		}
	}
}

// QuickSelect returns the kth smallest element of arr (1-indexed)
// without fully sorting, partially reordering arr in the process.
// Reports ok=false when k is out of range.
// Complexity: O(n) average, O(n²) worst case.
func QuickSelect(arr []int, k int) (int, bool) {
	if k < 1 || k > len(arr) {
		return 0, false
	}

	lo, hi, target := 0, len(arr)-1, k-1
	for {
		if lo == hi {
			return arr[lo], true
		}
		p := partition(arr, lo, hi)
		switch {
		case p == target:
			return arr[p], true
		case p < target:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// IsSorted reports whether arr is in ascending order. Empty and
// single-element slices are sorted. Complexity: O(n).
func IsSorted(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

// IsSortedDesc reports whether arr is in descending order.
// Complexity: O(n).
func IsSortedDesc(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] < arr[i] {
			return false
		}
	}
	return true
}
