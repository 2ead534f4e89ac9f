package searching

// Linear scans arr left to right and returns the index of the first
// element equal to target, or −1. Works on unsorted input.
// Complexity: O(n).
func Linear(arr []int, target int) int {
	for i, v := range arr {
		if v == target {
			return i
		}
	}
	return -1
}

// Binary returns the index of target in the ascending arr, or −1.
// With duplicates any matching index may be returned.
// Complexity: O(log n).
func Binary(arr []int, target int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// BinaryRecursive is Binary expressed as a recursion over the halved
// range. Complexity: O(log n) time and stack.
func BinaryRecursive(arr []int, target int) int {
	return binaryRec(arr, target, 0, len(arr)-1)
}

func binaryRec(arr []int, target, lo, hi int) int {
	if lo > hi {
		return -1
	}
	mid := lo + (hi-lo)/2
	switch {
	case arr[mid] == target:
		return mid
	case arr[mid] < target:
		return binaryRec(arr, target, mid+1, hi)
	default:
		return binaryRec(arr, target, lo, mid-1)
	}
}

// LowerBound returns the index of the first element >= target, or
// len(arr) when every element is smaller. Complexity: O(log n).
func LowerBound(arr []int, target int) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the index of the first element > target, or
// len(arr) when no element exceeds it. Complexity: O(log n).
func UpperBound(arr []int, target int) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// FindFirst returns the index of the first occurrence of target in the
// ascending arr, or −1. Complexity: O(log n).
func FindFirst(arr []int, target int) int {
	i := LowerBound(arr, target)
	if i < len(arr) && arr[i] == target {
		return i
	}
	return -1
}

// FindLast returns the index of the last occurrence of target in the
// ascending arr, or −1. Complexity: O(log n).
func FindLast(arr []int, target int) int {
	i := UpperBound(arr, target) - 1
	if i >= 0 && arr[i] == target {
		return i
	}
	return -1
}

// CountOccurrences returns how many times target appears in the
// ascending arr. Complexity: O(log n).
func CountOccurrences(arr []int, target int) int {
	return UpperBound(arr, target) - LowerBound(arr, target)
}

// SearchInsert returns the index where target should be inserted to
// keep arr ascending; equal elements insert before their run.
// Complexity: O(log n).
func SearchInsert(arr []int, target int) int {
	return LowerBound(arr, target)
}

// SearchRotated returns the index of target in an ascending array that
// has been rotated at an unknown pivot, or −1. Assumes distinct
// elements. Complexity: O(log n).
func SearchRotated(arr []int, target int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if arr[mid] == target {
			return mid
		}
		if arr[lo] <= arr[mid] { // left half is in order
			if arr[lo] <= target && target < arr[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else { // right half is in order
			if arr[mid] < target && target <= arr[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return -1
}

// FindRotationPoint returns the index of the minimum element of a
// rotated ascending array with distinct elements; 0 for an unrotated
// or empty array. Complexity: O(log n).
func FindRotationPoint(arr []int) int {
	lo, hi := 0, len(arr)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] > arr[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// FindPeak returns the index of some element strictly greater than its
// neighbors, assuming adjacent elements differ. Boundary elements need
// only beat their single neighbor. Returns −1 for an empty array.
// Complexity: O(log n).
func FindPeak(arr []int) int {
	if len(arr) == 0 {
		return -1
	}
	lo, hi := 0, len(arr)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] < arr[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
