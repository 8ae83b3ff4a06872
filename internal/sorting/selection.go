package sorting

// SelectionSort - Sorts data in ascending order in place.
// For each position it scans the rest of the slice for the smallest element and swaps it into place, O(n^2).
func SelectionSort(data []int) {
	for i := 0; i < len(data)-1; i++ {
		swapIndex := i
		for j := i + 1; j < len(data); j++ {
			if data[j] < data[swapIndex] {
				swapIndex = j
			}
		}
		data[i], data[swapIndex] = data[swapIndex], data[i]
	}
}
