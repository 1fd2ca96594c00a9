package necklace

// Partitions returns every partition of n as a non-increasing list of
// positive parts. n ≤ 0 gives no partitions.
func Partitions(n int) [][]int {
	var out [][]int
	for m := 1; m <= n; m++ {
		out = append(out, partitionsLargest(n, m)...)
	}

	return out
}

// PartitionsExactParts returns the partitions of n into exactly parts
// parts.
func PartitionsExactParts(n, parts int) [][]int {
	var out [][]int
	for m := 1; m <= n+1-parts; m++ {
		out = append(out, partitionsLargestParts(n, m, parts)...)
	}

	return out
}

// partitionsLargest lists the partitions of n whose largest part is m.
func partitionsLargest(n, m int) [][]int {
	switch {
	case n == 0 && m == 0:
		return [][]int{{}}
	case n == 0, m == 0, m > n:
		return nil
	}
	var out [][]int
	for k := 0; k <= m; k++ {
		for _, rest := range partitionsLargest(n-m, k) {
			out = append(out, append([]int{m}, rest...))
		}
	}

	return out
}

func partitionsLargestParts(n, m, parts int) [][]int {
	switch {
	case n == 0 && m == 0 && parts == 0:
		return [][]int{{}}
	case n == 0, m == 0, parts == 0, m > n, parts > n:
		return nil
	}
	var out [][]int
	for l := 0; l <= m; l++ {
		for _, rest := range partitionsLargestParts(n-m, l, parts-1) {
			out = append(out, append([]int{m}, rest...))
		}
	}

	return out
}
