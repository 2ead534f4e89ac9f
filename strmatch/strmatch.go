package strmatch

// Rolling hash parameters for Rabin–Karp.
const (
	rkBase = 256
	rkMod  = 1_000_003
)

// IndexNaive returns the position of the first occurrence of pattern in
// text, or −1, by checking every alignment. Complexity: O(n·m).
func IndexNaive(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}

// IndexAllNaive returns every occurrence position of pattern in text,
// overlapping matches included. An empty pattern matches at each
// position 0..len(text). Complexity: O(n·m).
func IndexAllNaive(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return everyPosition(n)
	}

	var out []int
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			out = append(out, i)
		}
	}
	return out
}

// LPS builds the longest-proper-prefix-which-is-also-suffix table for
// pattern: lps[i] is the length of the longest proper prefix of
// pattern[:i+1] that is also its suffix. Complexity: O(m).
func LPS(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			i++
		}
	}
	return lps
}

// IndexKMP returns the position of the first occurrence of pattern in
// text, or −1, using the Knuth-Morris-Pratt failure table to never
// re-examine text characters. Complexity: O(n + m).
func IndexKMP(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}

	lps := LPS(pattern)
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i - j + 1
		}
	}
	return -1
}

// IndexAllKMP returns every occurrence position of pattern in text,
// overlapping matches included. Complexity: O(n + m).
func IndexAllKMP(text, pattern string) []int {
	if len(pattern) == 0 {
		return everyPosition(len(text))
	}

	lps := LPS(pattern)
	var out []int
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			out = append(out, i-j+1)
			j = lps[j-1]
		}
	}
	return out
}

// IndexRabinKarp returns the position of the first occurrence of
// pattern in text, or −1, comparing rolling hashes and verifying every
// hash hit. Complexity: O(n + m) expected.
func IndexRabinKarp(text, pattern string) int {
	hits := rabinKarp(text, pattern, true)
	if len(hits) == 0 {
		return -1
	}
	return hits[0]
}

// IndexAllRabinKarp returns every occurrence position of pattern in
// text, overlapping matches included. Complexity: O(n + m) expected.
func IndexAllRabinKarp(text, pattern string) []int {
	return rabinKarp(text, pattern, false)
}

// rabinKarp slides a base-256 rolling hash over text and confirms each
// hash match by direct comparison. firstOnly stops at the first hit.
func rabinKarp(text, pattern string, firstOnly bool) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		if firstOnly {
			return []int{0}
		}
		return everyPosition(n)
	}
	if m > n {
		return nil
	}

	// high is rkBase^(m-1) mod rkMod, the weight of the outgoing byte.
	high := 1
	for i := 0; i < m-1; i++ {
		high = high * rkBase % rkMod
	}

	var patHash, winHash int
	for i := 0; i < m; i++ {
		patHash = (patHash*rkBase + int(pattern[i])) % rkMod
		winHash = (winHash*rkBase + int(text[i])) % rkMod
	}

	var out []int
	for i := 0; ; i++ {
		if winHash == patHash && text[i:i+m] == pattern {
			out = append(out, i)
			if firstOnly {
				return out
			}
		}
		if i+m >= n {
			return out
		}
		winHash = (winHash - int(text[i])*high%rkMod + rkMod) % rkMod
		winHash = (winHash*rkBase + int(text[i+m])) % rkMod
	}
}

// ZArray builds the Z-function of s: z[i] is the length of the longest
// substring starting at i that is also a prefix of s, with z[0] = len(s).
// Complexity: O(n).
func ZArray(s string) []int {
	n := len(s)
	z := make([]int, n)
	if n == 0 {
		return z
	}
	z[0] = n

	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

// IndexZ returns the position of the first occurrence of pattern in
// text, or −1, via the Z-function of pattern + "\x00" + text.
// Complexity: O(n + m).
func IndexZ(text, pattern string) int {
	hits := zSearch(text, pattern, true)
	if len(hits) == 0 {
		return -1
	}
	return hits[0]
}

// IndexAllZ returns every occurrence position of pattern in text,
// overlapping matches included. Complexity: O(n + m).
func IndexAllZ(text, pattern string) []int {
	return zSearch(text, pattern, false)
}

func zSearch(text, pattern string, firstOnly bool) []int {
	m := len(pattern)
	if m == 0 {
		if firstOnly {
			return []int{0}
		}
		return everyPosition(len(text))
	}
	if m > len(text) {
		return nil
	}

	z := ZArray(pattern + "\x00" + text)
	var out []int
	for i := m + 1; i < len(z); i++ {
		if z[i] >= m {
			out = append(out, i-m-1)
			if firstOnly {
				return out
			}
		}
	}
	return out
}

// Count returns the number of occurrences of pattern in text,
// overlapping matches included. Complexity: O(n + m).
func Count(text, pattern string) int {
	return len(IndexAllKMP(text, pattern))
}

// everyPosition lists 0..n inclusive, the match set of the empty
// pattern.
func everyPosition(n int) []int {
	out := make([]int, n+1)
	for i := range out {
		out[i] = i
	}
	return out
}
