// Package search provides Knuth-Morris-Pratt substring search over byte
// slices. For a needle of length k and a haystack of length n, the search
// runs in O(n+k) time using an O(k) backtrack table, scanning the
// haystack exactly once.
package search

// Index returns the offset of the first occurrence of needle in haystack,
// or -1 if haystack does not contain needle. An empty needle matches at
// offset 0.
func Index(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}

	table := backtrackTable(needle)

	match := 0
	cur := 0

	for match+cur < len(haystack) {
		if needle[cur] == haystack[match+cur] {
			if cur == len(needle)-1 {
				return match
			}
			cur++
			continue
		}

		// Mismatch: fall back to the previous partial match, or shift
		// past this position entirely.
		if table[cur] > -1 {
			match = match + cur - table[cur]
			cur = table[cur]
		} else {
			match++
			cur = 0
		}
	}

	return -1
}

// Contains reports whether haystack contains needle.
func Contains(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}

// backtrackTable computes, for each position p in the needle, how far back
// the scan must resume when the character at p fails to match.
func backtrackTable(needle []byte) []int {
	table := make([]int, len(needle))
	table[0] = -1
	if len(needle) == 1 {
		return table
	}
	table[1] = 0

	pos := 2
	cnd := 0
	for pos < len(needle) {
		if needle[pos-1] == needle[cnd] {
			table[pos] = cnd + 1
			cnd++
			pos++
		} else if cnd > 0 {
			cnd = table[cnd]
		} else {
			table[pos] = 0
			pos++
		}
	}
	return table
}
