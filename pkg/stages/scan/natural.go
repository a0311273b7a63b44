package scan

import "strings"

// NaturalLess compares names chunk by chunk, treating runs of ASCII digits as
// numbers so that "img2.png" sorts before "img10.png". Names that compare
// equal that way ("img01" and "img1") fall back to byte order, keeping the
// order total.
func NaturalLess(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ca, na := nextChunk(a, ai)
		cb, nb := nextChunk(b, bi)
		ai, bi = na, nb

		da, db := isDigit(ca[0]), isDigit(cb[0])
		switch {
		case da && db:
			if c := compareNumbers(ca, cb); c != 0 {
				return c < 0
			}
		case da != db:
			// Digits sort before letters, matching byte order.
			return da
		default:
			if ca != cb {
				return ca < cb
			}
		}
	}
	if (ai < len(a)) != (bi < len(b)) {
		return ai >= len(a)
	}
	return a < b
}

func nextChunk(s string, start int) (string, int) {
	digit := isDigit(s[start])
	end := start + 1
	for end < len(s) && isDigit(s[end]) == digit {
		end++
	}
	return s[start:end], end
}

// compareNumbers compares two digit runs by value without parsing, so long
// runs cannot overflow.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
