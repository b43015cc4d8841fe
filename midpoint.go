package orderkey

import "strings"

// pickFunc chooses a digit value strictly between lo and hi, where
// hi-lo > 1.
type pickFunc func(lo, hi int) int

// centerDigit rounds the mean of lo and hi half up.
func centerDigit(lo, hi int) int {
	return (lo + hi + 1) / 2
}

// midpoint returns the shortest digit string strictly between a and b.
// a may be empty. b == "" means there is no upper bound. Neither may end in
// the zero digit.
func midpoint(a, b string, alpha *Alphabet, pick pickFunc) (string, error) {
	if b != "" && a >= b {
		return "", &OrderError{A: a, B: b}
	}
	zero := string(alpha.Zero())
	if strings.HasSuffix(a, zero) {
		return "", keyError(a, ErrTrailingZero)
	}
	if strings.HasSuffix(b, zero) {
		return "", keyError(b, ErrTrailingZero)
	}
	if pick == nil {
		pick = centerDigit
	}
	var sb strings.Builder
	writeMidpoint(&sb, a, b, alpha, pick)
	return sb.String(), nil
}

func writeMidpoint(sb *strings.Builder, a, b string, alpha *Alphabet, pick pickFunc) {
	if b != "" {
		// Drop the longest common prefix. A missing digit in a counts as
		// zero; b cannot run out first because a < b.
		n := 0
		for n < len(b) {
			c := alpha.Zero()
			if n < len(a) {
				c = a[n]
			}
			if c != b[n] {
				break
			}
			n++
		}
		if n > 0 {
			sb.WriteString(b[:n])
			if n > len(a) {
				a = ""
			} else {
				a = a[n:]
			}
			b = b[n:]
		}
	}

	digitA := 0
	if a != "" {
		digitA = alpha.Index(a[0])
	}
	digitB := alpha.Len()
	if b != "" {
		digitB = alpha.Index(b[0])
	}
	if digitB-digitA > 1 {
		sb.WriteByte(alpha.Digit(pick(digitA, digitB)))
		return
	}

	// Consecutive digits. A longer b is already bounded by its first digit.
	if len(b) > 1 {
		sb.WriteByte(b[0])
		return
	}

	// b is absent or a single digit: keep a's digit and look for room
	// after it, e.g. ("49", "5") -> "4" + ("9", "") -> "495".
	sb.WriteByte(alpha.Digit(digitA))
	if a != "" {
		a = a[1:]
	}
	writeMidpoint(sb, a, "", alpha, pick)
}
