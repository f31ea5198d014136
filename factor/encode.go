package factor

// encodeAssignment renders an assignment as its canonical table key: one
// byte per position, 'T' for true and 'F' for false, in argument order.
func encodeAssignment(c Assignment) string {
	buf := make([]byte, len(c))
	for i, v := range c {
		if v {
			buf[i] = 'T'
		} else {
			buf[i] = 'F'
		}
	}

	return string(buf)
}

// decodeAssignment inverts encodeAssignment.
func decodeAssignment(key string) Assignment {
	c := make(Assignment, len(key))
	for i := 0; i < len(key); i++ {
		c[i] = key[i] == 'T'
	}

	return c
}

// Assignments returns the canonical, deterministic enumeration of every
// complete assignment over n Boolean positions: the full Cartesian product
// of {true, false}^n in standard lexicographic order (true before false at
// each position), reversed as a whole so the first assignment is all-false
// and the last is all-true. Every package that walks assignments (bucket
// construction, configuration recording, swap-set enumeration, corpus
// generation) calls this function rather than re-deriving the order, so the
// "first match wins" tie-breaks in the oracle and the DEFT search tree stay
// reproducible across packages and runs.
func Assignments(n int) []Assignment {
	if n <= 0 {
		return nil
	}

	total := 1 << uint(n)
	out := make([]Assignment, total)
	for i := 0; i < total; i++ {
		c := make(Assignment, n)
		for pos := 0; pos < n; pos++ {
			// Position 0 is the most-significant bit of the lexicographic
			// index; true sorts before false, so bit==0 means true.
			bit := (i >> uint(n-1-pos)) & 1
			c[pos] = bit == 0
		}
		out[i] = c
	}

	// Reverse the whole product so the enumeration starts at all-false.
	for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
