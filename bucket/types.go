package bucket

// Signature is a bucket's Hamming signature: the number of true and false
// entries in an assignment. Stored as a 2-tuple (rather than just NumTrue)
// to leave room for an eventual non-Boolean extension.
type Signature struct {
	NumTrue  int
	NumFalse int
}

// of computes the signature of an assignment.
func of(c []bool) Signature {
	var s Signature
	for _, v := range c {
		if v {
			s.NumTrue++
		} else {
			s.NumFalse++
		}
	}

	return s
}
