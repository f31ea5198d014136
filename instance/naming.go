// File: naming.go
// Role: corpus file-naming scheme.
package instance

import "fmt"

// Name renders the corpus naming scheme:
//
//	asc-n=NN-ISEQ, same-n=NN-ISEQ, mixed-n=NN-p=PPP-ISEQ
//
// where NN is the arity, ISEQ is "true"/"false", and PPP is p formatted
// with its significant decimals (only used for KindMixed).
func Name(n int, iseq bool, kind Kind, p float64) string {
	switch kind {
	case KindMixed:
		return fmt.Sprintf("mixed-n=%d-p=%g-%t", n, p, iseq)
	default:
		return fmt.Sprintf("%s-n=%d-%t", kind, n, iseq)
	}
}
