package aggregate

import "errors"

// Sentinel errors for the aggregate package, prefixed "aggregate: " for
// consistency with the rest of the module.
var (
	// ErrMalformedRow indicates a CSV row does not have the expected
	// instance,n,iseq,type,algo,time column shape.
	ErrMalformedRow = errors.New("aggregate: malformed row")

	// ErrEmptyGroup names the zero-row group case. Summarize does not
	// return it: it reports an empty group as ok=false.
	ErrEmptyGroup = errors.New("aggregate: empty group")
)
