package exchange

import "errors"

// Sentinel errors for the exchange package, prefixed "exchange: " for
// consistency with the rest of the module.
var (
	// ErrUnknownAlgorithm is the panic value raised by IsExchangeable when
	// given an Algorithm outside {Naive, Filter, Deft}. This is a
	// programmer error, not a data error: callers at a trust boundary
	// (e.g. cmd/deftrun) must validate the algorithm name before dispatch
	// to turn this into a clean error return instead.
	ErrUnknownAlgorithm = errors.New("exchange: unknown algorithm")
)
