// Package bucket groups a factor's potential table entries by the Hamming
// signature of their assignment: the pair (#true, #false). This is the
// structural grouping exchangeability search (package exchange) uses both
// as a fast necessary-condition check (bucket multiset equality) and as the
// scaffolding for DEFT's position-swap constraint construction.
package bucket
