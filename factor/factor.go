// File: factor.go
// Role: construction, accessors, validity, equality, and deep copy for Factor.
package factor

import "math"

// New builds a Factor from name, an ordered argument list, and a list of
// (assignment, potential) entries. Duplicate assignments are not expected;
// when they occur, last write wins.
//
// Complexity: O(len(entries) * n) for key encoding.
func New(name string, args []DRV, entries []Entry) (*Factor, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}

	f := &Factor{
		name:  name,
		args:  append([]DRV(nil), args...),
		table: make(map[string]float64, len(entries)),
	}
	for _, e := range entries {
		f.table[encodeAssignment(e.Assignment)] = e.Potential
	}

	return f, nil
}

// Name returns the factor's identifying name.
func (f *Factor) Name() string { return f.name }

// Arity returns the number of arguments (n).
func (f *Factor) Arity() int { return len(f.args) }

// RVs returns the ordered argument list. Callers must not mutate the
// returned slice; it aliases the factor's internal state.
func (f *Factor) RVs() []DRV { return f.args }

// Potential returns the potential at assignment c, or NaN if c is not a key
// of the table. Callers must treat NaN as "no match".
func (f *Factor) Potential(c Assignment) float64 {
	v, ok := f.table[encodeAssignment(c)]
	if !ok {
		return math.NaN()
	}

	return v
}

// IsValid reports whether every one of the 2^n canonical assignments is
// present in the table.
//
// Complexity: O(2^n).
func (f *Factor) IsValid() bool {
	n := f.Arity()
	if n == 0 {
		return false
	}
	if len(f.table) < (1 << uint(n)) {
		return false
	}
	for _, c := range Assignments(n) {
		if _, ok := f.table[encodeAssignment(c)]; !ok {
			return false
		}
	}

	return true
}

// DeepCopy returns an independent copy of f: a fresh argument slice and a
// fresh table map, so mutating the copy (e.g. via PermuteInPlace) never
// affects f.
func (f *Factor) DeepCopy() *Factor {
	cp := &Factor{
		name:  f.name,
		args:  append([]DRV(nil), f.args...),
		table: make(map[string]float64, len(f.table)),
	}
	for k, v := range f.table {
		cp.table[k] = v
	}

	return cp
}

// Equal reports structural equality: same name, same argument sequence (in
// order, by name), and the same table (key-for-key, exact float equality).
func (f *Factor) Equal(other *Factor) bool {
	if other == nil {
		return false
	}
	if f.name != other.name {
		return false
	}
	if len(f.args) != len(other.args) {
		return false
	}
	for i := range f.args {
		if f.args[i].Name != other.args[i].Name {
			return false
		}
	}
	if len(f.table) != len(other.table) {
		return false
	}
	for k, v := range f.table {
		ov, ok := other.table[k]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// RVPos returns the index of the DRV named name in f's argument list, or -1
// if absent. No caller inside factor, bucket, exchange, or instance relies
// on the -1 value; it exists for parity.
func RVPos(f *Factor, name string) int {
	for i, d := range f.args {
		if d.Name == name {
			return i
		}
	}

	return -1
}
