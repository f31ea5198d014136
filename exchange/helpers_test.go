package exchange_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/deft/factor"
	"github.com/stretchr/testify/require"
)

// buildFactor constructs a Factor from a compact table literal: keys are
// "T"/"F" strings (e.g. "TFT") in argument order, values are potentials.
// names gives the argument DRV names, in order.
func buildFactor(t *testing.T, name string, names []string, table map[string]float64) *factor.Factor {
	t.Helper()

	args := make([]factor.DRV, len(names))
	for i, n := range names {
		args[i] = factor.DRV{Name: n}
	}

	entries := make([]factor.Entry, 0, len(table))
	for key, v := range table {
		c := make(factor.Assignment, len(key))
		for i := 0; i < len(key); i++ {
			c[i] = key[i] == 'T'
		}
		entries = append(entries, factor.Entry{Assignment: c, Potential: v})
	}

	f, err := factor.New(name, args, entries)
	require.NoError(t, err)

	return f
}

// buildFromPotentials constructs an n-ary Factor whose potentials are
// assigned to factor.Assignments(n) positionally, in order. Used by the
// property-based tests, where potentials are generated rather than spelled
// out literally.
func buildFromPotentials(name string, n int, potentials []float64) *factor.Factor {
	args := make([]factor.DRV, n)
	for i := 0; i < n; i++ {
		args[i] = factor.DRV{Name: fmt.Sprintf("R%d", i)}
	}

	assignments := factor.Assignments(n)
	entries := make([]factor.Entry, len(assignments))
	for i, c := range assignments {
		entries[i] = factor.Entry{Assignment: c, Potential: potentials[i%len(potentials)]}
	}

	f, err := factor.New(name, args, entries)
	if err != nil {
		panic(err)
	}

	return f
}

// permFromKeys derives a permutation of [0, len(keys)) by the stable
// argsort of keys. Used to turn gopter-generated integer slices into
// pseudo-random permutations without depending on gopter's internal RNG
// plumbing.
func permFromKeys(keys []int) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })

	return idx
}
