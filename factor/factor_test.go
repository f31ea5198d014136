package factor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/deft/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkS1F1(t *testing.T) *factor.Factor {
	t.Helper()
	args := []factor.DRV{{Name: "R1"}, {Name: "R2"}}
	entries := []factor.Entry{
		{Assignment: factor.Assignment{true, true}, Potential: 1},
		{Assignment: factor.Assignment{true, false}, Potential: 2},
		{Assignment: factor.Assignment{false, true}, Potential: 3},
		{Assignment: factor.Assignment{false, false}, Potential: 4},
	}
	f, err := factor.New("F1", args, entries)
	require.NoError(t, err)

	return f
}

func TestNewRejectsEmptyArgs(t *testing.T) {
	_, err := factor.New("empty", nil, nil)
	assert.ErrorIs(t, err, factor.ErrEmptyArgs)
}

func TestArityAndRVs(t *testing.T) {
	f := mkS1F1(t)
	assert.Equal(t, 2, f.Arity())
	assert.Equal(t, []factor.DRV{{Name: "R1"}, {Name: "R2"}}, f.RVs())
}

func TestPotentialMissingIsNaN(t *testing.T) {
	f := mkS1F1(t)
	assert.True(t, math.IsNaN(f.Potential(factor.Assignment{true})))
}

func TestIsValidCompleteTable(t *testing.T) {
	f := mkS1F1(t)
	assert.True(t, f.IsValid())
}

func TestIsValidIncompleteTable(t *testing.T) {
	args := []factor.DRV{{Name: "R1"}, {Name: "R2"}}
	entries := []factor.Entry{
		{Assignment: factor.Assignment{true, true}, Potential: 1},
	}
	f, err := factor.New("partial", args, entries)
	require.NoError(t, err)
	assert.False(t, f.IsValid())
}

func TestDeepCopyIsIndependent(t *testing.T) {
	f := mkS1F1(t)
	cp := f.DeepCopy()
	require.NoError(t, cp.PermuteInPlace([]int{1, 0}))

	assert.True(t, f.Equal(mkS1F1(t)), "original must be untouched by copy mutation")
	assert.False(t, cp.Equal(f))
}

func TestEqualReflexive(t *testing.T) {
	f := mkS1F1(t)
	assert.True(t, f.Equal(mkS1F1(t)))
}

// TestPermuteInPlaceMatchesS2 swaps R1,R2 and checks the table rewrites into
// the expected transposed form.
func TestPermuteInPlaceMatchesS2(t *testing.T) {
	f := mkS1F1(t)
	require.NoError(t, f.PermuteInPlace([]int{1, 0}))

	assert.Equal(t, []factor.DRV{{Name: "R2"}, {Name: "R1"}}, f.RVs())
	assert.Equal(t, 1.0, f.Potential(factor.Assignment{true, true}))
	assert.Equal(t, 2.0, f.Potential(factor.Assignment{false, true}))
	assert.Equal(t, 3.0, f.Potential(factor.Assignment{true, false}))
	assert.Equal(t, 4.0, f.Potential(factor.Assignment{false, false}))
}

func TestPermuteInPlaceIdempotentWithInverse(t *testing.T) {
	f := mkS1F1(t)
	orig := f.DeepCopy()
	perm := []int{1, 0}

	require.NoError(t, f.PermuteInPlace(perm))
	require.NoError(t, f.PermuteInPlace(factor.Inverse(perm)))

	assert.True(t, f.Equal(orig))
}

func TestPermuteInPlaceRejectsBadPermutation(t *testing.T) {
	f := mkS1F1(t)
	assert.ErrorIs(t, f.PermuteInPlace([]int{0, 0}), factor.ErrBadPermutation)
	assert.ErrorIs(t, f.PermuteInPlace([]int{0}), factor.ErrBadPermutation)
}

func TestAssignmentsCanonicalOrder(t *testing.T) {
	got := factor.Assignments(2)
	want := []factor.Assignment{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}
	assert.Equal(t, want, got)
}

func TestRVPosAbsentIsMinusOne(t *testing.T) {
	f := mkS1F1(t)
	assert.Equal(t, 0, factor.RVPos(f, "R1"))
	assert.Equal(t, -1, factor.RVPos(f, "nope"))
}
