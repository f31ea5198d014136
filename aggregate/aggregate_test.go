package aggregate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/deft/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `instance,n,iseq,type,algo,time
asc-n=4-true,4,true,asc,naive,1.5
asc-n=4-true,4,true,asc,naive,2.5
asc-n=4-true,4,true,asc,deft,0.2
mixed-n=8-p=0.2-false,8,false,mixed,naive,timeout
`

func TestReadCSVParsesRows(t *testing.T) {
	rows, err := aggregate.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "asc-n=4-true", rows[0].Instance)
	assert.Equal(t, 4, rows[0].N)
	assert.True(t, rows[0].ISeq)
	assert.Equal(t, "asc", rows[0].Type)
	assert.Equal(t, "naive", rows[0].Algo)
	assert.Equal(t, "1.5", rows[0].Time)
	assert.True(t, rows[3].IsTimeout())
}

func TestReadCSVRejectsMalformedRow(t *testing.T) {
	_, err := aggregate.ReadCSV(strings.NewReader("instance,n,iseq,type,algo,time\nfoo,notanumber,true,asc,naive,1.0\n"))
	assert.ErrorIs(t, err, aggregate.ErrMalformedRow)
}

func TestGroupPartitionsByKey(t *testing.T) {
	rows, err := aggregate.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	groups := aggregate.Group(rows)
	require.Len(t, groups, 3)
	assert.Len(t, groups[aggregate.GroupKey{N: 4, ISeq: true, Type: "asc", Algo: "naive"}], 2)
	assert.Len(t, groups[aggregate.GroupKey{N: 4, ISeq: true, Type: "asc", Algo: "deft"}], 1)
}

func TestSummarizeComputesStats(t *testing.T) {
	rows, err := aggregate.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	groups := aggregate.Group(rows)

	stats, ok := aggregate.Summarize(groups[aggregate.GroupKey{N: 4, ISeq: true, Type: "asc", Algo: "naive"}])
	require.True(t, ok)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 1.5, stats.Min)
	assert.Equal(t, 2.5, stats.Max)
	assert.Equal(t, 2.0, stats.Mean)
	assert.Equal(t, 2.0, stats.Median)
}

func TestSummarizeDropsGroupsWithTimeout(t *testing.T) {
	rows, err := aggregate.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	groups := aggregate.Group(rows)

	_, ok := aggregate.Summarize(groups[aggregate.GroupKey{N: 8, ISeq: false, Type: "mixed", Algo: "naive"}])
	assert.False(t, ok)
}

func TestSummarizeEmptyGroup(t *testing.T) {
	_, ok := aggregate.Summarize(nil)
	assert.False(t, ok)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	rows, err := aggregate.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, aggregate.WriteCSV(&buf, rows))

	got, err := aggregate.ReadCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("round-tripped rows differ (-want +got):\n%s", diff)
	}
}
