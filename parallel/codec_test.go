package parallel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

func sampleSet(t *testing.T) *IndexSet {
	t.Helper()
	s := NewIndexSet()
	require.NoError(t, s.BeginResize())
	require.NoError(t, s.Add(0, LocalIndex{Local: 0, Attribute: Owner, Public: true}))
	require.NoError(t, s.Add(7, LocalIndex{Local: 1, Attribute: Overlap, Public: true}))
	require.NoError(t, s.Add(12, LocalIndex{Local: 2, Attribute: Copy}))
	require.NoError(t, s.EndResize())
	return s
}

func TestWriteIndices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndices(&buf, sampleSet(t), NewTopology(3, 1)))
	require.Equal(t, "0 0 1 1\n7 1 2 1\n12 2 0 0\nneighbours: 1 3\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteIndices(&buf, NewIndexSet(), nil))
	require.Equal(t, "neighbours:\n", buf.String())

	resizing := NewIndexSet()
	require.NoError(t, resizing.BeginResize())
	require.True(t, errors.Is(WriteIndices(&buf, resizing, nil), ErrResize))
}

func TestIndicesRoundTrip(t *testing.T) {
	want := sampleSet(t)
	var buf bytes.Buffer
	require.NoError(t, WriteIndices(&buf, want, NewTopology(1, 3)))

	got := NewIndexSet()
	topo := NewTopology()
	require.NoError(t, ReadIndices(&buf, got, topo))
	require.Equal(t, want.Records(), got.Records())
	require.Equal(t, []int{1, 3}, topo.Neighbours())
	require.Equal(t, 1, topo.Rebuilds())
}

func TestReadIndicesToleratesLayout(t *testing.T) {
	in := "7 1 2 1   \n\n 0 0 1 1\nneighbours:\n2\n 4 2\n"
	got := NewIndexSet()
	topo := NewTopology()
	require.NoError(t, ReadIndices(strings.NewReader(in), got, topo))
	require.Equal(t, 2, got.Size())
	require.Equal(t, int64(0), got.Records()[0].Global)
	require.Equal(t, []int{2, 4}, topo.Neighbours())
}

func TestReadIndicesNonEmpty(t *testing.T) {
	set := sampleSet(t)
	topo := NewTopology(9)
	err := ReadIndices(strings.NewReader("neighbours: 1\n"), set, topo)
	require.True(t, errors.Is(err, errs.Format))
	require.Equal(t, 3, set.Size())
	require.Equal(t, []int{9}, topo.Neighbours())
	require.Zero(t, topo.Rebuilds())
}

func TestReadIndicesErrors(t *testing.T) {
	for _, tc := range []struct {
		name, in, msg string
	}{
		{"missing marker", "0 0 1 1\n", `missing "neighbours:" marker`},
		{"empty", "", `missing "neighbours:" marker`},
		{"bad public flag", "0 0 1 2\nneighbours:\n", `line 1: invalid public flag "2"`},
		{"short record", "0 0\nneighbours:\n", "reading attribute"},
		{"bad global", "x 0 1 1\nneighbours:\n", `invalid integer "x"`},
		{"local out of range", "0 18446744073709551615 1 1\nneighbours:\n", "line 1: local index 18446744073709551615 out of range"},
		{"duplicate global", "3 0 1 1\n3 1 1 1\nneighbours:\n", "line 2"},
		{"bad neighbour", "0 0 1 1\nneighbours: 1\n z\n", `line 3: invalid neighbour id "z"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			set := NewIndexSet()
			topo := NewTopology(5)
			err := ReadIndices(strings.NewReader(tc.in), set, topo)
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.Format), "%v", err)
			require.Contains(t, err.Error(), tc.msg)
			require.Zero(t, set.Size())
			require.False(t, set.Resizing())
			require.Equal(t, []int{5}, topo.Neighbours())
		})
	}
}

func TestReadIndicesRebuildFailure(t *testing.T) {
	topo := NewTopology()
	topo.OnRebuild = func([]int) error { return errors.New("boom") }
	err := ReadIndices(strings.NewReader("neighbours: 1\n"), NewIndexSet(), topo)
	require.ErrorContains(t, err, "rebuilding remote indices: boom")
}
