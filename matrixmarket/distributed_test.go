package matrixmarket

import (
	"context"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-matrixmarket/bcrs"
	"github.com/robert-malhotra/go-matrixmarket/parallel"
)

func readFile(t *testing.T, fs vfs.FS, name string) string {
	t.Helper()
	f, err := fs.Open(name)
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(b)
}

func TestStoreLoad(t *testing.T) {
	fs := vfs.NewMem()
	a := buildMatrix[float64](t, scalar, 2, 2, [][]int{{0, 1}, {1}})
	require.NoError(t, a.Set(0, 1, 8))
	require.NoError(t, StoreMatrix("a.mm", a, WithFS(fs)))
	require.Contains(t, readFile(t, fs, "a.mm"), "\n1 2 8.0\n")

	b := bcrs.NewMatrix[float64](scalar)
	require.NoError(t, LoadMatrix("a.mm", b, WithFS(fs)))
	require.Equal(t, 8.0, b.At(0, 1))

	v, err := bcrs.VectorOf[int](1, 4, 5)
	require.NoError(t, err)
	require.NoError(t, StoreVector("v.mm", v, WithFS(fs)))
	w := bcrs.NewVector[int](1, 0)
	require.NoError(t, LoadVector("v.mm", w, WithFS(fs)))
	require.Equal(t, []int{4, 5}, w.Scalars())

	err = LoadMatrix("missing.mm", b, WithFS(fs))
	require.True(t, errors.Is(err, ErrIO), "%v", err)
	err = StoreVector("no/such/dir/v.mm", v, WithFS(fs))
	require.True(t, errors.Is(err, ErrIO), "%v", err)
}

func TestFilenames(t *testing.T) {
	require.Equal(t, "out/mat_3.mm", BodyFilename("out/mat", 3))
	require.Equal(t, "out/mat_3.idx", IndexFilename("out/mat", 3))
}

func rankIndices(t *testing.T, rank int) *parallel.IndexSet {
	t.Helper()
	s := parallel.NewIndexSet()
	require.NoError(t, s.BeginResize())
	require.NoError(t, s.Add(int64(10*rank), parallel.LocalIndex{Local: 0, Attribute: parallel.Owner, Public: true}))
	require.NoError(t, s.Add(int64(10*rank+1), parallel.LocalIndex{Local: 1, Attribute: parallel.Overlap}))
	require.NoError(t, s.EndResize())
	return s
}

func TestDistributedRoundTrip(t *testing.T) {
	fs := vfs.NewMem()
	logger, hook := debugLogger()

	a := buildMatrix[float64](t, BlockShape{Rows: 2, Cols: 2}, 1, 1, [][]int{{0}})
	copy(a.Block(0, 0), []float64{1, 2, 3, 4})
	dist := Distribution{
		Rank:    1,
		Indices: rankIndices(t, 1),
		Remote:  parallel.NewTopology(0, 2),
	}
	require.NoError(t, StoreDistributed(Matrix(a), "sys", dist, true, WithFS(fs), WithLogger(logger)))
	require.Equal(t, "10 0 1 1\n11 1 2 0\nneighbours: 0 2\n", readFile(t, fs, "sys_1.idx"))

	stored := entriesWithAction(hook, "matrixmarket_store_distributed")
	require.Len(t, stored, 2)
	require.Equal(t, 1, stored[0].Data["rank"])
	require.Equal(t, "sys_1.mm", stored[0].Data["file"])

	b := bcrs.NewMatrix[float64](BlockShape{Rows: 2, Cols: 2})
	topo := parallel.NewTopology()
	loaded := Distribution{Rank: 1, Indices: parallel.NewIndexSet(), Remote: topo}
	require.NoError(t, LoadDistributed(Matrix(b), "sys", loaded, true, WithFS(fs)))
	require.Equal(t, []float64{1, 2, 3, 4}, b.Block(0, 0))
	require.Equal(t, dist.Indices.Records(), loaded.Indices.Records())
	require.Equal(t, []int{0, 2}, topo.Neighbours())
	require.Equal(t, 1, topo.Rebuilds())

	b.Block(0, 0)[0] = 99
	err := LoadDistributed(Matrix(b), "sys", loaded, true, WithFS(fs))
	require.True(t, errors.Is(err, ErrFormat), "%v", err)
	require.Equal(t, []float64{99, 2, 3, 4}, b.Block(0, 0))
	require.Equal(t, 1, topo.Rebuilds())
}

func TestDistributedWithoutIndices(t *testing.T) {
	fs := vfs.NewMem()
	v, err := bcrs.VectorOf[float64](2, 1, 2)
	require.NoError(t, err)
	dist := Distribution{Rank: 0}
	require.NoError(t, StoreDistributed(Vector(v), "x", dist, false, WithFS(fs)))
	_, err = fs.Stat("x_0.idx")
	require.Error(t, err)

	w := bcrs.NewVector[float64](2, 0)
	require.NoError(t, LoadDistributed(Vector(w), "x", dist, false, WithFS(fs)))
	require.Equal(t, []float64{1, 2}, w.Scalars())

	err = LoadDistributed(Vector(w), "x", dist, true, WithFS(fs))
	require.Error(t, err)
}

func TestRanks(t *testing.T) {
	fs := vfs.NewMem()
	const ranks = 4

	var parts []Part
	for r := 0; r < ranks; r++ {
		v, err := bcrs.VectorOf[float64](1, float64(r), float64(r)+0.5)
		require.NoError(t, err)
		parts = append(parts, Part{
			Container: Vector(v),
			Distribution: Distribution{
				Rank:    r,
				Indices: rankIndices(t, r),
				Remote:  parallel.NewTopology((r+1)%ranks, (r+ranks-1)%ranks),
			},
		})
	}
	require.NoError(t, StoreRanks(context.Background(), "p", parts, true, WithFS(fs)))

	var loaded []Part
	var vectors []*bcrs.Vector[float64]
	for r := 0; r < ranks; r++ {
		w := bcrs.NewVector[float64](1, 0)
		vectors = append(vectors, w)
		loaded = append(loaded, Part{
			Container: Vector(w),
			Distribution: Distribution{
				Rank:    r,
				Indices: parallel.NewIndexSet(),
				Remote:  parallel.NewTopology(),
			},
		})
	}
	require.NoError(t, LoadRanks(context.Background(), "p", loaded, true, WithFS(fs)))
	for r, w := range vectors {
		require.Equal(t, []float64{float64(r), float64(r) + 0.5}, w.Scalars())
		require.Equal(t, parts[r].Distribution.Remote.Neighbours(), loaded[r].Distribution.Remote.Neighbours())
		require.Equal(t, 2, loaded[r].Distribution.Indices.Size())
	}

	loaded[2].Distribution.Rank = 9
	err := LoadRanks(context.Background(), "p", loaded, false, WithFS(fs))
	require.True(t, errors.Is(err, ErrIO), "%v", err)

	err = StoreRanks(context.Background(), "p", []Part{parts[0], parts[0]}, false, WithFS(fs))
	require.ErrorContains(t, err, "rank 0 given more than once")
	require.True(t, errors.Is(err, ErrFormat), "%v", err)
}
