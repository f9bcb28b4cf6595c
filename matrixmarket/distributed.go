package matrixmarket

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/parallel"
)

// Container is a matrix or vector that can be stored and loaded as the
// body of a distributed file pair. Use Matrix or Vector to create one.
type Container interface {
	Traits() Traits
	write(w io.Writer, opts []Option) error
	read(r io.Reader, opts []Option) error
}

// MatrixContainer is a sparse matrix that can be both written and read.
type MatrixContainer[T Scalar] interface {
	MatrixSource[T]
	MatrixSink[T]
}

// VectorContainer is a block vector that can be both written and read.
type VectorContainer[T Scalar] interface {
	VectorSource[T]
	VectorSink[T]
}

// Matrix wraps a sparse matrix as a Container.
func Matrix[T Scalar](m MatrixContainer[T]) Container {
	return matrixContainer[T]{m}
}

// Vector wraps a block vector as a Container.
func Vector[T Scalar](v VectorContainer[T]) Container {
	return vectorContainer[T]{v}
}

type matrixContainer[T Scalar] struct{ m MatrixContainer[T] }

func (c matrixContainer[T]) Traits() Traits { return MatrixTraits[T](c.m) }

func (c matrixContainer[T]) write(w io.Writer, opts []Option) error {
	return WriteMatrix[T](w, c.m, opts...)
}

func (c matrixContainer[T]) read(r io.Reader, opts []Option) error {
	return ReadMatrix[T](r, c.m, opts...)
}

type vectorContainer[T Scalar] struct{ v VectorContainer[T] }

func (c vectorContainer[T]) Traits() Traits { return VectorTraits[T](c.v) }

func (c vectorContainer[T]) write(w io.Writer, opts []Option) error {
	return WriteVector[T](w, c.v, opts...)
}

func (c vectorContainer[T]) read(r io.Reader, opts []Option) error {
	return ReadVector[T](r, c.v, opts...)
}

// Distribution is the parallel index information of one process.
type Distribution struct {
	Rank    int
	Indices *parallel.IndexSet
	Remote  parallel.RemoteIndices
}

// BodyFilename returns the name of the body file of rank.
func BodyFilename(base string, rank int) string {
	return fmt.Sprintf("%s_%d.mm", base, rank)
}

// IndexFilename returns the name of the index file of rank.
func IndexFilename(base string, rank int) string {
	return fmt.Sprintf("%s_%d.idx", base, rank)
}

// StoreDistributed writes the local part of a distributed container to
// BodyFilename(base, rank) and, if storeIndices is set, its index set and
// neighbours to IndexFilename(base, rank).
func StoreDistributed(c Container, base string, dist Distribution, storeIndices bool, opts ...Option) error {
	o := newOptions(opts)
	logger := o.logger.WithField("action", "matrixmarket_store_distributed").
		WithField("rank", dist.Rank)

	body := BodyFilename(base, dist.Rank)
	logger.WithField("file", body).Debug("storing body")
	if err := createFile(o.fs, body, func(w io.Writer) error {
		return c.write(w, opts)
	}); err != nil {
		return errors.Wrapf(err, "rank %d", dist.Rank)
	}
	if !storeIndices {
		return nil
	}
	if dist.Indices == nil {
		return errors.AssertionFailedf("rank %d: storing indices without an index set", dist.Rank)
	}

	idx := IndexFilename(base, dist.Rank)
	logger.WithField("file", idx).Debug("storing indices")
	if err := createFile(o.fs, idx, func(w io.Writer) error {
		return parallel.WriteIndices(w, dist.Indices, dist.Remote)
	}); err != nil {
		return errors.Wrapf(err, "rank %d", dist.Rank)
	}
	return nil
}

// LoadDistributed reads the local part of a distributed container written
// by StoreDistributed. If readIndices is set, the index set of dist, which
// must be empty, is filled from the index file and the remote indices are
// rebuilt. A populated index set is rejected before the container is
// touched.
func LoadDistributed(c Container, base string, dist Distribution, readIndices bool, opts ...Option) error {
	o := newOptions(opts)
	logger := o.logger.WithField("action", "matrixmarket_load_distributed").
		WithField("rank", dist.Rank)

	if readIndices {
		if dist.Indices == nil {
			return errors.AssertionFailedf("rank %d: loading indices without an index set", dist.Rank)
		}
		if n := dist.Indices.Size(); n != 0 || dist.Indices.Resizing() {
			return errs.Formatf("rank %d: index set is not empty (%d records)", dist.Rank, n)
		}
	}

	body := BodyFilename(base, dist.Rank)
	logger.WithField("file", body).Debug("loading body")
	if err := openFile(o.fs, body, func(r io.Reader) error {
		return c.read(r, opts)
	}); err != nil {
		return errors.Wrapf(err, "rank %d", dist.Rank)
	}
	if !readIndices {
		return nil
	}

	idx := IndexFilename(base, dist.Rank)
	logger.WithField("file", idx).Debug("loading indices")
	if err := openFile(o.fs, idx, func(r io.Reader) error {
		return parallel.ReadIndices(r, dist.Indices, dist.Remote)
	}); err != nil {
		return errors.Wrapf(err, "rank %d", dist.Rank)
	}
	return nil
}

// Part is the container and distribution of one rank.
type Part struct {
	Container    Container
	Distribution Distribution
}

// StoreRanks stores several ranks concurrently, one goroutine each. The
// first failure cancels the ranks that have not started yet.
func StoreRanks(ctx context.Context, base string, parts []Part, storeIndices bool, opts ...Option) error {
	return eachPart(ctx, parts, func(p Part) error {
		return StoreDistributed(p.Container, base, p.Distribution, storeIndices, opts...)
	})
}

// LoadRanks loads several ranks concurrently, one goroutine each.
func LoadRanks(ctx context.Context, base string, parts []Part, readIndices bool, opts ...Option) error {
	return eachPart(ctx, parts, func(p Part) error {
		return LoadDistributed(p.Container, base, p.Distribution, readIndices, opts...)
	})
}

func eachPart(ctx context.Context, parts []Part, fn func(Part) error) error {
	seen := make(map[int]struct{}, len(parts))
	for _, p := range parts {
		if _, ok := seen[p.Distribution.Rank]; ok {
			return errs.Formatf("matrixmarket: rank %d given more than once", p.Distribution.Rank)
		}
		seen[p.Distribution.Rank] = struct{}{}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(p)
		})
	}
	return g.Wait()
}
