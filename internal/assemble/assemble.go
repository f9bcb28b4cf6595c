package assemble

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/robert-malhotra/go-matrixmarket/internal/banner"
	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
	"github.com/sirupsen/logrus"
)

// Sink is the build protocol of a block sparse matrix.
type Sink[T numeric.Scalar] interface {
	// BlockShape returns the scalar extent of one block.
	BlockShape() numeric.BlockShape
	// IsPattern reports whether the matrix stores no values.
	IsPattern() bool
	// SetSize discards any content and prepares a rows x cols block matrix.
	// nonzeros is the expected number of blocks.
	SetSize(rows, cols, nonzeros int) error
	// BuildRow declares the ascending block columns of the next block row.
	BuildRow(row int, cols []int) error
	// EndBuild completes the sparsity pattern.
	EndBuild() error
	// Block returns the row-major values of block (row, col), or nil if the
	// block is not part of the pattern.
	Block(row, col int) []T
}

// Entry is one scalar entry of a row: a column and its value slot.
type Entry[T numeric.Scalar] struct {
	Col  int
	Slot numeric.Slot[T]
}

// Stats summarises an assembly.
type Stats struct {
	Entries    int // entries read from the body
	Duplicates int // entries dropped because their position was already set
	Blocks     int // blocks declared in the sparsity pattern
}

// Assemble reads dims.Entries coordinate entries from s and builds sink.
// Only general structure is supported.
func Assemble[T numeric.Scalar](
	s *scan.Scanner,
	h banner.Header,
	dims banner.Dimensions,
	blocks banner.Blocks,
	sink Sink[T],
	logger logrus.FieldLogger,
) (Stats, error) {
	var stats Stats
	if h.Structure != banner.General {
		return stats, errs.Unsupportedf("%s structure is not implemented, only general is supported", h.Structure)
	}

	// Every entry takes at least a row, a blank and a column.
	if dims.Entries > s.Remaining()/3 {
		return stats, errs.Formatf("line %d: %d entries declared but only %d bytes of input remain",
			s.Line(), dims.Entries, s.Remaining())
	}
	rows, err := collect[T](s, h.Value, dims)
	if err != nil {
		return stats, err
	}
	stats.Entries = dims.Entries
	for r, row := range rows {
		deduped := dedupe(row)
		stats.Duplicates += len(row) - len(deduped)
		rows[r] = deduped
	}
	if stats.Duplicates > 0 {
		logger.WithField("action", "matrixmarket_assemble").
			WithField("duplicates", stats.Duplicates).
			Debug("dropped entries at already populated positions")
	}

	shape := sink.BlockShape()
	if err := sink.SetSize(blocks.Rows, blocks.Cols, blocks.Entries); err != nil {
		return stats, errors.Wrap(err, "sizing matrix")
	}
	if stats.Blocks, err = buildPattern(rows, shape, blocks.Rows, sink); err != nil {
		return stats, err
	}
	if h.Value == numeric.Pattern || sink.IsPattern() {
		return stats, nil
	}
	return stats, fill(rows, shape, sink)
}

// collect is pass 1: read every entry into its scalar row. Only rows that
// hold entries are allocated.
func collect[T numeric.Scalar](s *scan.Scanner, kind numeric.Kind, dims banner.Dimensions) (map[int][]Entry[T], error) {
	rows := make(map[int][]Entry[T])
	tokens := make([]string, kind.Tokens())
	for n := 0; n < dims.Entries; n++ {
		s.SkipComments(nil)
		r, err := s.Uint()
		if err != nil {
			return nil, errors.Wrapf(err, "reading row of entry %d", n+1)
		}
		c, err := s.Uint()
		if err != nil {
			return nil, errors.Wrapf(err, "reading column of entry %d", n+1)
		}
		if r < 1 || r > uint64(dims.Rows) {
			return nil, errs.Formatf("line %d: row index %d out of range [1, %d]", s.Line(), r, dims.Rows)
		}
		if c < 1 || c > uint64(dims.Cols) {
			return nil, errs.Formatf("line %d: column index %d out of range [1, %d]", s.Line(), c, dims.Cols)
		}

		slot := numeric.PatternSlot[T]()
		if kind != numeric.Pattern {
			for i := range tokens {
				if tokens[i], err = s.Token(); err != nil {
					return nil, errs.WrapFormat(err, "line %d: reading value of entry %d", s.Line(), n+1)
				}
			}
			v, err := numeric.Parse[T](kind, tokens)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", s.Line())
			}
			slot = numeric.Numeric(v)
		}
		row := int(r - 1)
		rows[row] = append(rows[row], Entry[T]{Col: int(c - 1), Slot: slot})
	}
	return rows, nil
}

// dedupe orders a row by column and keeps the first entry of each column.
func dedupe[T numeric.Scalar](row []Entry[T]) []Entry[T] {
	slices.SortStableFunc(row, func(a, b Entry[T]) int {
		return cmp.Compare(a.Col, b.Col)
	})
	return slices.CompactFunc(row, func(a, b Entry[T]) bool {
		return a.Col == b.Col
	})
}

// buildPattern is pass 2: declare the block columns of every block row.
func buildPattern[T numeric.Scalar](rows map[int][]Entry[T], shape numeric.BlockShape, blockRows int, sink Sink[T]) (int, error) {
	var total int
	cols := make([]int, 0, 16)
	for i := 0; i < blockRows; i++ {
		cols = cols[:0]
		for r := i * shape.Rows; r < (i+1)*shape.Rows; r++ {
			for _, e := range rows[r] {
				cols = append(cols, e.Col/shape.Cols)
			}
		}
		slices.Sort(cols)
		cols = slices.Compact(cols)
		if err := sink.BuildRow(i, cols); err != nil {
			return total, errors.Wrapf(err, "building block row %d", i)
		}
		total += len(cols)
	}
	if err := sink.EndBuild(); err != nil {
		return total, errors.Wrap(err, "completing sparsity pattern")
	}
	return total, nil
}

// fill is pass 3: copy the values into the blocks.
func fill[T numeric.Scalar](rows map[int][]Entry[T], shape numeric.BlockShape, sink Sink[T]) error {
	for r, row := range rows {
		for _, e := range row {
			v, ok := e.Slot.Value()
			if !ok {
				continue
			}
			block := sink.Block(r/shape.Rows, e.Col/shape.Cols)
			if block == nil {
				return errors.AssertionFailedf("block (%d, %d) missing from pattern", r/shape.Rows, e.Col/shape.Cols)
			}
			block[(r%shape.Rows)*shape.Cols+e.Col%shape.Cols] = v
		}
	}
	return nil
}
