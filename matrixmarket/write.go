package matrixmarket

import (
	"io"
	"strconv"

	"github.com/robert-malhotra/go-matrixmarket/internal/banner"
	"github.com/robert-malhotra/go-matrixmarket/internal/numeric"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
)

// WriteMatrix writes m in coordinate storage. Every scalar of every block
// in the sparsity pattern is written, zeros included, in row-major block
// order.
func WriteMatrix[T Scalar](w io.Writer, m MatrixSource[T], opts ...Option) error {
	o := newOptions(opts)
	t := MatrixTraits(m)
	shape := t.Shape

	sw := scan.NewWriter(w)
	writePreamble(sw, t, o)
	sw.Line(
		strconv.Itoa(m.N()*shape.Rows),
		strconv.Itoa(m.M()*shape.Cols),
		strconv.Itoa(m.NonzeroBlocks()*shape.Size()),
	)

	tokens := make([]string, 0, 4)
	for i := 0; i < m.N(); i++ {
		for _, j := range m.RowPattern(i) {
			block := m.Block(i, j)
			for r := 0; r < shape.Rows; r++ {
				for c := 0; c < shape.Cols; c++ {
					tokens = append(tokens[:0],
						strconv.Itoa(i*shape.Rows+r+1),
						strconv.Itoa(j*shape.Cols+c+1))
					if !t.Pattern {
						tokens = append(tokens, numeric.Format(block[r*shape.Cols+c])...)
					}
					sw.Line(tokens...)
				}
			}
		}
		if sw.Err() != nil {
			break
		}
	}
	return sw.Flush()
}

// WriteVector writes v in array storage, one scalar per line.
func WriteVector[T Scalar](w io.Writer, v VectorSource[T], opts ...Option) error {
	o := newOptions(opts)
	t := VectorTraits(v)

	sw := scan.NewWriter(w)
	writePreamble(sw, t, o)
	sw.Line(strconv.Itoa(v.Len()*v.BlockSize()), "1")
	for i := 0; i < v.Len(); i++ {
		for _, x := range v.Block(i) {
			sw.Line(numeric.Format(x)...)
		}
		if sw.Err() != nil {
			break
		}
	}
	return sw.Flush()
}

func writePreamble(sw *scan.Writer, t Traits, o *options) {
	banner.Write(sw, t.Header())
	if o.blockAnnotation {
		banner.WriteAnnotation(sw, t.Shape)
	}
	for _, c := range o.comments {
		sw.Comment(c)
	}
}
