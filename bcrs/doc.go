// Package bcrs provides block compressed row storage containers: a block
// sparse [Matrix] whose nonzero entries are small dense blocks, and a block
// [Vector].
//
// A Matrix is built row-wise. After [Matrix.SetSize] every block row is
// declared in order with [Matrix.BuildRow], giving its ascending block
// columns, and [Matrix.EndBuild] completes the pattern. Only then can block
// values be written. This is the protocol the MatrixMarket reader drives.
//
//	m := bcrs.NewMatrix[float64](bcrs.BlockShape{Rows: 2, Cols: 2})
//	_ = m.SetSize(2, 2, 2)
//	_ = m.BuildRow(0, []int{0})
//	_ = m.BuildRow(1, []int{1})
//	_ = m.EndBuild()
//	copy(m.Block(0, 0), []float64{1, 2, 3, 4})
//
// Values of a block are stored row-major in one contiguous slice of all
// blocks. Pattern matrices store no values at all.
package bcrs
