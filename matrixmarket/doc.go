// Package matrixmarket reads and writes block sparse matrices and block
// vectors in the MatrixMarket exchange format.
//
// Matrices are written in coordinate storage, vectors in array storage.
// Blocks are flattened to scalar entries; a "% blocked r c" comment after
// the banner records the block shape so that a reader can check it against
// its destination. Reading is tolerant of a missing or malformed banner:
// the default header is assumed and a warning is logged.
//
// Any container works as long as it implements the small build and access
// interfaces below; package bcrs provides ready made ones.
//
//	m := bcrs.NewMatrix[float64](bcrs.BlockShape{Rows: 2, Cols: 2})
//	if err := matrixmarket.LoadMatrix("a.mm", m); err != nil {
//		return err
//	}
//
// Distributed containers are stored as one body file plus one index file
// per process; see StoreDistributed and package parallel.
package matrixmarket
