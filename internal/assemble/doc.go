// Package assemble turns the coordinate entries of a MatrixMarket body into
// a block sparse matrix.
//
// Block sparse containers are built row by row: the column pattern of a
// block row has to be declared before any value can be stored, while the
// entries of a file may come in any order. Assembly therefore runs in three
// passes:
//
//  1. Collect every scalar entry into an ordered, duplicate free set per
//     scalar row.
//  2. For each block row, union the block columns of its scalar rows and
//     declare them through [Sink.BuildRow].
//  3. Copy each scalar value into its slot inside the declared block.
//
// Pass 3 is skipped for pattern files and pattern containers.
package assemble
