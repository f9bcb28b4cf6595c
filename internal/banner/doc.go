// Package banner parses and renders the header of a MatrixMarket file: the
// %%MatrixMarket banner line, the comment block and the dimension line.
//
// The banner is optional. Many producers write the dimension line first, so
// [Read] falls back to a default [Header] and rewinds the input when
// [ParseBanner] fails. That fallback is the only error the package recovers
// from; a malformed dimension line always fails.
//
// [CalculateNNZ] derives block level dimensions and the block entry count
// from the scalar dimensions, the block shape and the structure kind.
package banner
