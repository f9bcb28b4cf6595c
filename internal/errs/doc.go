// Package errs holds the error taxonomy shared by the codec packages.
//
// Every error produced by the codec is marked against one of the sentinels
// below with errors.Mark, so callers can classify failures with errors.Is
// regardless of the message or the amount of wrapping:
//
//	Format       malformed input (bad token, bounds, divisibility, sentinel)
//	Banner       malformed or missing %%MatrixMarket line; also marked Format
//	IO           a file could not be opened, created or written
//	Unsupported  well-formed input the codec cannot represent
//
// The public package re-exports these as ErrFormat, ErrBanner, ErrIO and
// ErrUnsupported.
package errs
