package matrixmarket

import "github.com/robert-malhotra/go-matrixmarket/internal/errs"

// Error classes. Errors caused by the data being read or written, or by
// the underlying file or stream, are marked with one of them; test with
// errors.Is. Errors returned by a container's own methods are passed
// through unchanged. Misuse is reported as an assertion failure, such as
// storing indices without an index set, or as parallel.ErrResize when an
// index set is written during a resize.
var (
	// ErrFormat marks malformed input.
	ErrFormat = errs.Format
	// ErrBanner marks an invalid banner line. Readers recover from it, so
	// it only surfaces from ParseBanner style helpers. Banner errors are
	// also format errors.
	ErrBanner = errs.Banner
	// ErrIO marks failures of the underlying file or stream.
	ErrIO = errs.IO
	// ErrUnsupported marks valid input this package cannot represent.
	ErrUnsupported = errs.Unsupported
)
