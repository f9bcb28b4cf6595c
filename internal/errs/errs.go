package errs

import "github.com/cockroachdb/errors"

// Sentinels. Compare with errors.Is.
var (
	Format      = errors.New("matrixmarket: format error")
	Banner      = errors.New("matrixmarket: invalid banner")
	IO          = errors.New("matrixmarket: i/o error")
	Unsupported = errors.New("matrixmarket: unsupported feature")
)

// Formatf returns a new error marked as a format error.
func Formatf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), Format)
}

// Bannerf returns a new error marked both as a banner and a format error.
func Bannerf(format string, args ...interface{}) error {
	return errors.Mark(Formatf(format, args...), Banner)
}

// Unsupportedf returns a new error marked as an unsupported feature.
func Unsupportedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), Unsupported)
}

// WrapIO wraps err with the given context and marks it as an i/o error.
// It returns nil if err is nil.
func WrapIO(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), IO)
}

// WrapFormat wraps err with the given context and marks it as a format error.
// It returns nil if err is nil.
func WrapFormat(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), Format)
}
