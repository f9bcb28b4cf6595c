package matrixmarket

import (
	"io"

	"github.com/cockroachdb/pebble/vfs"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

// StoreMatrix writes m to the file at path, replacing it.
func StoreMatrix[T Scalar](path string, m MatrixSource[T], opts ...Option) error {
	return createFile(newOptions(opts).fs, path, func(w io.Writer) error {
		return WriteMatrix(w, m, opts...)
	})
}

// StoreVector writes v to the file at path, replacing it.
func StoreVector[T Scalar](path string, v VectorSource[T], opts ...Option) error {
	return createFile(newOptions(opts).fs, path, func(w io.Writer) error {
		return WriteVector(w, v, opts...)
	})
}

// LoadMatrix reads the file at path into m.
func LoadMatrix[T Scalar](path string, m MatrixSink[T], opts ...Option) error {
	return openFile(newOptions(opts).fs, path, func(r io.Reader) error {
		return ReadMatrix(r, m, opts...)
	})
}

// LoadVector reads the file at path into v.
func LoadVector[T Scalar](path string, v VectorSink[T], opts ...Option) error {
	return openFile(newOptions(opts).fs, path, func(r io.Reader) error {
		return ReadVector(r, v, opts...)
	})
}

// createFile runs fn on a new file and closes it. The file is synced
// before it is closed.
func createFile(fs vfs.FS, path string, fn func(io.Writer) error) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return errs.WrapIO(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.WrapIO(cerr, "closing %s", path)
		}
	}()
	if err := fn(f); err != nil {
		return err
	}
	return errs.WrapIO(f.Sync(), "syncing %s", path)
}

func openFile(fs vfs.FS, path string, fn func(io.Reader) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return errs.WrapIO(err, "opening %s", path)
	}
	defer f.Close()
	return fn(f)
}
