package matrixmarket

import (
	"io"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/sirupsen/logrus"
)

// Option configures reading and writing.
type Option func(*options)

type options struct {
	logger          logrus.FieldLogger
	fs              vfs.FS
	blockAnnotation bool
	comments        []string
}

func defaultOptions() *options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &options{
		logger:          discard,
		fs:              vfs.Default,
		blockAnnotation: true,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for diagnostics such as a replaced banner.
// By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFS sets the filesystem used by the Store and Load helpers.
// The default is the operating system's filesystem.
func WithFS(fs vfs.FS) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithBlockAnnotation controls whether writers record the block shape of
// a blocked container in a comment. Enabled by default.
func WithBlockAnnotation(enabled bool) Option {
	return func(o *options) {
		o.blockAnnotation = enabled
	}
}

// WithComment adds a comment line after the header. Can be given more
// than once.
func WithComment(text string) Option {
	return func(o *options) {
		o.comments = append(o.comments, text)
	}
}
