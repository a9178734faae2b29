// Package derror holds the errors surfaced while decoding and splitting DEX
// files.
package derror

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrHeaderTooShort = errors.New("buffer too short for DEX header")
	ErrInvalidMagic   = errors.New("invalid DEX magic number")
)

type (
	// FormatError means the file is not a readable DEX file. Reason is one of
	// ErrHeaderTooShort or ErrInvalidMagic; Path is empty when decoding a raw
	// buffer.
	FormatError struct {
		Path   string
		Reason error
		Detail string
	}
	// IOError wraps a failing open, read, seek or write.
	IOError struct {
		Op   string
		Path string
		Err  error
	}
)

func (r FormatError) Error() string {
	msg := r.Reason.Error()
	if r.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, r.Detail)
	}
	if r.Path != "" {
		msg = fmt.Sprintf("%s: %s", r.Path, msg)
	}
	return msg
}

func (r FormatError) Unwrap() error {
	return r.Reason
}

func (r IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", r.Op, r.Path, r.Err)
}

func (r IOError) Unwrap() error {
	return r.Err
}

// WithPath returns err with the path attached when err is a FormatError.
func WithPath(err error, path string) error {
	var formatErr FormatError
	if errors.As(err, &formatErr) && formatErr.Path == "" {
		formatErr.Path = path
		return formatErr
	}
	return err
}

func IsFormatError(err error) bool {
	var formatErr FormatError
	return errors.As(err, &formatErr)
}

func IsIOError(err error) bool {
	var ioErr IOError
	return errors.As(err, &ioErr)
}
