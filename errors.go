package gamebryo

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrInvalidHeader is returned when a file's magic does not match any
// known Gamebryo savegame format.
var ErrInvalidHeader = errors.New("invalid file header")

// IOError reports a failure to open the savegame file, with the
// original syscall name, path and errno attached so a caller can
// reconstruct a system-level diagnostic.
type IOError struct {
	Syscall string
	Path    string
	Errno   syscall.Errno
	err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Syscall, e.Path, e.Errno)
}

func (e *IOError) Unwrap() error { return e.err }

// newIOError wraps an error returned by an os file operation, recovering
// the syscall name and errno from the underlying *fs.PathError when
// possible.
func newIOError(path string, err error) error {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		var errno syscall.Errno
		errors.As(perr.Err, &errno)
		return &IOError{Syscall: perr.Op, Path: path, Errno: errno, err: err}
	}
	return &IOError{Syscall: "open", Path: path, err: err}
}

// DataInvalidError reports a semantic inconsistency discovered mid
// parse: an out of range dimension, a missing field marker, an
// oversized plugin name, or a decompression failure. Offset is the
// byte position in the active stream at the point of detection.
type DataInvalidError struct {
	Offset int64
	Msg    string
}

func (e *DataInvalidError) Error() string {
	return fmt.Sprintf("data invalid at %d: %s", e.Offset, e.Msg)
}

func dataInvalid(offset int64, format string, args ...any) error {
	return &DataInvalidError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// TruncationError reports that a read, skip or seek ran past the end
// of the underlying byte source.
type TruncationError struct {
	Offset int64
	N      int
	skip   bool
}

func (e *TruncationError) Error() string {
	verb := "read"
	if e.skip {
		verb = "skip"
	}
	return fmt.Sprintf("unexpected end of file at %q (%s of %q bytes)", fmt.Sprint(e.Offset), verb, fmt.Sprint(e.N))
}

func truncated(offset int64, n int) error {
	return &TruncationError{Offset: offset, N: n}
}

func truncatedSkip(offset int64, n int) error {
	return &TruncationError{Offset: offset, N: n, skip: true}
}

// DecodeError reports a screenshot allocation failure or a string that
// could not be decoded under any configured codepage.
type DecodeError struct {
	Msg string
	err error
}

func (e *DecodeError) Error() string { return e.Msg }

func (e *DecodeError) Unwrap() error { return e.err }

func decodeErr(msg string, err error) error {
	return &DecodeError{Msg: msg, err: err}
}
