package thrift

import "errors"

var (
	// ErrInvalidArgument reports a bad input to a builder method, such as
	// a missing directory or a file without the .thrift extension.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports a violated builder invariant, such as an
	// empty file set at build time or a file outside the thrift path.
	ErrInvalidState = errors.New("invalid state")
)
