package apng

import "errors"

// A FormatError reports that the input is not a well-formed PNG chunk stream.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// An EncodingError reports that a chunk cannot be represented on the wire.
type EncodingError string

func (e EncodingError) Error() string { return "png: encoding error: " + string(e) }

var (
	// ErrEmptyInput is returned by Assemble when no frames are supplied.
	ErrEmptyInput = errors.New("apng: no frames to assemble")

	// ErrMissingHeader is returned when the key frame has no usable IHDR chunk.
	ErrMissingHeader = errors.New("apng: key frame has no IHDR chunk")
)
