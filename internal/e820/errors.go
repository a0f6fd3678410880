package e820

import "errors"

// ErrTruncated indicates the buffer lacked the bytes required for the
// requested records.
var ErrTruncated = errors.New("e820: truncated table")
