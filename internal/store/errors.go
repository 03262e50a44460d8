package store

import (
	"errors"
	"fmt"
)

var ErrCorruptRecord = errors.New("corrupt record")

// CorruptRecordError describes a line of the record file that could not be
// decoded. Line is 1-based.
type CorruptRecordError struct {
	Line int
	Raw  string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("linha %d %q: %v", e.Line, e.Raw, e.Err)
}

func (e *CorruptRecordError) Unwrap() error {
	return ErrCorruptRecord
}
