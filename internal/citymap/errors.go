package citymap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is matched by every *MalformedRecordError via errors.Is.
	ErrMalformedRecord = errors.New("citymap: malformed route record")

	// ErrBuilderDone is returned when a finished or failed Builder is used again.
	ErrBuilderDone = errors.New("citymap: builder already finished")
)

// MalformedRecordError identifies the record and field that violated the
// route record contract.
type MalformedRecordError struct {
	Index  int    // zero-based position of the record in the input
	Field  string // e.g. "endpoints", "endpoints[1]", "ferries"
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("route record %d: field %s: %s", e.Index, e.Field, e.Reason)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
