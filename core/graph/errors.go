package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNilImage is returned when an extraction is started without an image.
	ErrNilImage = errors.New("graph: image is nil")

	// ErrReadRace marks a read that failed because the remote state changed
	// underneath it, e.g. an index past a stale size. Accessors wrap it.
	ErrReadRace = errors.New("graph: read race")
)

// AcquisitionError reports that the remote graph could not be queried at all.
type AcquisitionError struct {
	// Path is the traversal path at which the failure occurred.
	Path string
	// Err is the accessor error.
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("graph: acquisition failed at %s: %v", e.Path, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
