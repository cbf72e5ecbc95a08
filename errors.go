package relief

import (
	"errors"
	"fmt"
)

// Validation errors abort the whole batch before any candidate is processed.
var (
	ErrPartInvalid         = errors.New("part curve is invalid")
	ErrNoCandidates        = errors.New("no candidate curves")
	ErrPartNonPlanar       = errors.New("part curve is not planar")
	ErrCandidatesNonPlanar = errors.New("candidate curve is not planar")
)

// Candidate errors only drop the candidate they occurred for.
var (
	ErrNoOverlap      = errors.New("candidate does not overlap the part")
	ErrOffsetFailed   = errors.New("offset failed")
	ErrJoinAmbiguous  = errors.New("join resulted in multiple curves")
	ErrClosureFailed  = errors.New("stitched curve is not closed")
	ErrPartitionEmpty = errors.New("no overlapping segments")
)

// ErrNoPart is returned when an input document has no part.
var ErrNoPart = errors.New("no part in input")

// CandidateError is the error for a single candidate of a batch.
type CandidateError struct {
	Index int
	Err   error
}

func (err *CandidateError) Error() string {
	return fmt.Sprintf("candidate %d: %v", err.Index, err.Err)
}

func (err *CandidateError) Unwrap() error {
	return err.Err
}
