package framing

import (
	"errors"
	"fmt"
)

// Errors returned by geometry calculations.
var (
	ErrInputTooShort = errors.New("framing: input too short for stage stack")
	ErrInvalidStage  = errors.New("framing: invalid stage spec")
)

// GeometryError reports the stage at which a forward length calculation
// collapsed to zero frames. Input is the length entering that stage, not
// the length of the original waveform.
type GeometryError struct {
	Stage int
	Input int
	Spec  StageSpec
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("framing: stage %d (kernel %d, stride %d): input length %d leaves no complete window",
		e.Stage, e.Spec.Kernel, e.Spec.Stride, e.Input)
}

func (e *GeometryError) Unwrap() error {
	return ErrInputTooShort
}
