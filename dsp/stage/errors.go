package stage

import "errors"

// Errors returned by stage operations.
var (
	ErrChannelMismatch = errors.New("stage: input channel count mismatch")
	ErrInputTooShort   = errors.New("stage: input shorter than one window")
	ErrInvalidConfig   = errors.New("stage: invalid configuration")
	ErrRaggedWeights   = errors.New("stage: weight tensor is not rectangular")
)
