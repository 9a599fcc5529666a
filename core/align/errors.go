// core/align/errors.go
package align

import "errors"

// Sentinel errors shared across the conversion pipeline. Callers match
// them with errors.Is; the wrapping message carries the offending
// gene/sample name.
var (
	ErrEmptyAlignment    = errors.New("empty alignment")
	ErrSampleSetMismatch = errors.New("sample set mismatch")
	ErrInvalidFrame      = errors.New("invalid reading frame")
	ErrDuplicateGene     = errors.New("duplicate gene")
	ErrUnknownGene       = errors.New("unknown gene")
)
