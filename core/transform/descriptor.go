// core/transform/descriptor.go
package transform

import (
	"fmt"

	"seqcat-core/align"
)

// Op enumerates the transforms a pipeline can request. The set is
// closed; Parse rejects anything else.
type Op int

const (
	OpConcatenate Op = iota
	OpSplitCodons
)

func (op Op) String() string {
	switch op {
	case OpConcatenate:
		return "concat"
	case OpSplitCodons:
		return "split-codons"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp maps a CLI transform name to its Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "concat", "concatenate":
		return OpConcatenate, nil
	case "split-codons", "codons":
		return OpSplitCodons, nil
	}
	return 0, fmt.Errorf("unknown transform %q", s)
}

// Descriptor is one step of an ordered transform list.
type Descriptor struct {
	Op Op
}

// Result is the outcome of applying a transform list.
type Result struct {
	Alignment *align.Alignment
	// Charsets is set when the list contained a Concatenate step: the
	// offset table derived at concatenation time.
	Charsets []align.Charset
}

// Apply runs the descriptors left to right over the alignment. The
// input is cloned first so the caller's value is never aliased.
func Apply(a *align.Alignment, descs []Descriptor) (Result, error) {
	cur := a.Clone()
	res := Result{}
	for _, d := range descs {
		switch d.Op {
		case OpConcatenate:
			next, charsets, err := Concatenate(cur)
			if err != nil {
				return Result{}, err
			}
			cur, res.Charsets = next, charsets
		case OpSplitCodons:
			next, err := SplitCodonPositions(cur)
			if err != nil {
				return Result{}, err
			}
			cur = next
		default:
			return Result{}, fmt.Errorf("unknown transform %v", d.Op)
		}
	}
	res.Alignment = cur
	return res, nil
}
