// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seqcat-core/partition"
	"seqcat-core/transform"
	"seqcat/internal/format"
	"seqcat/internal/pipeline"
)

// Options holds all CLI flags before they are resolved into a
// pipeline.Request.
type Options struct {
	From       string
	To         string
	Transforms []string
	Strict     bool
	GeneCodes  []string // gene=ncbi-id
	GeneFrames []string // gene=frame (0, 1 or 2)

	PFBranchLengths  string
	PFModels         string
	PFModelSelection string
	PFSearch         string

	Verbose bool
}

// Request validates the options and resolves them against the two
// positional arguments.
func (o Options) Request(input, output string) (pipeline.Request, error) {
	var req pipeline.Request
	if input == "" || output == "" {
		return req, errors.New("an input and an output path are required")
	}
	req.Input, req.Output = input, output

	var err error
	if req.From, err = format.Parse(o.From); err != nil {
		return req, err
	}
	if req.To, err = format.Parse(o.To); err != nil {
		return req, err
	}
	if req.From == format.PartitionFinder {
		return req, fmt.Errorf("%w: partitionfinder is write-only", format.ErrUnsupportedFormat)
	}

	for _, t := range o.Transforms {
		op, err := transform.ParseOp(t)
		if err != nil {
			return req, err
		}
		req.Transforms = append(req.Transforms, transform.Descriptor{Op: op})
	}

	req.Genes = make(map[string]pipeline.GeneInfo)
	for _, spec := range o.GeneCodes {
		gene, v, err := splitSpec(spec, "--gene-code")
		if err != nil {
			return req, err
		}
		info := req.Genes[gene]
		info.Code = v
		req.Genes[gene] = info
	}
	for _, spec := range o.GeneFrames {
		gene, v, err := splitSpec(spec, "--gene-frame")
		if err != nil {
			return req, err
		}
		if v < 0 || v > 2 {
			return req, fmt.Errorf("--gene-frame %q: frame must be 0, 1 or 2", spec)
		}
		info := req.Genes[gene]
		info.Frame = v
		req.Genes[gene] = info
	}

	req.Options = pipeline.Options{
		Strict: o.Strict,
		Partition: partition.Options{
			BranchLengths:  o.PFBranchLengths,
			Models:         o.PFModels,
			ModelSelection: o.PFModelSelection,
			Search:         o.PFSearch,
		},
	}
	return req, nil
}

func splitSpec(spec, flag string) (string, int, error) {
	gene, val, ok := strings.Cut(spec, "=")
	if !ok || gene == "" {
		return "", 0, fmt.Errorf("%s %q: expected gene=value", flag, spec)
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return "", 0, fmt.Errorf("%s %q: bad value %q", flag, spec, val)
	}
	return gene, v, nil
}
