// internal/pipeline/pipeline.go

// Package pipeline wires one conversion end to end: read the input
// into an alignment, apply the ordered transform list, serialize, and
// only then touch the output file. A failing stage aborts the run
// before any output exists.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"seqcat-core/align"
	"seqcat-core/gencode"
	"seqcat-core/partition"
	"seqcat-core/transform"
	"seqcat/internal/archive"
	"seqcat/internal/detect"
	"seqcat/internal/format"
)

// GeneInfo assigns a genetic-code table and reading frame to one gene.
type GeneInfo struct {
	Code  int
	Frame int
}

// Options are the policy knobs shared by readers and writers.
type Options struct {
	Strict    bool
	Partition partition.Options
}

// Request describes one conversion.
type Request struct {
	Input  string
	Output string
	From   format.Format // Auto = sniff the input
	To     format.Format // Auto = derive from the output extension

	Transforms []transform.Descriptor
	Genes      map[string]GeneInfo // gene name → code/frame overrides

	Options Options
}

// Pipeline runs conversions against a filesystem.
type Pipeline struct {
	fs  afero.Fs
	log zerolog.Logger
}

func New(fs afero.Fs, log zerolog.Logger) *Pipeline {
	return &Pipeline{fs: fs, log: log}
}

// Run executes one conversion. Errors keep their sentinel identity so
// callers can match the taxonomy with errors.Is.
func (p *Pipeline) Run(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a, from, err := p.readInput(req)
	if err != nil {
		return err
	}
	p.log.Debug().
		Stringer("format", from).
		Int("samples", a.NumSamples()).
		Int("genes", a.NumGenes()).
		Msg("input read")

	if err := applyGeneInfo(a, req.Genes); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := transform.Apply(a, req.Transforms)
	if err != nil {
		return err
	}
	for _, d := range req.Transforms {
		p.log.Debug().Stringer("op", d.Op).Msg("transform applied")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := req.To
	if to == format.Auto {
		var ok bool
		if to, ok = format.FromExt(filepath.Ext(req.Output)); !ok {
			return fmt.Errorf("%w: cannot derive the output format from %q",
				format.ErrUnsupportedFormat, req.Output)
		}
	}
	out, err := write(to, res, req.Options)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(p.fs, req.Output, out, 0o644); err != nil {
		return err
	}
	p.log.Debug().
		Stringer("format", to).
		Int("bytes", len(out)).
		Str("path", req.Output).
		Msg("output written")
	return nil
}

func (p *Pipeline) readInput(req Request) (*align.Alignment, format.Format, error) {
	fi, err := p.fs.Stat(req.Input)
	if err != nil {
		return nil, format.Auto, err
	}
	if fi.IsDir() {
		member, ok := req.From.Member()
		if !ok {
			return nil, format.Auto, fmt.Errorf(
				"%w: reading a directory needs an explicit zip-* input format",
				format.ErrUnsupportedFormat)
		}
		a, err := archive.ReadDir(p.fs, req.Input, member,
			archive.Options{Strict: req.Options.Strict})
		return a, req.From, err
	}

	from := req.From
	data, err := afero.ReadFile(p.fs, req.Input)
	if err != nil {
		return nil, format.Auto, err
	}
	if from == format.Auto {
		if from, err = detect.SniffBytes(req.Input, data); err != nil {
			return nil, format.Auto, err
		}
	}
	a, err := read(from, req.Input, data, req.Options)
	return a, from, err
}

func applyGeneInfo(a *align.Alignment, genes map[string]GeneInfo) error {
	for name, info := range genes {
		if info.Code != 0 {
			if _, err := gencode.Lookup(info.Code); err != nil {
				return fmt.Errorf("gene %q: %w", name, err)
			}
		}
		if err := a.SetGeneInfo(name, info.Code, info.Frame); err != nil {
			return err
		}
	}
	return nil
}
