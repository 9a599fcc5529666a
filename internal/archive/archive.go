// internal/archive/archive.go

// Package archive reads and writes multifile containers: zip archives
// or plain directories whose members are per-gene alignment files in a
// single-gene format, one member per gene, member name = gene name +
// extension.
//
// Merge policy: by default a sample absent from a member is filled
// with an all-'?' sequence of that gene's length; with Strict set, any
// difference between member sample sets is a SampleSetMismatch error.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"seqcat-core/align"
	"seqcat-core/formats/ali"
	"seqcat-core/formats/fasta"
	"seqcat-core/formats/phylip"
	"seqcat/internal/format"
)

// Options control the merge behavior.
type Options struct {
	// Strict makes differing member sample sets an error instead of
	// gap-filling the absent samples.
	Strict bool
}

func readMember(r io.Reader, member format.Format, gene string) (*align.Alignment, error) {
	switch member {
	case format.Fasta:
		return fasta.Read(r, gene)
	case format.Phylip:
		return phylip.Read(r, gene)
	case format.Ali:
		return ali.Read(r, gene)
	}
	return nil, fmt.Errorf("%w: %v is not a member format", format.ErrUnsupportedFormat, member)
}

func writeMember(w io.Writer, a *align.Alignment, member format.Format) error {
	switch member {
	case format.Fasta:
		return fasta.Write(w, a)
	case format.Phylip:
		return phylip.Write(w, a)
	case format.Ali:
		return ali.Write(w, a)
	}
	return fmt.Errorf("%w: %v is not a member format", format.ErrUnsupportedFormat, member)
}

// merge folds one member's single-gene alignment into the accumulator.
func merge(dst, one *align.Alignment, gene string, opts Options) error {
	if opts.Strict && dst.NumGenes() > 0 {
		if err := sameSampleSet(dst.Samples(), one.Samples()); err != nil {
			return fmt.Errorf("member %q: %w", gene, err)
		}
	}
	g, _ := one.Gene(gene)
	samples := one.Samples()
	seqs := make(map[string]string, len(samples))
	for _, s := range samples {
		seq, _ := one.Sequence(s, gene)
		seqs[s] = seq
	}
	return dst.AddGene(g, samples, seqs)
}

func sameSampleSet(a, b []string) error {
	in := func(list []string) map[string]bool {
		m := make(map[string]bool, len(list))
		for _, s := range list {
			m[s] = true
		}
		return m
	}
	aSet, bSet := in(a), in(b)
	var missing []string
	for _, s := range a {
		if !bSet[s] {
			missing = append(missing, s)
		}
	}
	for _, s := range b {
		if !aSet[s] {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: samples %s differ between members",
			align.ErrSampleSetMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// ReadZip merges every member of a zip archive into one alignment, in
// archive order. The member name's stem is the gene name.
func ReadZip(data []byte, member format.Format, opts Options) (*align.Alignment, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	out := align.New()
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		gene := strings.TrimSuffix(path.Base(f.Name), path.Ext(f.Name))
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Name, err)
		}
		one, err := readMember(rc, member, gene)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Name, err)
		}
		if err := merge(out, one, gene, opts); err != nil {
			return nil, err
		}
	}
	if out.NumGenes() == 0 {
		return nil, fmt.Errorf("archive: %w", align.ErrEmptyAlignment)
	}
	return out, nil
}

// WriteZip writes one member per gene, in gene order, so the output is
// deterministic for a given alignment.
func WriteZip(w io.Writer, a *align.Alignment, member format.Format) error {
	zw := zip.NewWriter(w)
	for _, g := range a.Genes() {
		one, err := a.SelectGenes(g.Name)
		if err != nil {
			return err
		}
		mw, err := zw.Create(g.Name + member.Ext())
		if err != nil {
			return err
		}
		if err := writeMember(mw, one, member); err != nil {
			return fmt.Errorf("member %q: %w", g.Name, err)
		}
	}
	return zw.Close()
}

// ReadDir merges per-gene files from a directory, in lexical name
// order.
func ReadDir(fs afero.Fs, dir string, member format.Format, opts Options) (*align.Alignment, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	out := align.New()
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		name := fi.Name()
		gene := strings.TrimSuffix(name, filepath.Ext(name))
		fh, err := fs.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		one, err := readMember(fh, member, gene)
		_ = fh.Close()
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", name, err)
		}
		if err := merge(out, one, gene, opts); err != nil {
			return nil, err
		}
	}
	if out.NumGenes() == 0 {
		return nil, fmt.Errorf("directory %s: %w", dir, align.ErrEmptyAlignment)
	}
	return out, nil
}

// WriteDir writes one member file per gene into dir, creating it if
// needed.
func WriteDir(fs afero.Fs, dir string, a *align.Alignment, member format.Format) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, g := range a.Genes() {
		one, err := a.SelectGenes(g.Name)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := writeMember(&buf, one, member); err != nil {
			return fmt.Errorf("member %q: %w", g.Name, err)
		}
		if err := afero.WriteFile(fs, filepath.Join(dir, g.Name+member.Ext()), buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}
