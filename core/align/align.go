// core/align/align.go
package align

import (
	"fmt"
	"strings"
)

// Alignment character conventions, shared by all formats.
const (
	Gap     = '-'
	Missing = '?'
)

// Gene describes one partition of the alignment.
type Gene struct {
	Name        string
	Length      int
	GeneticCode int // NCBI genetic-code table id; 0 = unknown
	Frame       int // codon reading-frame offset (0, 1 or 2)
}

// Charset is a gene's half-open offset range [Start, End) within the
// concatenated alignment. Computed by Charsets, never stored.
type Charset struct {
	Name        string
	Start, End  int
	GeneticCode int
	Frame       int
}

// Alignment is the ordered samples × genes sequence matrix. The zero
// value is not usable; call New.
type Alignment struct {
	samples  []string
	sampleAt map[string]int
	genes    []Gene
	geneAt   map[string]int
	seqs     [][]string // seqs[sample][gene]

	metaCols []string
	meta     map[string]map[string]string
}

// New returns an empty alignment.
func New() *Alignment {
	return &Alignment{
		sampleAt: make(map[string]int),
		geneAt:   make(map[string]int),
		meta:     make(map[string]map[string]string),
	}
}

// Filler returns the all-missing sequence used for samples that have no
// data for a gene.
func Filler(length int) string {
	return strings.Repeat(string(Missing), length)
}

func (a *Alignment) addSample(name string) int {
	if i, ok := a.sampleAt[name]; ok {
		return i
	}
	i := len(a.samples)
	a.samples = append(a.samples, name)
	a.sampleAt[name] = i
	row := make([]string, len(a.genes))
	for gi, g := range a.genes {
		row[gi] = Filler(g.Length)
	}
	a.seqs = append(a.seqs, row)
	return i
}

// AddGene appends a gene and its per-sample sequences. Map iteration
// order is not stable, so callers pass the sample order explicitly; new
// samples are appended in that order, known samples keep their
// position. Sequences shorter than the gene length are padded with '?';
// samples with no entry get an all-'?' filler. The gene length defaults
// to the longest supplied sequence when g.Length is zero.
func (a *Alignment) AddGene(g Gene, order []string, seqs map[string]string) error {
	if g.Name == "" {
		return fmt.Errorf("%w: empty gene name", ErrDuplicateGene)
	}
	if _, ok := a.geneAt[g.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGene, g.Name)
	}
	if g.Frame < 0 || g.Frame > 2 {
		return fmt.Errorf("%w: gene %q frame %d", ErrInvalidFrame, g.Name, g.Frame)
	}
	if g.Length == 0 {
		for _, s := range seqs {
			if len(s) > g.Length {
				g.Length = len(s)
			}
		}
	}
	for name, s := range seqs {
		if len(s) > g.Length {
			return fmt.Errorf("gene %q: sample %q has length %d, expected %d",
				g.Name, name, len(s), g.Length)
		}
	}

	gi := len(a.genes)
	a.genes = append(a.genes, g)
	a.geneAt[g.Name] = gi
	for si := range a.seqs {
		a.seqs[si] = append(a.seqs[si], Filler(g.Length))
	}
	for _, name := range order {
		s, ok := seqs[name]
		if !ok {
			continue
		}
		si := a.addSample(name)
		if pad := g.Length - len(s); pad > 0 {
			s += Filler(pad)
		}
		a.seqs[si][gi] = s
	}
	return nil
}

// SetSequence replaces one matrix cell. The replacement must keep the
// gene's declared length.
func (a *Alignment) SetSequence(sample, gene, seq string) error {
	gi, ok := a.geneAt[gene]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGene, gene)
	}
	if len(seq) != a.genes[gi].Length {
		return fmt.Errorf("gene %q: sample %q has length %d, expected %d",
			gene, sample, len(seq), a.genes[gi].Length)
	}
	si := a.addSample(sample)
	a.seqs[si][gi] = seq
	return nil
}

// SetGeneInfo records the genetic-code table and reading frame of a
// gene without touching its sequences.
func (a *Alignment) SetGeneInfo(gene string, code, frame int) error {
	gi, ok := a.geneAt[gene]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGene, gene)
	}
	if frame < 0 || frame > 2 {
		return fmt.Errorf("%w: gene %q frame %d", ErrInvalidFrame, gene, frame)
	}
	a.genes[gi].GeneticCode = code
	a.genes[gi].Frame = frame
	return nil
}

// Samples returns the sample names in alignment order.
func (a *Alignment) Samples() []string {
	return append([]string(nil), a.samples...)
}

// Genes returns the gene descriptors in alignment order.
func (a *Alignment) Genes() []Gene {
	return append([]Gene(nil), a.genes...)
}

// Gene looks a descriptor up by name.
func (a *Alignment) Gene(name string) (Gene, bool) {
	gi, ok := a.geneAt[name]
	if !ok {
		return Gene{}, false
	}
	return a.genes[gi], true
}

func (a *Alignment) NumSamples() int { return len(a.samples) }
func (a *Alignment) NumGenes() int   { return len(a.genes) }

// TotalLength is the length of the concatenated alignment.
func (a *Alignment) TotalLength() int {
	n := 0
	for _, g := range a.genes {
		n += g.Length
	}
	return n
}

// Sequence returns one matrix cell.
func (a *Alignment) Sequence(sample, gene string) (string, bool) {
	si, ok := a.sampleAt[sample]
	if !ok {
		return "", false
	}
	gi, ok := a.geneAt[gene]
	if !ok {
		return "", false
	}
	return a.seqs[si][gi], true
}

// ConcatSequence returns the sample's sequences joined in gene order.
func (a *Alignment) ConcatSequence(sample string) (string, bool) {
	si, ok := a.sampleAt[sample]
	if !ok {
		return "", false
	}
	return strings.Join(a.seqs[si], ""), true
}

// Charsets computes the half-open offset ranges of every gene within
// the concatenated alignment, in gene order.
func (a *Alignment) Charsets() []Charset {
	out := make([]Charset, 0, len(a.genes))
	pos := 0
	for _, g := range a.genes {
		out = append(out, Charset{
			Name:        g.Name,
			Start:       pos,
			End:         pos + g.Length,
			GeneticCode: g.GeneticCode,
			Frame:       g.Frame,
		})
		pos += g.Length
	}
	return out
}

// MetaColumns returns the non-sequence column names carried from a tab
// file, in input order.
func (a *Alignment) MetaColumns() []string {
	return append([]string(nil), a.metaCols...)
}

// SetMeta stores a metadata value for a sample, registering the column
// on first use.
func (a *Alignment) SetMeta(sample, column, value string) {
	found := false
	for _, c := range a.metaCols {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		a.metaCols = append(a.metaCols, column)
	}
	m, ok := a.meta[sample]
	if !ok {
		m = make(map[string]string)
		a.meta[sample] = m
	}
	m[column] = value
}

// Meta returns a sample's metadata value, "" if unset.
func (a *Alignment) Meta(sample, column string) string {
	return a.meta[sample][column]
}

// SelectGenes returns a new alignment holding only the named genes, in
// alignment order, with the full sample set.
func (a *Alignment) SelectGenes(names ...string) (*Alignment, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := a.geneAt[n]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGene, n)
		}
		want[n] = true
	}
	out := New()
	out.metaCols = append([]string(nil), a.metaCols...)
	for s, m := range a.meta {
		for c, v := range m {
			out.SetMeta(s, c, v)
		}
	}
	for _, s := range a.samples {
		out.addSample(s)
	}
	for gi, g := range a.genes {
		if !want[g.Name] {
			continue
		}
		seqs := make(map[string]string, len(a.samples))
		for si, s := range a.samples {
			seqs[s] = a.seqs[si][gi]
		}
		if err := out.AddGene(g, a.Samples(), seqs); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clone returns a deep copy; transforms use it so that no pipeline
// stage aliases another stage's matrix.
func (a *Alignment) Clone() *Alignment {
	out := New()
	out.metaCols = append([]string(nil), a.metaCols...)
	for s, m := range a.meta {
		cm := make(map[string]string, len(m))
		for c, v := range m {
			cm[c] = v
		}
		out.meta[s] = cm
	}
	out.genes = append([]Gene(nil), a.genes...)
	for i, g := range out.genes {
		out.geneAt[g.Name] = i
	}
	for si, s := range a.samples {
		out.samples = append(out.samples, s)
		out.sampleAt[s] = si
		out.seqs = append(out.seqs, append([]string(nil), a.seqs[si]...))
	}
	return out
}

// Equal reports whether two alignments have identical samples, genes,
// matrix contents and metadata, in the same order.
func (a *Alignment) Equal(b *Alignment) bool {
	if len(a.samples) != len(b.samples) || len(a.genes) != len(b.genes) {
		return false
	}
	for i, s := range a.samples {
		if b.samples[i] != s {
			return false
		}
	}
	for i, g := range a.genes {
		if b.genes[i] != g {
			return false
		}
	}
	for si := range a.seqs {
		for gi := range a.seqs[si] {
			if a.seqs[si][gi] != b.seqs[si][gi] {
				return false
			}
		}
	}
	if len(a.metaCols) != len(b.metaCols) {
		return false
	}
	for i, c := range a.metaCols {
		if b.metaCols[i] != c {
			return false
		}
		for _, s := range a.samples {
			if a.Meta(s, c) != b.Meta(s, c) {
				return false
			}
		}
	}
	return true
}
