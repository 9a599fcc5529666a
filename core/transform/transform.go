// core/transform/transform.go

// Package transform holds the alignment-to-alignment operations of the
// conversion pipeline. Every transform returns a fresh alignment; no
// stage mutates or aliases its input.
package transform

import (
	"fmt"

	"seqcat-core/align"
)

// ConcatGeneName is the single gene produced by Concatenate.
const ConcatGeneName = "concatenated"

// Concatenate joins every gene in order into one sequence per sample.
// The returned charsets record where each input gene landed; they are
// computed here, before the gene boundaries disappear.
func Concatenate(a *align.Alignment) (*align.Alignment, []align.Charset, error) {
	if a.NumGenes() == 0 {
		return nil, nil, fmt.Errorf("concatenate: %w", align.ErrEmptyAlignment)
	}
	charsets := a.Charsets()
	samples := a.Samples()
	seqs := make(map[string]string, len(samples))
	for _, s := range samples {
		seq, _ := a.ConcatSequence(s)
		seqs[s] = seq
	}
	out := align.New()
	copyMeta(a, out)
	g := align.Gene{Name: ConcatGeneName, Length: a.TotalLength()}
	if err := out.AddGene(g, samples, seqs); err != nil {
		return nil, nil, err
	}
	return out, charsets, nil
}

// SplitCodonPositions replaces every gene G with G_pos1, G_pos2 and
// G_pos3, taking every third character starting at the gene's reading
// frame offset. Characters outside complete codons are kept: position k
// collects the characters at indices congruent to frame+k modulo 3.
// Splitting is purely positional; no translation is attempted.
func SplitCodonPositions(a *align.Alignment) (*align.Alignment, error) {
	if a.NumGenes() == 0 {
		return nil, fmt.Errorf("split codon positions: %w", align.ErrEmptyAlignment)
	}
	out := align.New()
	copyMeta(a, out)
	samples := a.Samples()
	for _, g := range a.Genes() {
		if g.Frame < 0 || g.Frame > 2 {
			return nil, fmt.Errorf("%w: gene %q frame %d", align.ErrInvalidFrame, g.Name, g.Frame)
		}
		for k := 0; k < 3; k++ {
			start := (g.Frame + k) % 3
			seqs := make(map[string]string, len(samples))
			length := 0
			for _, s := range samples {
				seq, _ := a.Sequence(s, g.Name)
				sub := every3rd(seq, start)
				seqs[s] = sub
				length = len(sub)
			}
			ng := align.Gene{
				Name:        fmt.Sprintf("%s_pos%d", g.Name, k+1),
				Length:      length,
				GeneticCode: g.GeneticCode,
			}
			if err := out.AddGene(ng, samples, seqs); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func every3rd(s string, start int) string {
	if start >= len(s) {
		return ""
	}
	b := make([]byte, 0, (len(s)-start+2)/3)
	for i := start; i < len(s); i += 3 {
		b = append(b, s[i])
	}
	return string(b)
}

func copyMeta(from, to *align.Alignment) {
	cols := from.MetaColumns()
	for _, s := range from.Samples() {
		for _, c := range cols {
			to.SetMeta(s, c, from.Meta(s, c))
		}
	}
}
