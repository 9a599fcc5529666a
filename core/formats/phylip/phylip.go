// core/formats/phylip/phylip.go

// Package phylip reads and writes relaxed Phylip alignments: a header
// line with the sample and position counts followed by one
// "name sequence" row per sample.
package phylip

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seqcat-core/align"
)

const maxLine = 64 * 1024 * 1024

// Read parses one gene's alignment. The header's position count is
// taken as the gene length; rows whose sequence is shorter are padded
// with '?'.
func Read(r io.Reader, gene string) (*align.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("phylip: empty input")
	}
	var ntax, nchar int
	if _, err := fmt.Sscan(strings.TrimSpace(sc.Text()), &ntax, &nchar); err != nil {
		return nil, fmt.Errorf("phylip: line 1: bad header %q", strings.TrimSpace(sc.Text()))
	}

	var (
		order []string
		seqs  = make(map[string]string)
		ln    = 1
	)
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cut := strings.LastIndexAny(line, " \t")
		if cut < 0 {
			return nil, fmt.Errorf("phylip: line %d: missing sequence", ln)
		}
		name := strings.TrimSpace(line[:cut])
		seq := line[cut+1:]
		if name == "" {
			return nil, fmt.Errorf("phylip: line %d: empty sample name", ln)
		}
		if len(seq) > nchar {
			return nil, fmt.Errorf("phylip: line %d: sequence longer than declared length %d", ln, nchar)
		}
		if _, dup := seqs[name]; !dup {
			order = append(order, name)
		}
		seqs[name] = seq
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(order) != ntax {
		return nil, fmt.Errorf("phylip: %d samples read, header declares %d", len(order), ntax)
	}

	a := align.New()
	if err := a.AddGene(align.Gene{Name: gene, Length: nchar}, order, seqs); err != nil {
		return nil, err
	}
	return a, nil
}

// Write serializes the concatenated view as relaxed Phylip: names are
// left-justified to at least ten characters.
func Write(w io.Writer, a *align.Alignment) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", a.NumSamples(), a.TotalLength()); err != nil {
		return err
	}
	for _, s := range a.Samples() {
		seq, _ := a.ConcatSequence(s)
		if _, err := fmt.Fprintf(w, "%-10s %s\n", s, seq); err != nil {
			return err
		}
	}
	return nil
}
