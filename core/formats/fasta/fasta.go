// core/formats/fasta/fasta.go

// Package fasta reads and writes single-alignment FASTA files. One
// file holds one gene; multi-gene FASTA input arrives as an archive of
// per-gene files.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seqcat-core/align"
)

// maxLine allows very long single-line sequences.
const maxLine = 64 * 1024 * 1024

// Read parses one gene's alignment. Sequences may span multiple lines;
// blank lines are skipped. Ragged records are padded to the longest
// sequence with '?'.
func Read(r io.Reader, gene string) (*align.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		order []string
		seqs  = make(map[string]string)
		id    string
		parts []string
		ln    int
	)
	flush := func() {
		if id == "" {
			return
		}
		seqs[id] = strings.Join(parts, "")
		parts = parts[:0]
	}
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		switch {
		case strings.TrimSpace(line) == "":
			continue
		case line[0] == '>':
			flush()
			id = strings.TrimSpace(line[1:])
			if id == "" {
				return nil, fmt.Errorf("fasta: line %d: empty record id", ln)
			}
			if _, dup := seqs[id]; !dup {
				order = append(order, id)
			}
		default:
			if id == "" {
				return nil, fmt.Errorf("fasta: line %d: sequence before first record header", ln)
			}
			parts = append(parts, strings.TrimSpace(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	a := align.New()
	if err := a.AddGene(align.Gene{Name: gene}, order, seqs); err != nil {
		return nil, err
	}
	return a, nil
}

// Write serializes the concatenated view of the alignment, one record
// per sample, sequence on a single line. Samples whose sequence holds
// no data (only gaps and missing characters) are skipped.
func Write(w io.Writer, a *align.Alignment) error {
	for _, s := range a.Samples() {
		seq, _ := a.ConcatSequence(s)
		if !HasData(seq) {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", s, seq); err != nil {
			return err
		}
	}
	return nil
}

// HasData reports whether seq holds at least one character that is not
// a gap or missing marker.
func HasData(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case align.Gap, align.Missing, 'N', 'n':
		default:
			return true
		}
	}
	return false
}
