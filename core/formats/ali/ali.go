// core/formats/ali/ali.go

// Package ali reads and writes Ali alignments: a block of '#' header
// comments followed by '>' records. The format marks missing data with
// '?' and gaps with '*'; both directions translate between those and
// the internal '?'/'-' convention.
package ali

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seqcat-core/align"
)

const maxLine = 64 * 1024 * 1024

// Read parses one gene's alignment. Header comments are ignored; '*'
// becomes '-' and '@' in record ids becomes '_'.
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
		seqs[id] = strings.ReplaceAll(strings.Join(parts, ""), "*", "-")
		parts = parts[:0]
	}
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line[0] == '#':
			continue
		case line[0] == '>':
			flush()
			id = strings.ReplaceAll(strings.TrimSpace(line[1:]), "@", "_")
			if id == "" {
				return nil, fmt.Errorf("ali: line %d: empty record id", ln)
			}
			if _, dup := seqs[id]; !dup {
				order = append(order, id)
			}
		default:
			if id == "" {
				return nil, fmt.Errorf("ali: line %d: sequence before first record header", ln)
			}
			parts = append(parts, line)
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

var toAli = strings.NewReplacer("N", "?", "n", "?", "-", "*")

// Write serializes the concatenated view with the Ali header block.
// Samples that hold no data after translation are skipped; the header
// counts describe the emitted records.
func Write(w io.Writer, a *align.Alignment) error {
	type rec struct {
		id, seq string
	}
	var (
		out     []rec
		missing int
	)
	for _, s := range a.Samples() {
		seq, _ := a.ConcatSequence(s)
		seq = toAli.Replace(seq)
		if strings.Trim(seq, "?*") == "" {
			continue
		}
		missing += strings.Count(seq, "?")
		out = append(out, rec{id: s, seq: seq})
	}
	if len(out) == 0 {
		return fmt.Errorf("ali: %w", align.ErrEmptyAlignment)
	}
	pos := a.TotalLength()
	pct := float64(missing) / float64(pos*len(out)) * 100
	if _, err := fmt.Fprintf(w, "#Number of positions: %d\n#Number of OTUs: %d\n#Percent of ?: %s\n#\n",
		pos, len(out), strconv.FormatFloat(pct, 'g', -1, 64)); err != nil {
		return err
	}
	for _, r := range out {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.id, r.seq); err != nil {
			return err
		}
	}
	return nil
}
