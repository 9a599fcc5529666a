// core/formats/tabfile/tabfile.go

// Package tabfile reads and writes the tab-delimited multi-gene table:
// a header row, one row per sample. Columns whose name contains
// "sequence" carry genes; the first column is the sample id; remaining
// columns are metadata carried through unchanged.
package tabfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"seqcat-core/align"
)

// ErrMalformedTable is wrapped by all parse failures in this package.
var ErrMalformedTable = errors.New("malformed tab file")

const maxLine = 64 * 1024 * 1024

// seqMarker identifies gene columns; the match is case-sensitive per
// the file convention ("sequence_<gene>").
const seqMarker = "sequence"

// GeneName derives the gene name from a sequence column header.
func GeneName(column string) string {
	name := strings.Replace(column, seqMarker, "", 1)
	name = strings.Trim(name, "_")
	if name == "" {
		return column
	}
	return name
}

// SeqColumn is the inverse of GeneName.
func SeqColumn(gene string) string {
	return seqMarker + "_" + gene
}

// Read parses a full multi-gene table into an alignment.
func Read(r io.Reader) (*align.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrMalformedTable)
	}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r\n"), "\t")
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has %d columns", ErrMalformedTable, len(header))
	}

	var geneCols, metaCols []int
	for i, col := range header {
		if i == 0 {
			continue // sample id
		}
		if strings.Contains(col, seqMarker) {
			geneCols = append(geneCols, i)
		} else {
			metaCols = append(metaCols, i)
		}
	}
	if len(geneCols) == 0 {
		return nil, fmt.Errorf("%w: no sequence columns in header", ErrMalformedTable)
	}

	var (
		order []string
		seqs  = make([]map[string]string, len(geneCols))
		meta  = make(map[string][]string)
		ln    = 1
	)
	for i := range seqs {
		seqs[i] = make(map[string]string)
	}
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d columns, header has %d",
				ErrMalformedTable, ln, len(fields), len(header))
		}
		sample := fields[0]
		order = append(order, sample)
		for gi, ci := range geneCols {
			seqs[gi][sample] = fields[ci]
		}
		vals := make([]string, 0, len(metaCols))
		for _, ci := range metaCols {
			vals = append(vals, fields[ci])
		}
		meta[sample] = vals
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	a := align.New()
	for _, sample := range order {
		for mi, ci := range metaCols {
			a.SetMeta(sample, header[ci], meta[sample][mi])
		}
	}
	for gi, ci := range geneCols {
		g := align.Gene{Name: GeneName(header[ci])}
		if err := a.AddGene(g, order, seqs[gi]); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Write serializes the alignment as a tab table: "seqid", the metadata
// columns in input order, then one "sequence_<gene>" column per gene.
func Write(w io.Writer, a *align.Alignment) error {
	bw := bufio.NewWriter(w)
	metaCols := a.MetaColumns()
	genes := a.Genes()

	cols := make([]string, 0, 1+len(metaCols)+len(genes))
	cols = append(cols, "seqid")
	cols = append(cols, metaCols...)
	for _, g := range genes {
		cols = append(cols, SeqColumn(g.Name))
	}
	if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
		return err
	}

	row := make([]string, 0, cap(cols))
	for _, s := range a.Samples() {
		row = row[:0]
		row = append(row, s)
		for _, c := range metaCols {
			row = append(row, a.Meta(s, c))
		}
		for _, g := range genes {
			seq, _ := a.Sequence(s, g.Name)
			row = append(row, seq)
		}
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
