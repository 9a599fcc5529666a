// core/gencode/gencode.go

// Package gencode is the read-only registry of NCBI genetic-code
// tables. The registry is populated from static data at package init
// and never mutated afterwards, so it is safe to share across
// concurrently running pipelines.
package gencode

import (
	"errors"
	"fmt"
)

// ErrUnknownGeneticCode is returned by Lookup for ids absent from the
// NCBI set.
var ErrUnknownGeneticCode = errors.New("unknown genetic code")

// Bases in NCBI codon-rank order: the first base of a codon varies
// slowest, so the rank of a codon is r(c1)*16 + r(c2)*4 + r(c3).
const Bases = "TCAG"

// Table is one NCBI genetic-code table. AminoAcids and StartCodons are
// the 64-character ncbieaa/sncbieaa strings indexed by codon rank.
type Table struct {
	ID          int
	Name        string
	AbbrName    string
	AminoAcids  string
	StartCodons string
}

func baseRank(c byte) int {
	switch c {
	case 'T', 't', 'U', 'u':
		return 0
	case 'C', 'c':
		return 1
	case 'A', 'a':
		return 2
	case 'G', 'g':
		return 3
	}
	return -1
}

// CodonRank returns the index of a codon in the fixed TCAG ordering,
// or -1 if any position holds an ambiguity or gap character.
func CodonRank(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	r1, r2, r3 := baseRank(codon[0]), baseRank(codon[1]), baseRank(codon[2])
	if r1 < 0 || r2 < 0 || r3 < 0 {
		return -1
	}
	return r1*16 + r2*4 + r3
}

// Codon returns the codon at the given rank, e.g. Codon(0) == "TTT".
func Codon(rank int) string {
	if rank < 0 || rank > 63 {
		return ""
	}
	return string([]byte{Bases[rank/16], Bases[rank/4%4], Bases[rank%4]})
}

// Translate maps a codon to its amino acid under the table. Codons that
// contain gap or ambiguity characters translate to 'X'.
func (t Table) Translate(codon string) byte {
	r := CodonRank(codon)
	if r < 0 {
		return 'X'
	}
	return t.AminoAcids[r]
}

// IsStart reports whether the codon is flagged as a start codon.
func (t Table) IsStart(codon string) bool {
	r := CodonRank(codon)
	return r >= 0 && t.StartCodons[r] == 'M'
}

// Stops lists the table's stop codons in codon-rank order.
func (t Table) Stops() []string {
	var out []string
	for r := 0; r < 64; r++ {
		if t.AminoAcids[r] == '*' {
			out = append(out, Codon(r))
		}
	}
	return out
}

// Lookup returns the table with the given NCBI id.
func Lookup(id int) (Table, error) {
	t, ok := byID[id]
	if !ok {
		return Table{}, fmt.Errorf("%w: id %d", ErrUnknownGeneticCode, id)
	}
	return t, nil
}

// IDs returns the known table ids in ascending order.
func IDs() []int {
	return append([]int(nil), ids...)
}

var (
	byID map[int]Table
	ids  []int
)

func init() {
	byID = make(map[int]Table, len(tables))
	for _, t := range tables {
		if len(t.AminoAcids) != 64 || len(t.StartCodons) != 64 {
			panic(fmt.Sprintf("gencode: table %d has malformed data", t.ID))
		}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}
}
