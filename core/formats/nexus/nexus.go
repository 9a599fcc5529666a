// core/formats/nexus/nexus.go

// Package nexus reads and writes NEXUS alignment files: a DATA (or
// CHARACTERS) block holding the matrix and a SETS block whose CHARSET
// statements map 1-based inclusive ranges onto genes.
package nexus

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"seqcat-core/align"
)

// ErrMalformedNexus is wrapped by all parse failures in this package.
var ErrMalformedNexus = errors.New("malformed nexus file")

type charset struct {
	name       string
	start, end int // 1-based inclusive
}

// reader executes NEXUS commands against accumulating state, the way
// the format is defined: block context first, then per-block commands.
type reader struct {
	block      string // "", "data", "sets"
	readMatrix bool
	ntax       int

	order    []string
	seqs     map[string]string
	charsets []charset
}

var dnaType = regexp.MustCompile(`(?i)DNA|RNA|Nucleotide`)

func (rd *reader) execute(command string, args []string) error {
	switch command {
	case "begin":
		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case "data", "characters":
				rd.block = "data"
			case "sets":
				rd.block = "sets"
			default:
				rd.block = ""
			}
		}
	case "end", "endblock":
		rd.block = ""
	case "format":
		for i := 0; i+2 < len(args); i++ {
			if strings.EqualFold(args[i], "datatype") && args[i+1] == "=" && dnaType.MatchString(args[i+2]) {
				rd.readMatrix = true
			}
		}
	case "dimensions":
		for i := 0; i+2 < len(args); i++ {
			if strings.EqualFold(args[i], "ntax") && args[i+1] == "=" {
				n, err := strconv.Atoi(args[i+2])
				if err != nil {
					return fmt.Errorf("%w: bad ntax %q", ErrMalformedNexus, args[i+2])
				}
				rd.ntax = n
			}
		}
	case "matrix":
		return rd.matrix(args)
	case "charset":
		return rd.charset(args)
	}
	return nil
}

// matrix consumes seqid/sequence token pairs; interleaved blocks repeat
// the pair list, so rows accumulate per seqid.
func (rd *reader) matrix(args []string) error {
	if rd.block != "data" || !rd.readMatrix {
		return nil
	}
	if len(args)%2 != 0 {
		return fmt.Errorf("%w: matrix has an odd token count", ErrMalformedNexus)
	}
	if rd.seqs == nil {
		rd.seqs = make(map[string]string)
	}
	for i := 0; i < len(args); i += 2 {
		id, seq := args[i], args[i+1]
		if _, ok := rd.seqs[id]; !ok {
			rd.order = append(rd.order, id)
		}
		rd.seqs[id] += seq
	}
	if rd.ntax > 0 && len(rd.order) != rd.ntax {
		return fmt.Errorf("%w: matrix has %d taxa, dimensions declare %d",
			ErrMalformedNexus, len(rd.order), rd.ntax)
	}
	return nil
}

var rangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

func (rd *reader) charset(args []string) error {
	if rd.block != "sets" {
		return nil
	}
	if len(args) < 3 || args[1] != "=" {
		return fmt.Errorf("%w: charset needs 'name = start-end'", ErrMalformedNexus)
	}
	m := rangeRe.FindStringSubmatch(args[2])
	if m == nil {
		return fmt.Errorf("%w: charset %q: bad range %q", ErrMalformedNexus, args[0], args[2])
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if start < 1 || end < start {
		return fmt.Errorf("%w: charset %q: bad range %q", ErrMalformedNexus, args[0], args[2])
	}
	rd.charsets = append(rd.charsets, charset{name: args[0], start: start, end: end})
	return nil
}

// Read parses a NEXUS file into a multi-gene alignment. Both the DATA
// matrix and the SETS charsets are required.
func Read(r io.Reader) (*align.Alignment, error) {
	tok, err := newTokenizer(r)
	if err != nil {
		return nil, err
	}
	rd := &reader{}
	for {
		command, err := tok.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var args []string
		for {
			arg, err := tok.next()
			if err == io.EOF {
				return nil, fmt.Errorf("%w: EOF inside the %q command", ErrMalformedNexus, command)
			}
			if err != nil {
				return nil, err
			}
			if arg == ";" {
				break
			}
			args = append(args, arg)
		}
		if err := rd.execute(strings.ToLower(command), args); err != nil {
			return nil, err
		}
	}

	if len(rd.order) == 0 {
		return nil, fmt.Errorf("%w: no data matrix", ErrMalformedNexus)
	}
	if len(rd.charsets) == 0 {
		return nil, fmt.Errorf("%w: no charsets in a sets block", ErrMalformedNexus)
	}

	total := 0
	for _, id := range rd.order {
		if len(rd.seqs[id]) > total {
			total = len(rd.seqs[id])
		}
	}
	for _, cs := range rd.charsets {
		if cs.end > total {
			return nil, fmt.Errorf("%w: charset %q range %d-%d exceeds matrix length %d",
				ErrMalformedNexus, cs.name, cs.start, cs.end, total)
		}
	}

	a := align.New()
	for _, cs := range rd.charsets {
		seqs := make(map[string]string, len(rd.order))
		for _, id := range rd.order {
			s := rd.seqs[id]
			if pad := total - len(s); pad > 0 {
				s += align.Filler(pad)
			}
			seqs[id] = s[cs.start-1 : cs.end]
		}
		g := align.Gene{Name: cs.name, Length: cs.end - cs.start + 1}
		if err := a.AddGene(g, rd.order, seqs); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Write serializes the alignment: DATA block with the concatenated
// matrix, then a SETS block with one charset per gene.
func Write(w io.Writer, a *align.Alignment) error {
	if a.NumGenes() == 0 {
		return fmt.Errorf("nexus: %w", align.ErrEmptyAlignment)
	}
	samples := a.Samples()
	nameW := 0
	for _, s := range samples {
		if len(s) > nameW {
			nameW = len(s)
		}
	}

	if _, err := fmt.Fprintf(w, "#NEXUS\n\nbegin data;\nformat datatype=DNA missing=? gap=-;\ndimensions ntax=%d nchar=%d;\nmatrix\n",
		a.NumSamples(), a.TotalLength()); err != nil {
		return err
	}
	for _, s := range samples {
		seq, _ := a.ConcatSequence(s)
		if _, err := fmt.Fprintf(w, "%-*s %s\n", nameW, s, seq); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ";\nend;\n\nbegin sets;\n"); err != nil {
		return err
	}
	for _, cs := range a.Charsets() {
		if _, err := fmt.Fprintf(w, "charset %s = %d-%d;\n", cs.Name, cs.Start+1, cs.End); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "end;\n")
	return err
}
