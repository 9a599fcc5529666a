// core/formats/nexus/tokenizer.go
package nexus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// tokenizer emits NEXUS words and punctuation. Comments in square
// brackets (nesting allowed) are skipped, quoted values are one token,
// '=' and ';' are tokens of their own.
type tokenizer struct {
	br   *bufio.Reader
	line int
}

const punctuation = "=;"

func newTokenizer(r io.Reader) (*tokenizer, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	magic := make([]byte, 6)
	if _, err := io.ReadFull(br, magic); err != nil || string(magic) != "#NEXUS" {
		return nil, fmt.Errorf("%w: missing #NEXUS header", ErrMalformedNexus)
	}
	return &tokenizer{br: br, line: 1}, nil
}

func (t *tokenizer) readByte() (byte, error) {
	c, err := t.br.ReadByte()
	if c == '\n' {
		t.line++
	}
	return c, err
}

func (t *tokenizer) skipComment() error {
	depth := 1
	for depth > 0 {
		c, err := t.readByte()
		if err != nil {
			return fmt.Errorf("%w: line %d: EOF inside a comment", ErrMalformedNexus, t.line)
		}
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return nil
}

func (t *tokenizer) readQuoted() (string, error) {
	var sb strings.Builder
	for {
		c, err := t.readByte()
		if err != nil {
			return "", fmt.Errorf("%w: line %d: EOF inside a quoted value", ErrMalformedNexus, t.line)
		}
		if c == '\'' {
			next, err := t.br.Peek(1)
			if err == nil && next[0] == '\'' {
				_, _ = t.readByte()
				sb.WriteByte('\'')
				continue
			}
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}

// next returns the next token and io.EOF at end of input.
func (t *tokenizer) next() (string, error) {
	var sb strings.Builder
	flush := func() (string, bool) {
		if sb.Len() == 0 {
			return "", false
		}
		return sb.String(), true
	}
	for {
		c, err := t.readByte()
		if err != nil {
			if tok, ok := flush(); ok {
				return tok, nil
			}
			return "", io.EOF
		}
		switch {
		case strings.IndexByte(punctuation, c) >= 0:
			if sb.Len() > 0 {
				_ = t.br.UnreadByte()
				return sb.String(), nil
			}
			return string(c), nil
		case c == '[':
			if err := t.skipComment(); err != nil {
				return "", err
			}
		case c == '\'':
			if sb.Len() > 0 {
				_ = t.br.UnreadByte()
				return sb.String(), nil
			}
			return t.readQuoted()
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if tok, ok := flush(); ok {
				return tok, nil
			}
		default:
			sb.WriteByte(c)
		}
	}
}
