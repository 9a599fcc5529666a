// internal/detect/detect.go

// Package detect sniffs input files to determine their format, the way
// a user-facing converter must when no format flag is given.
package detect

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"seqcat/internal/format"
)

var phylipHeader = regexp.MustCompile(`^\s*\d+\s+\d+\s*$`)

// Sniff determines the format of the file at path. Zip archives are
// opened and classified by the extension of their first member.
func Sniff(fs afero.Fs, path string) (format.Format, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return format.Auto, err
	}
	return SniffBytes(path, data)
}

// SniffBytes classifies raw file content. The path is used only for
// error context.
func SniffBytes(path string, data []byte) (format.Format, error) {
	if len(data) == 0 {
		return format.Auto, fmt.Errorf("%w: %s is empty", format.ErrUnsupportedFormat, path)
	}
	if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return sniffZip(path, data)
	}
	firstLine := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		firstLine = data[:i]
	}
	line := strings.TrimRight(string(firstLine), "\r")
	switch {
	case bytes.HasPrefix(data, []byte("#NEXUS")):
		return format.Nexus, nil
	case data[0] == '>':
		return format.Fasta, nil
	case data[0] == '#':
		return format.Ali, nil
	case phylipHeader.MatchString(line):
		return format.Phylip, nil
	case strings.Contains(line, "\t"):
		return format.Tab, nil
	}
	return format.Auto, fmt.Errorf("%w: cannot determine the format of %s", format.ErrUnsupportedFormat, path)
}

func sniffZip(path string, data []byte) (format.Format, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return format.Auto, fmt.Errorf("%s: %w", path, err)
	}
	for _, f := range zr.File {
		switch member, _ := format.FromExt(filepath.Ext(f.Name)); member {
		case format.Fasta:
			return format.ZipFasta, nil
		case format.Phylip:
			return format.ZipPhylip, nil
		case format.Ali:
			return format.ZipAli, nil
		}
	}
	return format.Auto, fmt.Errorf("%w: %s has no recognizable members", format.ErrUnsupportedFormat, path)
}
