// internal/format/format.go

// Package format enumerates the closed set of file formats the
// pipeline can read and write.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for names or files outside the
// closed format set.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format identifies one reader/writer pair.
type Format int

const (
	Auto Format = iota
	Tab
	Nexus
	Fasta
	Phylip
	Ali
	ZipFasta
	ZipPhylip
	ZipAli
	PartitionFinder // write-only
)

var names = map[Format]string{
	Auto:            "auto",
	Tab:             "tab",
	Nexus:           "nexus",
	Fasta:           "fasta",
	Phylip:          "phylip",
	Ali:             "ali",
	ZipFasta:        "zip-fasta",
	ZipPhylip:       "zip-phylip",
	ZipAli:          "zip-ali",
	PartitionFinder: "partitionfinder",
}

func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Parse maps a CLI format name to its Format.
func Parse(s string) (Format, error) {
	for f, n := range names {
		if n == strings.ToLower(s) {
			return f, nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsArchive reports whether the format is a zip container of per-gene
// member files.
func (f Format) IsArchive() bool {
	switch f {
	case ZipFasta, ZipPhylip, ZipAli, PartitionFinder:
		return true
	}
	return false
}

// Member returns the per-gene member format of an archive format.
func (f Format) Member() (Format, bool) {
	switch f {
	case ZipFasta:
		return Fasta, true
	case ZipPhylip:
		return Phylip, true
	case ZipAli:
		return Ali, true
	}
	return Auto, false
}

// Ext returns the conventional file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case Tab:
		return ".tab"
	case Nexus:
		return ".nex"
	case Fasta:
		return ".fas"
	case Phylip:
		return ".phy"
	case Ali:
		return ".ali"
	case ZipFasta, ZipPhylip, ZipAli, PartitionFinder:
		return ".zip"
	}
	return ""
}

// FromExt guesses a non-archive format from a file extension; archives
// cannot be told apart by extension alone.
func FromExt(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".tab", ".tsv", ".txt":
		return Tab, true
	case ".nex", ".nexus":
		return Nexus, true
	case ".fas", ".fasta", ".fa":
		return Fasta, true
	case ".phy", ".phylip":
		return Phylip, true
	case ".ali":
		return Ali, true
	}
	return Auto, false
}
