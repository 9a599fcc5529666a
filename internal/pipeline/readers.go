// internal/pipeline/readers.go
package pipeline

import (
	"bytes"
	"path/filepath"
	"strings"

	"seqcat-core/align"
	"seqcat-core/formats/ali"
	"seqcat-core/formats/fasta"
	"seqcat-core/formats/nexus"
	"seqcat-core/formats/phylip"
	"seqcat-core/formats/tabfile"
	"seqcat/internal/archive"
	"seqcat/internal/format"
)

// stem names the gene of a single-file single-gene input.
func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	RegisterReader(format.Tab, func(_ string, data []byte, _ Options) (*align.Alignment, error) {
		return tabfile.Read(bytes.NewReader(data))
	})
	RegisterReader(format.Nexus, func(_ string, data []byte, _ Options) (*align.Alignment, error) {
		return nexus.Read(bytes.NewReader(data))
	})
	RegisterReader(format.Fasta, func(name string, data []byte, _ Options) (*align.Alignment, error) {
		return fasta.Read(bytes.NewReader(data), stem(name))
	})
	RegisterReader(format.Phylip, func(name string, data []byte, _ Options) (*align.Alignment, error) {
		return phylip.Read(bytes.NewReader(data), stem(name))
	})
	RegisterReader(format.Ali, func(name string, data []byte, _ Options) (*align.Alignment, error) {
		return ali.Read(bytes.NewReader(data), stem(name))
	})
	for _, zf := range []format.Format{format.ZipFasta, format.ZipPhylip, format.ZipAli} {
		member, _ := zf.Member()
		m := member
		RegisterReader(zf, func(_ string, data []byte, opts Options) (*align.Alignment, error) {
			return archive.ReadZip(data, m, archive.Options{Strict: opts.Strict})
		})
	}
}
