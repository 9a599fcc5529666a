// internal/pipeline/writers.go
package pipeline

import (
	"archive/zip"
	"bytes"
	"io"

	"seqcat-core/align"
	"seqcat-core/formats/ali"
	"seqcat-core/formats/fasta"
	"seqcat-core/formats/nexus"
	"seqcat-core/formats/phylip"
	"seqcat-core/formats/tabfile"
	"seqcat-core/partition"
	"seqcat-core/transform"
	"seqcat/internal/archive"
	"seqcat/internal/format"
)

func buffered(fn func(w io.Writer, a *align.Alignment) error) WriterFunc {
	return func(res transform.Result, _ Options) ([]byte, error) {
		var buf bytes.Buffer
		if err := fn(&buf, res.Alignment); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func init() {
	RegisterWriter(format.Tab, buffered(tabfile.Write))
	RegisterWriter(format.Nexus, buffered(nexus.Write))
	RegisterWriter(format.Fasta, buffered(fasta.Write))
	RegisterWriter(format.Phylip, buffered(phylip.Write))
	RegisterWriter(format.Ali, buffered(ali.Write))
	for _, zf := range []format.Format{format.ZipFasta, format.ZipPhylip, format.ZipAli} {
		member, _ := zf.Member()
		m := member
		RegisterWriter(zf, func(res transform.Result, _ Options) ([]byte, error) {
			var buf bytes.Buffer
			if err := archive.WriteZip(&buf, res.Alignment, m); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
	}
	RegisterWriter(format.PartitionFinder, func(res transform.Result, opts Options) ([]byte, error) {
		members, err := partition.Export(res.Alignment, opts.Partition)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		for _, mb := range members {
			w, err := zw.Create(mb.Name)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(mb.Data); err != nil {
				return nil, err
			}
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}
