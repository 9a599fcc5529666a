// internal/pipeline/registry.go
package pipeline

import (
	"fmt"

	"seqcat-core/align"
	"seqcat-core/transform"
	"seqcat/internal/format"
)

// ReaderFunc parses raw input bytes into an alignment. The name is the
// input path, used for gene naming and error context.
type ReaderFunc func(name string, data []byte, opts Options) (*align.Alignment, error)

// WriterFunc serializes the transform result. Writers return the full
// output so the pipeline can write the file in one step, after
// everything has succeeded.
type WriterFunc func(res transform.Result, opts Options) ([]byte, error)

// Reader/writer registries (format → handler), populated in init from
// readers.go and writers.go.
var (
	readers = map[format.Format]ReaderFunc{}
	writers = map[format.Format]WriterFunc{}
)

func RegisterReader(f format.Format, fn ReaderFunc) { readers[f] = fn }
func RegisterWriter(f format.Format, fn WriterFunc) { writers[f] = fn }

func read(f format.Format, name string, data []byte, opts Options) (*align.Alignment, error) {
	fn, ok := readers[f]
	if !ok {
		return nil, fmt.Errorf("%w: no reader for %v", format.ErrUnsupportedFormat, f)
	}
	return fn(name, data, opts)
}

func write(f format.Format, res transform.Result, opts Options) ([]byte, error) {
	fn, ok := writers[f]
	if !ok {
		return nil, fmt.Errorf("%w: no writer for %v", format.ErrUnsupportedFormat, f)
	}
	return fn(res, opts)
}
