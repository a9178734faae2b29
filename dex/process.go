package dex

import (
	"path/filepath"
	"sort"

	"dex-chunker/dex/dchunk"
	"dex-chunker/dex/derror"
	"dex-chunker/dex/dheader"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/mmap"
)

// Discover lists the files in dir matching pattern, sorted by name.
func Discover(dir string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, `Discover error with pattern "%s"`, pattern)
	}
	sort.Strings(paths)
	return paths, nil
}

// DecodeFile reads and decodes the header at the start of the file at path.
func DecodeFile(path string) (*dheader.Header, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, derror.IOError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = reader.Close() }()

	bs := make([]byte, min(reader.Len(), dheader.HeaderSize))
	if len(bs) > 0 {
		if _, err := reader.ReadAt(bs, 0); err != nil {
			return nil, derror.IOError{Op: "read", Path: path, Err: err}
		}
	}

	header, err := dheader.Decode(bs)
	if err != nil {
		return nil, derror.WithPath(err, path)
	}
	return header, nil
}

// ProcessFile decodes the header of the file at path and splits its data
// section into outputDir.
func ProcessFile(path string, outputDir string, splitter *dchunk.Splitter, onHeader HeaderFunc) Result {
	result := Result{Path: path, Chunks: []dchunk.Chunk{}}
	if splitter == nil {
		splitter = &dchunk.Splitter{}
	}

	header, err := DecodeFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Header = header
	if onHeader != nil {
		onHeader(path, *header)
	}

	chunks, err := splitter.SplitFile(path, header.DataOffset, header.DataSize, outputDir)
	result.Chunks = append(result.Chunks, chunks...)
	result.Err = err
	return result
}

// ProcessAll handles every path in order. A failing file never stops the
// ones after it; its error stays in its Result.
func ProcessAll(paths []string, outputDir string, splitter *dchunk.Splitter, onHeader HeaderFunc) []Result {
	return lo.Map(
		paths,
		func(path string, _ int) Result {
			return ProcessFile(path, outputDir, splitter, onHeader)
		},
	)
}

func Failed(results []Result) []Result {
	return lo.Filter(
		results,
		func(result Result, _ int) bool {
			return result.Err != nil
		},
	)
}
