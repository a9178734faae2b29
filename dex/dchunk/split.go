package dchunk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dex-chunker/dex/derror"
	"dex-chunker/ds"
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

// ChunkFileName names the index-th (1-based) chunk of sourcePath's data
// section.
func ChunkFileName(sourcePath string, index int) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_data_section_chunk_%d.bin", base, index)
}

// ReadSection reads size bytes at offset, clamped to srcSize. A range that
// starts or runs past the end of the source yields only the bytes available.
func ReadSection(src io.ReaderAt, srcSize int64, offset int64, size int64) ([]byte, error) {
	if size <= 0 || offset >= srcSize {
		return []byte{}, nil
	}
	end := min(offset+size, srcSize)
	bs := make([]byte, end-offset)
	n, err := src.ReadAt(bs, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return bs[:n], nil
}

// Split writes the data section of sourceName into zero-padded chunk files
// inside outputDir, in ascending index order. Chunks written before a
// failure are returned alongside the error and left on disk.
func (s *Splitter) Split(
	src io.ReaderAt,
	srcSize int64,
	sourceName string,
	dataOffset uint32,
	dataSize uint32,
	outputDir string,
) ([]Chunk, error) {
	log := s.logger()
	chunkSize := s.chunkSize()

	dataSection, err := ReadSection(src, srcSize, int64(dataOffset), int64(dataSize))
	if err != nil {
		return nil, derror.IOError{Op: "read", Path: sourceName, Err: err}
	}
	if len(dataSection) < int(dataSize) {
		log.Warning("Data section runs past the end of the file",
			"path", sourceName,
			"data_offset", dataOffset,
			"data_size", dataSize,
			"available", len(dataSection),
		)
	}

	pieces := ds.MakeChunks(dataSection, chunkSize)
	log.Debug("Splitting data section", "path", sourceName, "chunks", len(pieces))

	chunks := make([]Chunk, 0, len(pieces))
	for i, piece := range pieces {
		chunk := Chunk{
			Index:  i + 1,
			Length: len(piece),
			Path:   filepath.Join(outputDir, ChunkFileName(sourceName, i+1)),
		}
		if err := os.WriteFile(chunk.Path, ds.PadRight(piece, chunkSize, 0), 0644); err != nil {
			return chunks, derror.IOError{Op: "write", Path: chunk.Path, Err: err}
		}
		log.Info("Data section chunk saved", "index", chunk.Index, "path", chunk.Path, "size", chunk.Length)
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}

// SplitFile maps sourcePath read-only for the duration of the split.
func (s *Splitter) SplitFile(sourcePath string, dataOffset uint32, dataSize uint32, outputDir string) ([]Chunk, error) {
	reader, err := mmap.Open(sourcePath)
	if err != nil {
		return nil, derror.IOError{Op: "open", Path: sourcePath, Err: err}
	}
	defer func() { _ = reader.Close() }()

	return s.Split(reader, int64(reader.Len()), sourcePath, dataOffset, dataSize, outputDir)
}
