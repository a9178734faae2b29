package dchunk

import (
	"github.com/go-stdlog/stdlog"
)

const DefaultChunkSize = 512_000

type (
	// Chunk describes one written chunk file. Length is the number of data
	// section bytes it holds; the file itself is always ChunkSize bytes.
	Chunk struct {
		Index  int    `json:"index"`
		Length int    `json:"length"`
		Path   string `json:"path"`
	}
	Splitter struct {
		// ChunkSize is the size of every written file. Zero means
		// DefaultChunkSize.
		ChunkSize int
		// Logger receives one line per written chunk. If unset, no logs
		// will be generated.
		Logger stdlog.Logger
	}
)

func (s *Splitter) chunkSize() int {
	if s.ChunkSize > 0 {
		return s.ChunkSize
	}
	return DefaultChunkSize
}

func (s *Splitter) logger() stdlog.Logger {
	if s.Logger != nil {
		return s.Logger.Named("dchunk")
	}
	return stdlog.Discard
}
