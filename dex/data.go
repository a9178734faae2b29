// Package dex decodes DEX file headers and splits their data sections into
// fixed-size chunk files.
package dex

import (
	"dex-chunker/dex/dchunk"
	"dex-chunker/dex/dheader"
)

const DefaultPattern = "classes*.dex"

type (
	// Result is the outcome of processing one file. Header is nil when the
	// file could not be decoded; Chunks holds whatever was written before Err.
	Result struct {
		Path   string          `json:"path"`
		Header *dheader.Header `json:"header,omitempty"`
		Chunks []dchunk.Chunk  `json:"chunks"`
		Err    error           `json:"-"`
	}
	// HeaderFunc receives every successfully decoded header before its data
	// section is split.
	HeaderFunc func(path string, header dheader.Header)
)
