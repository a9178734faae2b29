package lbytes

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadUint32At reads a little-endian uint32 at the absolute offset, leaving
// the reader's cursor untouched.
func (b *Reader) ReadUint32At(offset int64) (uint32, error) {
	bs, err := b.ReadBytesAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	bs := make([]byte, n)
	// same early return as ReadBytes: a zero-length read at the end of the
	// buffer must not report EOF
	if n == 0 {
		return bs, nil
	}
	_, err := b.ReadAt(bs, offset)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadHexAt(offset int64, n int) (string, error) {
	bs, err := b.ReadBytesAt(offset, n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bs), nil
}
