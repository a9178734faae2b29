package lbytes

import (
	"encoding/binary"
)

func EncodeValueUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

// EncodeFixedBytes copies value into a zeroed slice of exactly n bytes,
// truncating or padding as needed.
func EncodeFixedBytes(value []byte, n int) []byte {
	bs := make([]byte, n)
	copy(bs, value)
	return bs
}
