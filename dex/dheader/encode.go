package dheader

import (
	"encoding/hex"

	"dex-chunker/dex/lbytes"
)

// Encode lays the header back out as HeaderSize bytes. A signature that is
// not valid hex is written as zeroes.
func Encode(header Header) []byte {
	signature, err := hex.DecodeString(header.Signature)
	if err != nil {
		signature = nil
	}

	bs := make([]byte, 0, HeaderSize)
	bs = append(bs, lbytes.EncodeFixedBytes(header.Magic, MagicLength)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.Checksum)...)
	bs = append(bs, lbytes.EncodeFixedBytes(signature, SignatureLength)...)
	for _, value := range []uint32{
		header.FileSize,
		header.HeaderSize,
		header.EndianTag,
		header.LinkSize,
		header.LinkOffset,
		header.MapOffset,
		header.StringIDsSize,
		header.StringIDsOffset,
		header.TypeIDsSize,
		header.TypeIDsOffset,
		header.ProtoIDsSize,
		header.ProtoIDsOffset,
		header.FieldIDsSize,
		header.FieldIDsOffset,
		header.MethodIDsSize,
		header.MethodIDsOffset,
		header.ClassDefsSize,
		header.ClassDefsOffset,
		header.DataSize,
		header.DataOffset,
	} {
		bs = append(bs, lbytes.EncodeValueUint32(value)...)
	}
	return bs
}
