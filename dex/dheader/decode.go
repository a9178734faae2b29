package dheader

import (
	"bytes"
	"fmt"

	"dex-chunker/dex/derror"
	"dex-chunker/dex/lbytes"
	"github.com/pkg/errors"
)

// Decode reads the header fields from their fixed offsets. The declared
// header_size is never consulted, and nothing after the magic is validated.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < HeaderSize {
		return nil, derror.FormatError{
			Reason: derror.ErrHeaderTooShort,
			Detail: fmt.Sprintf("expected at least %d bytes, got %d", HeaderSize, len(bs)),
		}
	}
	if !bytes.Equal(bs[:len(MagicPrefix)], MagicPrefix) {
		return nil, derror.FormatError{
			Reason: derror.ErrInvalidMagic,
			Detail: fmt.Sprintf(`expected prefix "%s", got %q`, MagicPrefix, bs[:MagicLength]),
		}
	}

	reader := lbytes.NewBytesReader(bs[:HeaderSize])
	readUint32 := func(offset int64) lbytes.ReadFunction {
		return lbytes.CreateUint32ReadFunction(reader, offset)
	}

	headerInstructions := []lbytes.Instruction{
		{Key: FieldMagic, ReadFunction: lbytes.CreateNBytesReadFunction(reader, 0, MagicLength)},
		{Key: FieldChecksum, ReadFunction: readUint32(8)},
		{Key: FieldSignature, ReadFunction: lbytes.CreateHexReadFunction(reader, 12, SignatureLength)},
		{Key: FieldFileSize, ReadFunction: readUint32(32)},
		{Key: FieldHeaderSize, ReadFunction: readUint32(36)},
		{Key: FieldEndianTag, ReadFunction: readUint32(40)},
		{Key: FieldLinkSize, ReadFunction: readUint32(44)},
		{Key: FieldLinkOffset, ReadFunction: readUint32(48)},
		{Key: FieldMapOffset, ReadFunction: readUint32(52)},
		{Key: FieldStringIDsSize, ReadFunction: readUint32(56)},
		{Key: FieldStringIDsOffset, ReadFunction: readUint32(60)},
		{Key: FieldTypeIDsSize, ReadFunction: readUint32(64)},
		{Key: FieldTypeIDsOffset, ReadFunction: readUint32(68)},
		{Key: FieldProtoIDsSize, ReadFunction: readUint32(72)},
		{Key: FieldProtoIDsOffset, ReadFunction: readUint32(76)},
		{Key: FieldFieldIDsSize, ReadFunction: readUint32(80)},
		{Key: FieldFieldIDsOffset, ReadFunction: readUint32(84)},
		{Key: FieldMethodIDsSize, ReadFunction: readUint32(88)},
		{Key: FieldMethodIDsOffset, ReadFunction: readUint32(92)},
		{Key: FieldClassDefsSize, ReadFunction: readUint32(96)},
		{Key: FieldClassDefsOffset, ReadFunction: readUint32(100)},
		{Key: FieldDataSize, ReadFunction: readUint32(104)},
		{Key: FieldDataOffset, ReadFunction: readUint32(108)},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "dheader.Decode error")
	}

	return header, nil
}
