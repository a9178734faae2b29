package dheader

import (
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"
)

// ToLinkedHashMap keeps the fields in header layout order, which a plain
// map would lose when dumped.
func ToLinkedHashMap(header Header) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set(FieldMagic, fmt.Sprintf("%q", header.Magic))
	lhm.Set(FieldChecksum, header.Checksum)
	lhm.Set(FieldSignature, header.Signature)
	lhm.Set(FieldFileSize, header.FileSize)
	lhm.Set(FieldHeaderSize, header.HeaderSize)
	lhm.Set(FieldEndianTag, header.EndianTag)
	lhm.Set(FieldLinkSize, header.LinkSize)
	lhm.Set(FieldLinkOffset, header.LinkOffset)
	lhm.Set(FieldMapOffset, header.MapOffset)
	lhm.Set(FieldStringIDsSize, header.StringIDsSize)
	lhm.Set(FieldStringIDsOffset, header.StringIDsOffset)
	lhm.Set(FieldTypeIDsSize, header.TypeIDsSize)
	lhm.Set(FieldTypeIDsOffset, header.TypeIDsOffset)
	lhm.Set(FieldProtoIDsSize, header.ProtoIDsSize)
	lhm.Set(FieldProtoIDsOffset, header.ProtoIDsOffset)
	lhm.Set(FieldFieldIDsSize, header.FieldIDsSize)
	lhm.Set(FieldFieldIDsOffset, header.FieldIDsOffset)
	lhm.Set(FieldMethodIDsSize, header.MethodIDsSize)
	lhm.Set(FieldMethodIDsOffset, header.MethodIDsOffset)
	lhm.Set(FieldClassDefsSize, header.ClassDefsSize)
	lhm.Set(FieldClassDefsOffset, header.ClassDefsOffset)
	lhm.Set(FieldDataSize, header.DataSize)
	lhm.Set(FieldDataOffset, header.DataOffset)
	return lhm
}

// Dump writes one "key: value" line per field under a title naming the file.
func Dump(w io.Writer, name string, header Header) error {
	if _, err := fmt.Fprintf(w, "\nDEX Header Information for %s:\n", name); err != nil {
		return err
	}
	lhm := ToLinkedHashMap(header)
	for _, key := range lhm.Keys() {
		value, _ := lhm.Get(key)
		if _, err := fmt.Fprintf(w, "%s: %v\n", key, value); err != nil {
			return err
		}
	}
	return nil
}
