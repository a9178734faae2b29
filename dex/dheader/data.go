package dheader

type (
	Header struct {
		Magic           []byte `json:"magic"`
		Checksum        uint32 `json:"checksum"`
		Signature       string `json:"signature"`
		FileSize        uint32 `json:"file_size"`
		HeaderSize      uint32 `json:"header_size"`
		EndianTag       uint32 `json:"endian_tag"`
		LinkSize        uint32 `json:"link_size"`
		LinkOffset      uint32 `json:"link_offset"`
		MapOffset       uint32 `json:"map_offset"`
		StringIDsSize   uint32 `json:"string_ids_size"`
		StringIDsOffset uint32 `json:"string_ids_offset"`
		TypeIDsSize     uint32 `json:"type_ids_size"`
		TypeIDsOffset   uint32 `json:"type_ids_offset"`
		ProtoIDsSize    uint32 `json:"proto_ids_size"`
		ProtoIDsOffset  uint32 `json:"proto_ids_offset"`
		FieldIDsSize    uint32 `json:"field_ids_size"`
		FieldIDsOffset  uint32 `json:"field_ids_offset"`
		MethodIDsSize   uint32 `json:"method_ids_size"`
		MethodIDsOffset uint32 `json:"method_ids_offset"`
		ClassDefsSize   uint32 `json:"class_defs_size"`
		ClassDefsOffset uint32 `json:"class_defs_offset"`
		DataSize        uint32 `json:"data_size"`
		DataOffset      uint32 `json:"data_offset"`
	}
)

const (
	HeaderSize      = 112
	MagicLength     = 8
	SignatureLength = 20
)

// MagicPrefix is the only part of the magic that is checked; the version
// digits after it are accepted as-is.
var MagicPrefix = []byte("dex")

// Field keys in header layout order.
const (
	FieldMagic           = "magic"
	FieldChecksum        = "checksum"
	FieldSignature       = "signature"
	FieldFileSize        = "file_size"
	FieldHeaderSize      = "header_size"
	FieldEndianTag       = "endian_tag"
	FieldLinkSize        = "link_size"
	FieldLinkOffset      = "link_offset"
	FieldMapOffset       = "map_offset"
	FieldStringIDsSize   = "string_ids_size"
	FieldStringIDsOffset = "string_ids_offset"
	FieldTypeIDsSize     = "type_ids_size"
	FieldTypeIDsOffset   = "type_ids_offset"
	FieldProtoIDsSize    = "proto_ids_size"
	FieldProtoIDsOffset  = "proto_ids_offset"
	FieldFieldIDsSize    = "field_ids_size"
	FieldFieldIDsOffset  = "field_ids_offset"
	FieldMethodIDsSize   = "method_ids_size"
	FieldMethodIDsOffset = "method_ids_offset"
	FieldClassDefsSize   = "class_defs_size"
	FieldClassDefsOffset = "class_defs_offset"
	FieldDataSize        = "data_size"
	FieldDataOffset      = "data_offset"
)
