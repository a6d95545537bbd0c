package schema

// Concordium V0 module schema - binary type grammar.
// The grammar describes contract state and entry point parameter shapes;
// it says nothing about actual contract values.

// TypeTag is the one-byte discriminant selecting a Type variant.
type TypeTag byte

const (
	TagUnit TypeTag = iota
	TagBool
	TagU8
	TagU16
	TagU32
	TagU64
	TagI8
	TagI16
	TagI32
	TagI64
	TagAmount
	TagAccountAddress
	TagContractAddress
	TagTimestamp
	TagDuration
	TagPair
	TagList
	TagSet
	TagMap
	TagArray
	TagStruct
	TagEnum
	TagString
	TagContractName
	TagReceiveName
)

// FieldsTag is the one-byte discriminant selecting a Fields variant.
type FieldsTag byte

const (
	TagNamed FieldsTag = iota
	TagUnnamed
	TagNone
)

// SizeLength selects how runtime values of a collection type encode their
// length prefix. It is decoded metadata only and never consulted while
// decoding the schema itself. The decoder stores the raw discriminant
// without range validation.
type SizeLength uint8

const (
	SizeU8  SizeLength = iota // 1-byte prefix
	SizeU16                   // 2-byte prefix
	SizeU32                   // 4-byte prefix
	SizeU64                   // 8-byte prefix
)

// Width returns the prefix width in bytes, or 0 when the discriminant is
// outside the enumerated range.
func (s SizeLength) Width() int {
	switch s {
	case SizeU8:
		return 1
	case SizeU16:
		return 2
	case SizeU32:
		return 4
	case SizeU64:
		return 8
	}
	return 0
}

// Type is one node of the schema tree
type Type interface {
	isType()
}

// SimpleType is a payload-free leaf scalar, identified by its tag.
type SimpleType TypeTag

const (
	Unit            = SimpleType(TagUnit)
	Bool            = SimpleType(TagBool)
	U8              = SimpleType(TagU8)
	U16             = SimpleType(TagU16)
	U32             = SimpleType(TagU32)
	U64             = SimpleType(TagU64)
	I8              = SimpleType(TagI8)
	I16             = SimpleType(TagI16)
	I32             = SimpleType(TagI32)
	I64             = SimpleType(TagI64)
	Amount          = SimpleType(TagAmount)
	AccountAddress  = SimpleType(TagAccountAddress)
	ContractAddress = SimpleType(TagContractAddress)
	Timestamp       = SimpleType(TagTimestamp)
	Duration        = SimpleType(TagDuration)
)

func (SimpleType) isType() {}

// Pair is an ordered two-element product
type Pair struct {
	Left  Type
	Right Type
}

func (Pair) isType() {}

// List is a variable-length homogeneous sequence
type List struct {
	Elem       Type
	SizeLength SizeLength
}

func (List) isType() {}

// Set is a variable-length collection of unique elements
type Set struct {
	Elem       Type
	SizeLength SizeLength
}

func (Set) isType() {}

// Map is a variable-length key/value collection
type Map struct {
	Key        Type
	Value      Type
	SizeLength SizeLength
}

func (Map) isType() {}

// Array is a fixed-length homogeneous sequence
type Array struct {
	Elem Type
	Size uint32
}

func (Array) isType() {}

// Struct is a product type with named, unnamed, or no fields
type Struct struct {
	Fields Fields
}

func (Struct) isType() {}

// EnumVariant is one case of an Enum. Variant order is the runtime
// discriminant mapping and must be preserved exactly as decoded.
type EnumVariant struct {
	Name   string
	Fields Fields
}

// Enum is a sum type with an ordered set of variants
type Enum struct {
	Variants []EnumVariant
}

func (Enum) isType() {}

// StringType is UTF-8 text. The grammar pins the size length to the 4-byte
// width, but the decoded byte is carried as-is (see Decoder docs).
type StringType struct {
	SizeLength SizeLength
}

func (StringType) isType() {}

// ContractName names an init function
type ContractName struct {
	SizeLength SizeLength
}

func (ContractName) isType() {}

// ReceiveName names a receive entry point
type ReceiveName struct {
	SizeLength SizeLength
}

func (ReceiveName) isType() {}

// Fields describes the member shape of a Struct or EnumVariant
type Fields interface {
	isFields()
}

// NamedField is one (name, type) member of NamedFields
type NamedField struct {
	Type Type
	Name string
}

// NamedFields is an ordered list of named members
type NamedFields struct {
	Fields []NamedField
}

func (NamedFields) isFields() {}

// UnnamedFields is an ordered list of positional members
type UnnamedFields struct {
	Types []Type
}

func (UnnamedFields) isFields() {}

// NoFields marks a fieldless struct or variant
type NoFields struct{}

func (NoFields) isFields() {}

// Contract is the schema of a single smart contract: its persisted state
// shape and the parameter shapes of its init and receive entry points.
// State and Init are nil when the contract declares none.
type Contract struct {
	State   Type
	Init    Type
	Receive map[string]Type
}

// Module maps contract names to their schemas
type Module struct {
	Contracts map[string]Contract
}
