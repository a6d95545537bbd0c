package schema

import (
	"fmt"
	"strings"
)

var simpleTypeNames = [...]string{
	TagUnit:            "Unit",
	TagBool:            "Bool",
	TagU8:              "U8",
	TagU16:             "U16",
	TagU32:             "U32",
	TagU64:             "U64",
	TagI8:              "I8",
	TagI16:             "I16",
	TagI32:             "I32",
	TagI64:             "I64",
	TagAmount:          "Amount",
	TagAccountAddress:  "AccountAddress",
	TagContractAddress: "ContractAddress",
	TagTimestamp:       "Timestamp",
	TagDuration:        "Duration",
}

// String returns the leaf's grammar name
func (s SimpleType) String() string {
	if int(s) < len(simpleTypeNames) {
		return simpleTypeNames[s]
	}
	return fmt.Sprintf("SimpleType(%d)", byte(s))
}

// FormatType renders a decoded type tree on one line, for logs and tooling
func FormatType(t Type) string {
	switch v := t.(type) {
	case SimpleType:
		return v.String()
	case Pair:
		return fmt.Sprintf("Pair(%s, %s)", FormatType(v.Left), FormatType(v.Right))
	case List:
		return fmt.Sprintf("List<%s>", FormatType(v.Elem))
	case Set:
		return fmt.Sprintf("Set<%s>", FormatType(v.Elem))
	case Map:
		return fmt.Sprintf("Map<%s, %s>", FormatType(v.Key), FormatType(v.Value))
	case Array:
		return fmt.Sprintf("Array[%d]<%s>", v.Size, FormatType(v.Elem))
	case Struct:
		if suffix := FormatFields(v.Fields); suffix != "" {
			return "Struct " + suffix
		}
		return "Struct"
	case Enum:
		var b strings.Builder
		b.WriteString("Enum {")
		for i, variant := range v.Variants {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(variant.Name)
			if suffix := FormatFields(variant.Fields); suffix != "" {
				b.WriteByte(' ')
				b.WriteString(suffix)
			}
		}
		b.WriteByte('}')
		return b.String()
	case StringType:
		return "String"
	case ContractName:
		return "ContractName"
	case ReceiveName:
		return "ReceiveName"
	case nil:
		return "<none>"
	default:
		return fmt.Sprintf("<unknown %T>", t)
	}
}

// FormatFields renders a field shape: "{name: T, ...}" for named fields,
// "(T, ...)" for unnamed, and "" for none.
func FormatFields(f Fields) string {
	switch v := f.(type) {
	case NamedFields:
		var b strings.Builder
		b.WriteByte('{')
		for i, field := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(field.Name)
			b.WriteString(": ")
			b.WriteString(FormatType(field.Type))
		}
		b.WriteByte('}')
		return b.String()
	case UnnamedFields:
		var b strings.Builder
		b.WriteByte('(')
		for i, t := range v.Types {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(FormatType(t))
		}
		b.WriteByte(')')
		return b.String()
	case NoFields:
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprintf("<unknown %T>", f)
	}
}
