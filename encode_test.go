package schema_test

import (
	"encoding/binary"
	"sort"

	schema "github.com/lukateras/go-concordium-schema"
)

// Test-only encoder for the schema grammar. Encoding is not part of the
// library surface; these helpers exist to build wire bytes for round-trip
// and scenario tests.

func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func appendText(b []byte, s string) []byte {
	b = appendU32(b, uint32(len(s)))
	return append(b, s...)
}

func appendType(b []byte, t schema.Type) []byte {
	switch v := t.(type) {
	case schema.SimpleType:
		return append(b, byte(v))
	case schema.Pair:
		b = append(b, byte(schema.TagPair))
		b = appendType(b, v.Left)
		return appendType(b, v.Right)
	case schema.List:
		b = append(b, byte(schema.TagList), byte(v.SizeLength))
		return appendType(b, v.Elem)
	case schema.Set:
		b = append(b, byte(schema.TagSet), byte(v.SizeLength))
		return appendType(b, v.Elem)
	case schema.Map:
		b = append(b, byte(schema.TagMap), byte(v.SizeLength))
		b = appendType(b, v.Key)
		return appendType(b, v.Value)
	case schema.Array:
		b = append(b, byte(schema.TagArray))
		b = appendU32(b, v.Size)
		return appendType(b, v.Elem)
	case schema.Struct:
		b = append(b, byte(schema.TagStruct))
		return appendFields(b, v.Fields)
	case schema.Enum:
		b = append(b, byte(schema.TagEnum))
		b = appendU32(b, uint32(len(v.Variants)))
		for _, variant := range v.Variants {
			b = appendText(b, variant.Name)
			b = appendFields(b, variant.Fields)
		}
		return b
	case schema.StringType:
		return append(b, byte(schema.TagString), byte(v.SizeLength))
	case schema.ContractName:
		return append(b, byte(schema.TagContractName), byte(v.SizeLength))
	case schema.ReceiveName:
		return append(b, byte(schema.TagReceiveName), byte(v.SizeLength))
	default:
		panic("appendType: unhandled type")
	}
}

func appendFields(b []byte, f schema.Fields) []byte {
	switch v := f.(type) {
	case schema.NamedFields:
		b = append(b, byte(schema.TagNamed))
		b = appendU32(b, uint32(len(v.Fields)))
		for _, field := range v.Fields {
			b = appendText(b, field.Name)
			b = appendType(b, field.Type)
		}
		return b
	case schema.UnnamedFields:
		b = append(b, byte(schema.TagUnnamed))
		b = appendU32(b, uint32(len(v.Types)))
		for _, t := range v.Types {
			b = appendType(b, t)
		}
		return b
	case schema.NoFields:
		return append(b, byte(schema.TagNone))
	default:
		panic("appendFields: unhandled fields")
	}
}

func appendOptionType(b []byte, t schema.Type) []byte {
	if t == nil {
		return append(b, 0)
	}
	b = append(b, 1)
	return appendType(b, t)
}

func appendContract(b []byte, c schema.Contract) []byte {
	b = appendOptionType(b, c.State)
	b = appendOptionType(b, c.Init)
	b = appendU32(b, uint32(len(c.Receive)))
	names := make([]string, 0, len(c.Receive))
	for name := range c.Receive {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b = appendText(b, name)
		b = appendType(b, c.Receive[name])
	}
	return b
}

func encodeModule(m *schema.Module) []byte {
	b := appendU32(nil, uint32(len(m.Contracts)))
	names := make([]string, 0, len(m.Contracts))
	for name := range m.Contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b = appendText(b, name)
		b = appendContract(b, m.Contracts[name])
	}
	return b
}
