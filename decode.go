package schema

import (
	"io"
	"unicode/utf8"

	"github.com/lukateras/go-concordium-schema/errors"
	"github.com/lukateras/go-concordium-schema/stream"
)

// DefaultMaxDepth bounds type nesting before a decode fails with
// schema_too_deep. The grammar itself allows unbounded nesting; the bound
// converts stack exhaustion on adversarial input into a reported error.
const DefaultMaxDepth = 1024

// Decoder decodes the schema grammar from a byte source. Every failure
// aborts the decode with no partial result; a Decoder must not be reused
// after an error.
type Decoder struct {
	r        *stream.Reader
	maxDepth int
	depth    int
}

// Option configures a Decoder
type Option func(*Decoder)

// WithMaxDepth overrides the type nesting bound
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		d.maxDepth = n
	}
}

// NewDecoder creates a Decoder reading from src. The source may deliver
// bytes in arbitrarily sized chunks; see the stream package.
func NewDecoder(src io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:        stream.NewReader(src),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeModule decodes a full module schema from src
func DecodeModule(src io.Reader, opts ...Option) (*Module, error) {
	return NewDecoder(src, opts...).DecodeModule()
}

// Position returns the number of bytes consumed so far
func (d *Decoder) Position() int {
	return d.r.Position()
}

// DecodeModule decodes the top-level contract name to Contract mapping
func (d *Decoder) DecodeModule() (*Module, error) {
	contracts, err := decodeMapOf(d, decodeText, decodeContract)
	if err != nil {
		return nil, err
	}
	debugf("decoded module schema: %d contracts, %d bytes", len(contracts), d.r.Position())
	return &Module{Contracts: contracts}, nil
}

// DecodeContract decodes one contract schema: optional state type, optional
// init parameter type, then the receive entry point mapping, in that order.
func (d *Decoder) DecodeContract() (Contract, error) {
	return decodeContract(d)
}

// DecodeType decodes one node of the type grammar, recursing as the tag
// bytes dictate
func (d *Decoder) DecodeType() (Type, error) {
	return decodeType(d)
}

// DecodeFields decodes a struct or enum-variant field shape
func (d *Decoder) DecodeFields() (Fields, error) {
	return decodeFields(d)
}

// decodeFunc decodes one value of type T from the source
type decodeFunc[T any] func(*Decoder) (T, error)

// maxPrealloc caps speculative slice/map allocation so a forged length
// prefix cannot reserve gigabytes before element decoding fails.
const maxPrealloc = 1024

// decodeSeq reads a u32 length prefix and then that many elements in order.
// A zero length yields an empty, non-nil sequence.
func decodeSeq[T any](d *Decoder, elem decodeFunc[T]) ([]T, error) {
	n, err := d.r.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(int(n), maxPrealloc))
	for i := uint32(0); i < n; i++ {
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeMapOf reads a u32 length prefix and then that many key/value pairs.
// Duplicate keys are last-write-wins, matching the source grammar.
func decodeMapOf[K comparable, V any](d *Decoder, key decodeFunc[K], value decodeFunc[V]) (map[K]V, error) {
	n, err := d.r.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, min(int(n), maxPrealloc))
	for i := uint32(0); i < n; i++ {
		k, err := key(d)
		if err != nil {
			return nil, err
		}
		v, err := value(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// decodeOption reads a presence tag: 0 absent, 1 present followed by the
// inner value, anything else unsupported_option_tag.
func decodeOption[T any](d *Decoder, inner decodeFunc[T]) (T, bool, error) {
	var zero T
	tag, err := d.r.ReadByte()
	if err != nil {
		return zero, false, err
	}
	switch tag {
	case 0:
		return zero, false, nil
	case 1:
		v, err := inner(d)
		if err != nil {
			return zero, false, err
		}
		return v, true, nil
	default:
		return zero, false, errors.UnsupportedTag(errors.KindUnsupportedOptionTag, d.r.Position()-1, tag)
	}
}

// decodePair reads a left value then a right value, no prefix
func decodePair[L, R any](d *Decoder, left decodeFunc[L], right decodeFunc[R]) (L, R, error) {
	l, err := left(d)
	if err != nil {
		var zr R
		return l, zr, err
	}
	r, err := right(d)
	return l, r, err
}

// decodeText reads a u32-length byte sequence and validates it as UTF-8.
// Malformed text fails the decode; nothing is substituted.
func decodeText(d *Decoder) (string, error) {
	n, err := d.r.ReadU32()
	if err != nil {
		return "", err
	}
	data, err := d.r.ReadExact(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.MalformedText(d.r.Position()-len(data), data)
	}
	return string(data), nil
}

func decodeSizeLength(d *Decoder) (SizeLength, error) {
	b, err := d.r.ReadU8()
	return SizeLength(b), err
}

func decodeContract(d *Decoder) (Contract, error) {
	state, hasState, err := decodeOption(d, decodeType)
	if err != nil {
		return Contract{}, err
	}
	init, hasInit, err := decodeOption(d, decodeType)
	if err != nil {
		return Contract{}, err
	}
	receive, err := decodeMapOf(d, decodeText, decodeType)
	if err != nil {
		return Contract{}, err
	}
	c := Contract{Receive: receive}
	if hasState {
		c.State = state
	}
	if hasInit {
		c.Init = init
	}
	return c, nil
}

func decodeType(d *Decoder) (Type, error) {
	if d.depth >= d.maxDepth {
		return nil, errors.TooDeep(d.r.Position(), d.maxDepth)
	}
	d.depth++
	defer func() { d.depth-- }()

	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	t := TypeTag(tag)
	if t <= TagDuration {
		return SimpleType(t), nil
	}
	switch t {
	case TagPair:
		left, right, err := decodePair(d, decodeType, decodeType)
		if err != nil {
			return nil, err
		}
		return Pair{Left: left, Right: right}, nil
	case TagList:
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		elem, err := decodeType(d)
		if err != nil {
			return nil, err
		}
		return List{Elem: elem, SizeLength: sl}, nil
	case TagSet:
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		elem, err := decodeType(d)
		if err != nil {
			return nil, err
		}
		return Set{Elem: elem, SizeLength: sl}, nil
	case TagMap:
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		key, value, err := decodePair(d, decodeType, decodeType)
		if err != nil {
			return nil, err
		}
		return Map{Key: key, Value: value, SizeLength: sl}, nil
	case TagArray:
		size, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		elem, err := decodeType(d)
		if err != nil {
			return nil, err
		}
		return Array{Elem: elem, Size: size}, nil
	case TagStruct:
		fields, err := decodeFields(d)
		if err != nil {
			return nil, err
		}
		return Struct{Fields: fields}, nil
	case TagEnum:
		variants, err := decodeSeq(d, decodeEnumVariant)
		if err != nil {
			return nil, err
		}
		return Enum{Variants: variants}, nil
	case TagString:
		// The grammar pins this to the 4-byte width, but the byte is
		// carried unvalidated. Same for ContractName and ReceiveName.
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		return StringType{SizeLength: sl}, nil
	case TagContractName:
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		return ContractName{SizeLength: sl}, nil
	case TagReceiveName:
		sl, err := decodeSizeLength(d)
		if err != nil {
			return nil, err
		}
		return ReceiveName{SizeLength: sl}, nil
	default:
		return nil, errors.UnsupportedTag(errors.KindUnsupportedTypeTag, d.r.Position()-1, tag)
	}
}

func decodeEnumVariant(d *Decoder) (EnumVariant, error) {
	name, fields, err := decodePair(d, decodeText, decodeFields)
	if err != nil {
		return EnumVariant{}, err
	}
	return EnumVariant{Name: name, Fields: fields}, nil
}

func decodeFields(d *Decoder) (Fields, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch FieldsTag(tag) {
	case TagNamed:
		fields, err := decodeSeq(d, decodeNamedField)
		if err != nil {
			return nil, err
		}
		return NamedFields{Fields: fields}, nil
	case TagUnnamed:
		types, err := decodeSeq(d, decodeType)
		if err != nil {
			return nil, err
		}
		return UnnamedFields{Types: types}, nil
	case TagNone:
		return NoFields{}, nil
	default:
		return nil, errors.UnsupportedTag(errors.KindUnsupportedFieldsTag, d.r.Position()-1, tag)
	}
}

func decodeNamedField(d *Decoder) (NamedField, error) {
	name, typ, err := decodePair(d, decodeText, decodeType)
	if err != nil {
		return NamedField{}, err
	}
	return NamedField{Name: name, Type: typ}, nil
}
