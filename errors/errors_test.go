package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindUnsupportedTypeTag,
				Path:   []string{"counter", "receive", "increment"},
				Value:  byte(0x7f),
				Offset: 42,
				Detail: "tag byte 0x7f",
			},
			contains: []string{"[decode]", "unsupported_type_tag", "counter.receive.increment", "offset 42", "127", "tag byte 0x7f"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindUnexpectedEOF,
			},
			contains: []string{"[read]", "unexpected_eof"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseExtract,
				Kind:   KindInvalidModule,
				Detail: "compile failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[extract]", "invalid_module", "compile failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseExtract,
		Kind:  KindInvalidModule,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedFieldsTag,
		Path:   []string{"foo"},
		Value:  byte(0xff),
		Offset: 7,
	}

	// Matches on Phase+Kind regardless of other context
	if !errors.Is(err, New(PhaseDecode, KindUnsupportedFieldsTag).Build()) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, New(PhaseDecode, KindUnsupportedTypeTag).Build()) {
		t.Error("unexpected match on different kind")
	}
	if errors.Is(err, New(PhaseRead, KindUnsupportedFieldsTag).Build()) {
		t.Error("unexpected match on different phase")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("unexpected match on non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseRead, KindUnexpectedEOF).
		Path("mod", "state").
		Offset(9).
		Value(byte(3)).
		Detail("wanted %d bytes", 4).
		Cause(cause).
		Build()

	if err.Phase != PhaseRead || err.Kind != KindUnexpectedEOF {
		t.Errorf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[0] != "mod" {
		t.Errorf("path: got %v", err.Path)
	}
	if err.Offset != 9 {
		t.Errorf("offset: got %d", err.Offset)
	}
	if err.Detail != "wanted 4 bytes" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Is")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	eof := UnexpectedEOF(PhaseRead, 10, 4, 2)
	if eof.Kind != KindUnexpectedEOF || eof.Offset != 10 {
		t.Errorf("UnexpectedEOF: %v", eof)
	}
	if !strings.Contains(eof.Error(), "wanted 4 bytes") {
		t.Errorf("UnexpectedEOF message: %q", eof.Error())
	}

	tag := UnsupportedTag(KindUnsupportedOptionTag, 3, 0x17)
	if tag.Kind != KindUnsupportedOptionTag {
		t.Errorf("UnsupportedTag kind: %s", tag.Kind)
	}
	if got, ok := tag.Value.(byte); !ok || got != 0x17 {
		t.Errorf("UnsupportedTag value: %v", tag.Value)
	}

	bad := MalformedText(5, []byte{0xff, 0xfe})
	if bad.Kind != KindMalformedText {
		t.Errorf("MalformedText kind: %s", bad.Kind)
	}
	if !strings.Contains(bad.Error(), "fffe") {
		t.Errorf("MalformedText message: %q", bad.Error())
	}

	deep := TooDeep(100, 64)
	if deep.Kind != KindSchemaTooDeep {
		t.Errorf("TooDeep kind: %s", deep.Kind)
	}

	none := NoSchema([]string{"concordium-schema-v1"})
	if none.Kind != KindNoSchema || none.Phase != PhaseExtract {
		t.Errorf("NoSchema: %v", none)
	}
}

func TestMalformedText_LongPreviewTruncated(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0xff
	}
	err := MalformedText(0, data)
	// 32 bytes hex-encoded is 64 chars
	if strings.Count(err.Detail, "ff") > 32 {
		t.Errorf("preview not truncated: %q", err.Detail)
	}
}
