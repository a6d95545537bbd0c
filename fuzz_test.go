package schema_test

import (
	"bytes"
	"testing"

	schema "github.com/lukateras/go-concordium-schema"
)

func FuzzDecodeType(f *testing.F) {
	// Every leaf tag
	for tag := byte(0); tag <= 0x0e; tag++ {
		f.Add([]byte{tag})
	}

	// Composites
	f.Add([]byte{0x0f, 0x00, 0x02})                         // pair
	f.Add([]byte{0x10, 0x02, 0x01})                         // list
	f.Add([]byte{0x13, 0x10, 0x00, 0x00, 0x00, 0x02})       // array
	f.Add([]byte{0x14, 0x02})                               // fieldless struct
	f.Add([]byte{0x15, 0x00, 0x00, 0x00, 0x00})             // empty enum
	f.Add([]byte{0x16, 0x02})                               // string
	f.Add([]byte{0xff})                                     // bad tag
	f.Add(bytes.Repeat([]byte{0x0f, 0x00}, 2048))           // deep pair chain
	f.Add([]byte{0x15, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00}) // forged length

	f.Fuzz(func(t *testing.T, data []byte) {
		// Decoding must not panic; either a Type or an error comes back
		typ, err := schema.NewDecoder(bytes.NewReader(data)).DecodeType()
		if err == nil && typ == nil {
			t.Error("nil type without error")
		}
		if err != nil && typ != nil {
			t.Errorf("partial result %v alongside error %v", typ, err)
		}
	})
}

func FuzzDecodeModule(f *testing.F) {
	f.Add([]byte{0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 'a',
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	f.Add([]byte{0x01, 0x00, 0x00, 0x00, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		mod, err := schema.DecodeModule(bytes.NewReader(data))
		if err == nil && mod == nil {
			t.Error("nil module without error")
		}
		if err != nil && mod != nil {
			t.Errorf("partial module %v alongside error %v", mod, err)
		}
	})
}
