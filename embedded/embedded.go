package embedded

import (
	"bytes"
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	schema "github.com/lukateras/go-concordium-schema"
	"github.com/lukateras/go-concordium-schema/errors"
)

// Schema section names, in probe order. Concordium tooling embeds the V0
// module schema under the versioned name; older tooling used the bare one.
var sectionNames = []string{"concordium-schema-v1", "concordium-schema"}

// ModuleSchema extracts and decodes the schema embedded in a contract WASM
// module. The module is compiled with wazero to locate its custom sections,
// so the bytes must be a well-formed WASM binary. Decode options are passed
// through to the schema decoder.
func ModuleSchema(ctx context.Context, wasmBytes []byte, opts ...schema.Option) (*schema.Module, error) {
	cfg := wazero.NewRuntimeConfigInterpreter().WithCustomSections(true)
	rt := wazero.NewRuntimeWithConfig(ctx, cfg)
	defer func() {
		if err := rt.Close(ctx); err != nil {
			Logger().Warn("failed to close wazero runtime", zap.Error(err))
		}
	}()

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.InvalidModule(err)
	}

	for _, name := range sectionNames {
		for _, sec := range compiled.CustomSections() {
			if sec.Name() != name {
				continue
			}
			data := sec.Data()
			Logger().Debug("found schema custom section",
				zap.String("section", name),
				zap.Int("bytes", len(data)))
			return schema.DecodeModule(bytes.NewReader(data), opts...)
		}
	}
	return nil, errors.NoSchema(sectionNames)
}
