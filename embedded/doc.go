// Package embedded locates and decodes the schema a Concordium contract
// module carries inside its WASM binary.
//
// Contract build tooling embeds the module schema as a custom section.
// ModuleSchema compiles the binary with wazero, scans the custom sections
// for the known schema section names, and hands the payload to the schema
// decoder:
//
//	mod, err := embedded.ModuleSchema(ctx, wasmBytes)
//
// Compilation doubles as validation: bytes that are not a well-formed WASM
// module fail with an invalid_module error before any schema decoding runs.
package embedded
