// Package schema decodes Concordium smart contract module schemas from
// their binary encoding into a strongly-typed representation.
//
// A module schema is a self-describing type grammar: per contract it gives
// the shape of the persisted state and the parameter types of the init and
// receive entry points, expressed as a recursive algebraic grammar of
// structs, enums, pairs, collections, and fixed-width scalars. Decoding a
// schema says nothing about actual contract values; interpreting state or
// parameter bytes against a decoded schema is a separate concern.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	schema/          Root package: data model, grammar decoder, combinators
//	├── stream/      Chunked byte source and exact-length reader
//	├── errors/      Structured error types (phase, kind, offset, path)
//	├── embedded/    Schema extraction from contract WASM modules
//	└── cmd/inspect/ CLI and interactive schema browser
//
// # Quick Start
//
// Decode a schema from raw bytes:
//
//	mod, err := schema.DecodeModule(bytes.NewReader(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, contract := range mod.Contracts {
//	    fmt.Println(name, schema.FormatType(contract.State))
//	}
//
// Decode from a source that delivers bytes in arbitrary chunks, suspending
// while none are available:
//
//	src := stream.NewChunkSource()
//	go feed(src) // Push chunks as they arrive, then Close
//	mod, err := schema.DecodeModule(src)
//
// A decode either fully succeeds or fails with a structured error from the
// errors package; no partial Module is ever returned.
package schema
