// Package ffi exposes the analysis pipeline across a host/FFI boundary
// where only strings can cross (cgo, WASM, or a scripting-language
// embedder). It adds no semantics beyond wire.AnalyzeJSON: a caller-side
// error is just the returned string starting with "Parse error:" or
// "Serialize error:" instead of a typed error value.
package ffi
