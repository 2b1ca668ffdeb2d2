package ffi

import "github.com/arguelabs/clarity-engine/wire"

// Analyze runs the pipeline over the JSON-encoded input graph and returns
// the JSON-encoded report as a single string. On failure the returned
// string is the error message itself, prefixed "Parse error:" or
// "Serialize error:" — there is no second return value, since a host
// calling across an FFI boundary typically cannot receive one.
func Analyze(input string) string {
	out, err := wire.AnalyzeJSON(input)
	if err != nil {
		return err.Error()
	}

	return out
}
