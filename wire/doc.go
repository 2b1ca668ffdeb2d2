// Package wire defines the JSON shapes exchanged at the string-in,
// string-out boundary, and AnalyzeJSON, the single entry point that
// decodes an input graph, runs the pipeline, and encodes the report.
// Field names on the wire are lowerCamelCase; decode and encode failures
// are reported as a single string prefixed with "Parse error:" or
// "Serialize error:" and never leave the pipeline half-run.
package wire
