// Package textutil implements the small text-level parsers shared by the
// contradiction and bias passes: duration extraction, numeric value
// extraction, formal-expression variable extraction, and implication
// splitting. All matching is literal and case-insensitive — there is no
// natural-language understanding here, only pattern matching, per the
// pipeline's stated non-goals.
package textutil
