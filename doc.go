// Package tidy re-serializes a parsed tabular test-specification document
// back into canonical text. Section structure, statement contents, and loop
// constructs are preserved while formatting is normalized to consistent
// column widths, separators, and loop-keyword spellings.
//
// The central entry points are [Write], [WriteLayout], and [Marshal], which
// accept a [Dialect] and a [Document] produced by an external parser. The
// pipeline runs strictly in order over the in-memory tree: layout tokens are
// stripped (legacy header spacing folding into the header text), loop
// keywords are canonicalized, and the emitter walks the tree writing final
// lines with padding computed per section.
//
// # Dialects
//
// The space dialect joins cells with a configurable number of spaces
// (default 2) and right-trims every line:
//
//	*** Test Cases ***
//	My Test
//	    Log  hello
//
// The pipe dialect wraps every non-blank line in pipe delimiters; the blank
// separator rows between sections stay empty:
//
//	| *** Test Cases *** |
//	| My Test |
//	|    | Log | hello |
//
// # Column alignment
//
// The first column of settings and variables sections is padded to a fixed
// width (default 14). A testcase or keyword section whose header declares
// more than one named column gets full column alignment, with widths derived
// from the header cells and the name column fixed at a minimum width
// (default 18). Widths are advisory: over-wide cells shift the rest of the
// row instead of being truncated.
//
// # Escaping
//
// Runs of two or more whitespace characters inside a cell, and literal line
// breaks, are escaped so they cannot be confused with column separation. The
// pipe dialect additionally escapes literal pipe separators inside cells and
// renders empty cells as two spaces.
//
// # Errors
//
// The input tree is not validated; malformed token sequences produce
// best-effort output rather than errors. [ErrUnsupportedDialect] reports an
// unknown dialect before anything is written. Sink write failures propagate
// immediately: a failed call leaves the sink with an unusable prefix, and
// callers must discard it.
//
// # Concurrency
//
// Everything is synchronous and single-threaded. Each call owns its tree and
// sink; the tree is mutated destructively and must not be reused.
package tidy
