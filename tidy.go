package tidy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedDialect is returned for dialect values other than Space and
// Pipe. It signals a configuration defect, not a data error.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Dialect selects the output text style.
type Dialect string

const (
	// Space separates cells with a configurable number of spaces.
	Space Dialect = "space"
	// Pipe wraps every non-blank line in pipe delimiters.
	Pipe Dialect = "pipe"
)

var dialects = []Dialect{Space, Pipe}

// String returns the dialect name.
func (d Dialect) String() string { return string(d) }

// Dialects returns all supported dialects.
func Dialects() []Dialect {
	out := make([]Dialect, len(dialects))
	copy(out, dialects)
	return out
}

// ParseDialect parses a dialect string.
func ParseDialect(s string) (Dialect, error) {
	for _, d := range dialects {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
}

// Write serializes doc to w in the given dialect using the default layout.
//
// The document is transformed destructively: layout tokens are stripped,
// loop keywords canonicalized, and blank rows pruned. It must not be reused
// after the call. If a write to w fails partway, w holds a truncated,
// unusable prefix and the whole output must be discarded.
func Write(w io.Writer, d Dialect, doc *Document) error {
	return WriteLayout(w, d, Layout{}, doc)
}

// WriteLayout is Write with an explicit layout. Zero-valued layout fields
// fall back to their defaults.
func WriteLayout(w io.Writer, d Dialect, lay Layout, doc *Document) error {
	switch d {
	case Space, Pipe:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
	}
	lay = lay.withDefaults()
	normalizeSeparators(doc)
	canonicalizeLoops(doc)
	e := &emitter{w: w, dialect: d, layout: lay}
	return e.document(doc)
}

// Marshal serializes doc and returns the bytes.
func Marshal(d Dialect, doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
