package tidy

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pipe dialect layout constants: the cell separator and the per-level indent
// marker.
const (
	pipeSeparator = " | "
	pipeIndent    = "   | "
)

// emitter walks a normalized document and writes final text to the sink.
// Write calls occur strictly in document order; a failed write aborts the
// walk and leaves the sink with an unusable prefix.
type emitter struct {
	w       io.Writer
	dialect Dialect
	layout  Layout

	indent      int
	aligned     bool
	aligner     rowAligner
	sectionSeen bool
	blockSeen   bool
}

func (e *emitter) document(doc *Document) error {
	for _, sec := range doc.Sections {
		if e.sectionSeen {
			if err := e.writeBlank(); err != nil {
				return err
			}
		}
		if err := e.section(sec); err != nil {
			return err
		}
		e.sectionSeen = true
	}
	return nil
}

func (e *emitter) section(sec *Section) error {
	e.aligned = alignedSection(sec)
	e.aligner = sectionAligner(sec, e.dialect, e.layout)
	e.blockSeen = false
	e.indent = 0
	if cells := headerRow(sec); len(cells) > 0 {
		if err := e.writeRow(e.aligner.alignRow(cells)); err != nil {
			return err
		}
	}
	for _, n := range sec.Body {
		if err := e.node(n); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) node(n Node) error {
	switch n := n.(type) {
	case *Statement:
		return e.statement(n, nil)
	case *TestOrKeyword:
		return e.testOrKeyword(n)
	case *ForLoop:
		return e.forLoop(n)
	}
	return nil
}

func (e *emitter) testOrKeyword(block *TestOrKeyword) error {
	if e.blockSeen {
		if err := e.writeBlank(); err != nil {
			return err
		}
	}
	e.blockSeen = true

	body := block.Body
	var nameCells []string
	if block.Name != nil {
		nameCells = cellValues(block.Name.Tokens)
	}

	// In aligned sections a bare name that fits the name column shares its
	// row with the first content statement. A name statement that already
	// carries further cells keeps its own row.
	var first *Statement
	if e.aligned && len(nameCells) == 1 &&
		runewidth.StringWidth(nameCells[0]) <= e.layout.NameWidth && len(body) > 0 {
		if st, ok := body[0].(*Statement); ok {
			first = st
			body = body[1:]
		}
	}
	if first == nil && block.Name != nil {
		if err := e.statement(block.Name, nil); err != nil {
			return err
		}
	}

	e.indent++
	if first != nil {
		if err := e.statement(first, nameCells); err != nil {
			e.indent--
			return err
		}
	}
	for _, n := range body {
		if err := e.node(n); err != nil {
			e.indent--
			return err
		}
	}
	e.indent--
	return nil
}

func (e *emitter) forLoop(loop *ForLoop) error {
	if loop.Header != nil {
		if err := e.statement(loop.Header, nil); err != nil {
			return err
		}
	}
	e.indent++
	for _, n := range loop.Body {
		if err := e.node(n); err != nil {
			e.indent--
			return err
		}
	}
	e.indent--
	if loop.End != nil {
		return e.statement(loop.End, nil)
	}
	return nil
}

// statement writes one statement's rows. prefix, when non-nil, occupies the
// name column of the first row (the merged-name form of aligned sections);
// later rows of an aligned body get one synthetic empty leading cell per
// indent level instead, so loop bodies sit one column deeper than their
// FOR and END rows.
func (e *emitter) statement(st *Statement, prefix []string) error {
	ctx := splitContext{aligned: e.aligned, nameWidth: e.layout.NameWidth}
	rows := splitRows(st.Tokens, ctx)
	if len(rows) == 0 {
		if prefix == nil {
			return nil
		}
		return e.writeRow(e.aligner.alignRow(escapeRow(prefix, e.dialect)))
	}
	for i, row := range rows {
		cells := escapeRow(cellValues(row), e.dialect)
		if e.aligned {
			if i == 0 && prefix != nil {
				cells = append(escapeRow(prefix, e.dialect), cells...)
			} else if e.indent > 0 {
				cells = append(make([]string, e.indent), cells...)
			}
		}
		if err := e.writeRow(e.aligner.alignRow(cells)); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) writeRow(cells []string) error {
	var line string
	switch e.dialect {
	case Pipe:
		line = strings.Repeat(pipeIndent, e.effectiveIndent()) + strings.Join(cells, pipeSeparator)
		if line != "" {
			line = "| " + line + " |"
		}
	default:
		sep := strings.Repeat(" ", e.layout.SeparatorWidth)
		indent := strings.Repeat(" ", e.effectiveIndent()*e.layout.IndentWidth)
		line = strings.TrimRight(indent+strings.Join(cells, sep), " \t")
	}
	return e.writeLine(line)
}

// effectiveIndent suppresses indent markers in aligned sections, where the
// column aligner supplies the leading offset instead.
func (e *emitter) effectiveIndent() int {
	if e.aligned {
		return 0
	}
	return e.indent
}

func (e *emitter) writeBlank() error { return e.writeLine("") }

func (e *emitter) writeLine(line string) error {
	_, err := io.WriteString(e.w, line+e.layout.LineEnding)
	return err
}

// headerRow returns a section's header cells with the title cell normalized
// to the canonical *** Title *** form. Extra header cells (named columns)
// follow unchanged.
func headerRow(sec *Section) []string {
	if sec.Header == nil {
		return nil
	}
	cells := cellValues(sec.Header.Tokens)
	if len(cells) == 0 {
		return nil
	}
	out := make([]string, len(cells))
	out[0] = canonicalTitle(cells[0])
	copy(out[1:], cells[1:])
	return out
}

func canonicalTitle(raw string) string {
	return "*** " + strings.Trim(raw, "* \t") + " ***"
}
