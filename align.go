package tidy

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// rowAligner pads the cells of one output row so columns line up across the
// rows of a section.
type rowAligner interface {
	alignRow(cells []string) []string
}

// nullAligner is the identity, used when the section does not declare enough
// header columns to justify alignment.
type nullAligner struct{}

func (nullAligner) alignRow(cells []string) []string { return cells }

// firstColumnAligner left-justifies the first cell to a fixed width. In the
// space dialect the padding replaces the cell separator, so the second cell
// begins at exactly the column width; in the pipe dialect the padded cell
// stays separate and the pipe separator follows it. A first cell wider than
// the column is left alone and the row falls back to standard spacing.
type firstColumnAligner struct {
	width int
	merge bool
}

func (a firstColumnAligner) alignRow(cells []string) []string {
	if len(cells) < 2 {
		return cells
	}
	w := runewidth.StringWidth(cells[0])
	if w > a.width {
		return cells
	}
	pad := strings.Repeat(" ", a.width-w)
	out := make([]string, 0, len(cells))
	if a.merge {
		out = append(out, cells[0]+pad+cells[1])
		out = append(out, cells[2:]...)
		return out
	}
	out = append(out, cells[0]+pad)
	out = append(out, cells[1:]...)
	return out
}

// columnAligner pads every cell but the last to per-column widths derived
// from a section header, so cell boundaries land at consistent offsets on
// every row. Widths are advisory: an over-wide cell is never truncated, the
// rest of the row simply starts later.
type columnAligner struct {
	widths []int
}

// newColumnAligner derives column widths from the rendered header cells (all
// but the last). The first column is at least nameWidth so test and keyword
// names keep their fixed column.
func newColumnAligner(header []string, nameWidth int) columnAligner {
	widths := make([]int, 0, len(header)-1)
	for i, cell := range header[:len(header)-1] {
		w := runewidth.StringWidth(cell)
		if i == 0 && w < nameWidth {
			w = nameWidth
		}
		widths = append(widths, w)
	}
	return columnAligner{widths: widths}
}

func (a columnAligner) alignRow(cells []string) []string {
	out := make([]string, len(cells))
	copy(out, cells)
	for i := range out {
		if i >= len(a.widths) || i == len(out)-1 {
			break
		}
		if w := runewidth.StringWidth(out[i]); w < a.widths[i] {
			out[i] += strings.Repeat(" ", a.widths[i]-w)
		}
	}
	return out
}

// alignedSection reports whether full column alignment is enabled: a
// testcase or keyword section whose header declares more than one column
// after the section title.
func alignedSection(sec *Section) bool {
	if k := sec.Kind(); k != SectionTestCases && k != SectionKeywords {
		return false
	}
	return len(headerRow(sec)) > 2
}

// sectionAligner picks the aligner for a section: fixed first-column width
// for settings and variables, header-derived column widths for aligned
// testcase/keyword sections, identity otherwise.
func sectionAligner(sec *Section, d Dialect, lay Layout) rowAligner {
	switch sec.Kind() {
	case SectionSettings, SectionVariables:
		return firstColumnAligner{width: lay.SettingWidth, merge: d == Space}
	case SectionTestCases, SectionKeywords:
		if cells := headerRow(sec); len(cells) > 2 {
			return newColumnAligner(cells, lay.NameWidth)
		}
	}
	return nullAligner{}
}
