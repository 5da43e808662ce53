package tidy

import (
	"regexp"
	"strings"
)

const escapeMarker = `\`

var consecutiveWhitespace = regexp.MustCompile(`\s{2,}`)

// escapeWhitespace rewrites literal line breaks to spaces and joins the
// characters of every run of two or more whitespace characters with the
// escape marker, so the run cannot be mistaken for a column separator.
// The rewrite is reversible: dropping each marker restores the run.
func escapeWhitespace(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", " ")
	return consecutiveWhitespace.ReplaceAllStringFunc(cell, func(run string) string {
		return strings.Join(strings.Split(run, ""), escapeMarker)
	})
}

// escapeRow escapes every cell of one row for the given dialect.
func escapeRow(cells []string, d Dialect) []string {
	if d == Pipe {
		return escapeRowPipe(cells)
	}
	return escapeRowSpace(cells)
}

// escapeRowSpace applies whitespace escaping, drops trailing empty cells,
// and renders any remaining empty cell as a lone escape marker so the cells
// after it keep their column position.
func escapeRowSpace(cells []string) []string {
	out := make([]string, len(cells))
	last := -1
	for i, c := range cells {
		out[i] = escapeWhitespace(c)
		if out[i] != "" {
			last = i
		}
	}
	out = out[:last+1]
	for i, c := range out {
		if c == "" {
			out[i] = escapeMarker
		}
	}
	return out
}

// escapeRowPipe applies whitespace and pipe escaping. An empty cell renders
// as two spaces so it stays visually distinct from the column separator.
func escapeRowPipe(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = escapePipes(escapeWhitespace(c))
		if c == "" {
			c = "  "
		}
		out[i] = c
	}
	return out
}

// escapePipes escapes any occurrence of the pipe column separator inside a
// cell, including the separator's leading fragment at the start of the cell
// and its trailing fragment at the end.
func escapePipes(cell string) string {
	if strings.Contains(cell, " | ") {
		cell = strings.ReplaceAll(cell, " | ", ` \| `)
	}
	if strings.HasPrefix(cell, "| ") {
		cell = escapeMarker + cell
	}
	if strings.HasSuffix(cell, " |") {
		cell = cell[:len(cell)-1] + `\|`
	}
	return cell
}
