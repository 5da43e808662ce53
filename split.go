package tidy

import "github.com/mattn/go-runewidth"

// splitContext carries the section properties the splitter needs: whether
// column alignment is enabled and the name column width it implies.
type splitContext struct {
	aligned   bool
	nameWidth int
}

// splitRows turns one statement's token sequence into output rows. It works
// on raw tokens (separators and end-of-line tokens still present) as well as
// on normalized ones:
//
//   - separators and legacy indent markers are dropped (layout, not content);
//   - an end-of-line token closes the current row, unless it follows a name
//     token that fits the name column in an aligned section, in which case
//     the name stays pending so the first content line shares its row;
//   - a continuation token closes the current row and opens the next one,
//     carrying the marker itself;
//   - while inside a loop body, every emitted row gains one synthetic empty
//     leading cell for the loop's extra indentation column.
func splitRows(tokens []Token, ctx splitContext) [][]Token {
	var rows [][]Token
	var row []Token
	var prev Token
	havePrev := false
	forSeen, inLoop := false, false

	flush := func() {
		if len(row) == 0 {
			return
		}
		if inLoop {
			row = append([]Token{{Type: TokenSeparator}}, row...)
		}
		rows = append(rows, row)
		row = nil
	}

	for _, t := range tokens {
		if t.Type == TokenEnd {
			forSeen, inLoop = false, false
		}
		if forSeen && t.Type == TokenKeyword {
			inLoop = true
		}
		switch t.Type {
		case TokenSeparator, TokenOldForIndent:
			continue
		case TokenEOL:
			pending := havePrev && prev.Type == TokenName && ctx.aligned &&
				runewidth.StringWidth(prev.Value) <= ctx.nameWidth
			if !pending {
				flush()
			}
			continue
		case TokenContinuation:
			flush()
			row = append(row, t)
		default:
			row = append(row, t)
		}
		if !forSeen {
			forSeen = t.Type == TokenFor
		}
		prev, havePrev = t, true
	}
	flush()
	return rows
}

func cellValues(row []Token) []string {
	cells := make([]string, len(row))
	for i, t := range row {
		cells[i] = t.Value
	}
	return cells
}
