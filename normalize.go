package tidy

// headerSeparatorMargin is the trailing portion of a header separator that
// is treated as the column gap rather than as header text when legacy
// multi-word column titles are folded.
const headerSeparatorMargin = 4

// Canonical loop keyword spellings. Legacy alternates (":FOR", ": FOR",
// mixed case) are rewritten to these.
const (
	loopStartKeyword = "FOR"
	loopEndKeyword   = "END"
)

// normalizeSeparators removes separator, end-of-line, and legacy-indent
// tokens from every statement; the emitter regenerates all layout. Testcase
// and keyword section headers first have legacy separator spacing folded
// into the preceding header cell so multi-word column titles survive.
// Statements left without any tokens are pruned: blank source rows are
// layout, and keeping them would fight the blank lines the emitter inserts
// between sections and blocks.
func normalizeSeparators(doc *Document) {
	for _, sec := range doc.Sections {
		if sec.Header != nil {
			if k := sec.Kind(); k == SectionTestCases || k == SectionKeywords {
				foldHeaderSpacing(sec.Header)
			}
			stripLayout(sec.Header)
		}
		sec.Body = normalizeNodes(sec.Body)
	}
}

func normalizeNodes(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Statement:
			stripLayout(n)
			if len(n.Tokens) == 0 {
				continue
			}
			out = append(out, n)
		case *TestOrKeyword:
			stripLayout(n.Name)
			n.Body = normalizeNodes(n.Body)
			out = append(out, n)
		case *ForLoop:
			stripLayout(n.Header)
			if n.End != nil {
				stripLayout(n.End)
			}
			n.Body = normalizeNodes(n.Body)
			out = append(out, n)
		}
	}
	return out
}

// stripLayout rebuilds the token slice without layout tokens. A fresh slice
// is built rather than filtering in place so earlier passes never alias a
// half-rewritten sequence.
func stripLayout(st *Statement) {
	kept := make([]Token, 0, len(st.Tokens))
	for _, t := range st.Tokens {
		if !t.Type.isLayout() {
			kept = append(kept, t)
		}
	}
	st.Tokens = kept
}

// foldHeaderSpacing merges separator whitespace, minus the trailing column
// gap, into the immediately preceding header cell.
func foldHeaderSpacing(st *Statement) {
	var prev *Token
	for i := range st.Tokens {
		t := &st.Tokens[i]
		switch {
		case t.Type == TokenSeparator && prev != nil:
			if len(t.Value) > headerSeparatorMargin {
				prev.Value += t.Value[:len(t.Value)-headerSeparatorMargin]
			}
		case t.Type == TokenTestCaseHeader || t.Type == TokenKeywordHeader:
			prev = t
		default:
			prev = nil
		}
	}
}

// canonicalizeLoops forces every loop construct's header and terminator
// keywords to their canonical spellings, whatever the source used.
func canonicalizeLoops(doc *Document) {
	for _, sec := range doc.Sections {
		walkLoops(sec.Body, func(loop *ForLoop) {
			if loop.Header != nil && len(loop.Header.Tokens) > 0 {
				loop.Header.Tokens[0].Value = loopStartKeyword
			}
			if loop.End != nil && len(loop.End.Tokens) > 0 {
				loop.End.Tokens[0].Value = loopEndKeyword
			}
		})
	}
}

func walkLoops(nodes []Node, fn func(*ForLoop)) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TestOrKeyword:
			walkLoops(n.Body, fn)
		case *ForLoop:
			fn(n)
			walkLoops(n.Body, fn)
		}
	}
}
