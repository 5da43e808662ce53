package tidy

// NewDocument assembles a flat sequence of statements into a document tree.
// Header statements open sections; inside testcase and keyword sections a
// name statement opens a test/keyword block, and loop start/end statements
// delimit loop constructs nested in the block body. Statements arriving
// before any header land in a headerless comment section.
func NewDocument(statements ...*Statement) *Document {
	doc := &Document{}
	var sec *Section
	var block *TestOrKeyword
	var loop *ForLoop

	appendNode := func(n Node) {
		switch {
		case loop != nil:
			loop.Body = append(loop.Body, n)
		case block != nil:
			block.Body = append(block.Body, n)
		default:
			if sec == nil {
				sec = &Section{}
				doc.Sections = append(doc.Sections, sec)
			}
			sec.Body = append(sec.Body, n)
		}
	}

	for _, st := range statements {
		typ := st.Type()
		switch {
		case typ.isHeader():
			sec = &Section{Header: st}
			doc.Sections = append(doc.Sections, sec)
			block, loop = nil, nil
		case typ == TokenName && sec != nil &&
			(sec.Kind() == SectionTestCases || sec.Kind() == SectionKeywords):
			block = &TestOrKeyword{Name: st}
			loop = nil
			sec.Body = append(sec.Body, block)
		case typ == TokenFor && block != nil:
			loop = &ForLoop{Header: st}
			block.Body = append(block.Body, loop)
		case typ == TokenEnd && loop != nil:
			loop.End = st
			loop = nil
		default:
			appendNode(st)
		}
	}
	return doc
}
