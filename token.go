package tidy

// TokenType identifies the role a token plays in the source document.
type TokenType int

const (
	TokenSettingHeader TokenType = iota
	TokenVariableHeader
	TokenTestCaseHeader
	TokenKeywordHeader
	TokenCommentHeader
	TokenName
	TokenKeyword
	TokenArgument
	TokenVariable
	TokenComment
	TokenFor
	TokenEnd
	TokenContinuation
	TokenSeparator
	TokenEOL
	TokenOldForIndent
)

var tokenTypeNames = map[TokenType]string{
	TokenSettingHeader:  "setting header",
	TokenVariableHeader: "variable header",
	TokenTestCaseHeader: "testcase header",
	TokenKeywordHeader:  "keyword header",
	TokenCommentHeader:  "comment header",
	TokenName:           "name",
	TokenKeyword:        "keyword",
	TokenArgument:       "argument",
	TokenVariable:       "variable",
	TokenComment:        "comment",
	TokenFor:            "for",
	TokenEnd:            "end",
	TokenContinuation:   "continuation",
	TokenSeparator:      "separator",
	TokenEOL:            "eol",
	TokenOldForIndent:   "old for indent",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// isHeader reports whether the type marks the start of a section.
func (t TokenType) isHeader() bool {
	switch t {
	case TokenSettingHeader, TokenVariableHeader, TokenTestCaseHeader,
		TokenKeywordHeader, TokenCommentHeader:
		return true
	}
	return false
}

// isLayout reports whether the token is a source-layout artifact rather than
// semantic content. Layout tokens are stripped by the separator normalizer
// and regenerated by the emitter.
func (t TokenType) isLayout() bool {
	switch t {
	case TokenSeparator, TokenEOL, TokenOldForIndent:
		return true
	}
	return false
}

// Token is one lexical unit of the source document. Tokens are treated as
// immutable by consumers; only the formatting passes rewrite values.
type Token struct {
	Type  TokenType
	Value string
}

// Statement is one logical row of the source document. It may span multiple
// physical output lines via continuation tokens.
type Statement struct {
	Tokens []Token
}

// NewStatement builds a statement from the given tokens.
func NewStatement(tokens ...Token) *Statement {
	return &Statement{Tokens: tokens}
}

// Type returns the type of the first semantic token, or TokenEOL when the
// statement carries no semantic content.
func (s *Statement) Type() TokenType {
	for _, t := range s.Tokens {
		if !t.Type.isLayout() {
			return t.Type
		}
	}
	return TokenEOL
}

// Lines groups the statement's tokens by physical line: a continuation token
// closes the current line and starts the next one.
func (s *Statement) Lines() [][]*Token {
	var lines [][]*Token
	var line []*Token
	for i := range s.Tokens {
		t := &s.Tokens[i]
		if t.Type == TokenContinuation && len(line) > 0 {
			lines = append(lines, line)
			line = nil
		}
		line = append(line, t)
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// Node is an element of a section body. The variant set is closed:
// *Statement, *TestOrKeyword, and *ForLoop.
type Node interface {
	node()
}

func (*Statement) node()     {}
func (*TestOrKeyword) node() {}
func (*ForLoop) node()       {}

// TestOrKeyword is a named block inside a testcase or keyword section: a
// name statement followed by the block's body.
type TestOrKeyword struct {
	Name *Statement
	Body []Node
}

// ForLoop is a loop construct inside a test or keyword body: a header
// statement, the loop body, and a terminator statement.
type ForLoop struct {
	Header *Statement
	Body   []Node
	End    *Statement
}

// SectionKind classifies a section by its header statement.
type SectionKind int

const (
	SectionComments SectionKind = iota
	SectionSettings
	SectionVariables
	SectionTestCases
	SectionKeywords
)

// Section is a header statement plus the statements and blocks it owns.
// A nil header marks a leading headerless section, treated as comments.
type Section struct {
	Header *Statement
	Body   []Node
}

// Kind returns the section kind derived from the header statement.
func (s *Section) Kind() SectionKind {
	if s.Header == nil {
		return SectionComments
	}
	switch s.Header.Type() {
	case TokenSettingHeader:
		return SectionSettings
	case TokenVariableHeader:
		return SectionVariables
	case TokenTestCaseHeader:
		return SectionTestCases
	case TokenKeywordHeader:
		return SectionKeywords
	}
	return SectionComments
}

// Document is an ordered sequence of sections. A document is built once per
// serialization call, transformed destructively by the formatting passes,
// and consumed by the emitter; it must not be reused across calls.
type Document struct {
	Sections []*Section
}
