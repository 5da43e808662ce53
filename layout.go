package tidy

// Layout collects every width and spacing constant used by the formatting
// passes and the emitter. The zero value means "all defaults".
type Layout struct {
	// SeparatorWidth is the number of spaces between cells in the space
	// dialect. Default 2.
	SeparatorWidth int
	// IndentWidth is the number of spaces per indent level in the space
	// dialect. Default 4.
	IndentWidth int
	// NameWidth is the test/keyword name column width, applied when column
	// alignment is enabled for the section. Default 18.
	NameWidth int
	// SettingWidth is the first-column width in settings and variables
	// sections. Default 14.
	SettingWidth int
	// LineEnding terminates every emitted line. Default "\n".
	LineEnding string
}

const (
	defaultSeparatorWidth = 2
	defaultIndentWidth    = 4
	defaultNameWidth      = 18
	defaultSettingWidth   = 14
	defaultLineEnding     = "\n"
)

func (l Layout) withDefaults() Layout {
	if l.SeparatorWidth <= 0 {
		l.SeparatorWidth = defaultSeparatorWidth
	}
	if l.IndentWidth <= 0 {
		l.IndentWidth = defaultIndentWidth
	}
	if l.NameWidth <= 0 {
		l.NameWidth = defaultNameWidth
	}
	if l.SettingWidth <= 0 {
		l.SettingWidth = defaultSettingWidth
	}
	if l.LineEnding == "" {
		l.LineEnding = defaultLineEnding
	}
	return l
}
