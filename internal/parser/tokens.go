// Package parser reads games in PGN form: tags, movetext and results.
// Comments, annotations and variations are read and discarded so that only
// the mainline reaches the rules engine.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	// Internal tokens used for identification
	Whitespace
	TagStart
	TagEnd
	DoubleQuote
	CommentStart
	CommentEnd
	Annotate
	Dot
	Percent
	Escape
	Alpha
	Digit
	Star
	Dash
	EOS
	NoToken
	ErrorToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	CheckSymbol:       "CHECK_SYMBOL",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	Whitespace:        "WHITESPACE",
	TagStart:          "TAG_START",
	TagEnd:            "TAG_END",
	DoubleQuote:       "DOUBLE_QUOTE",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	Annotate:          "ANNOTATE",
	Dot:               "DOT",
	Percent:           "PERCENT",
	Escape:            "ESCAPE",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	Dash:              "DASH",
	EOS:               "EOS",
	NoToken:           "NO_TOKEN",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text holds move text, tag names, tag values, results, NAGs and
	// comment bodies
	Text string

	// MoveNum holds move numbers
	MoveNum uint

	// Line for error reporting
	Line uint
}
