package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/apex/log"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	logger   log.Interface
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd

	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = Percent
	chTab[';'] = Percent
	chTab['\\'] = Escape
	chTab[0] = EOS
	chTab['*'] = Star
	chTab['-'] = Dash

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{'K', 'Q', 'R', 'N', 'B', 'x', '-', '=', 'O'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader. Problems in the input
// are reported to logger and skipped.
func NewLexer(r io.Reader, logger log.Interface) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		logger: logger,
	}
}

func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err != io.EOF {
			l.logger.WithError(err).Error("reading input")
		}
		l.line = ""
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

func (l *Lexer) skipWhile(t TokenType) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == t {
		l.advance()
	}
}

func (l *Lexer) warn(msg string, fields log.Fields) {
	fields["line"] = l.lineNum
	l.logger.WithFields(fields).Warn(msg)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		l.skipWhile(Whitespace)
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case TagEnd:
		return &Token{Type: NoToken}

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		l.warn("unmatched comment end", log.Fields{})
		return &Token{Type: NoToken}

	case NAGToken:
		start := l.pos
		for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}

	case Annotate:
		l.skipWhile(Annotate)
		return &Token{Type: NAGToken, Text: annotationToNAG(l.line[symbolStart:l.pos])}

	case CheckSymbol:
		l.skipWhile(CheckSymbol)
		return &Token{Type: CheckSymbol}

	case Dot:
		l.skipWhile(Dot)
		return &Token{Type: NoToken}

	case RAVStart:
		l.ravLevel++
		return &Token{Type: RAVStart}

	case RAVEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: RAVEnd}
		}
		l.warn("too many ')'", log.Fields{})
		return &Token{Type: NoToken}

	case Percent:
		// Rest of line is a comment.
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case Escape:
		l.advance()
		return &Token{Type: NoToken}

	case Alpha:
		return l.gatherAlpha(ch, symbolStart)

	case Digit:
		return l.gatherNumeric(ch)

	case Star:
		return &Token{Type: TerminatingResult, Text: "*"}

	case Dash:
		l.skipWhile(Dash)
		l.warn("null moves are not supported", log.Fields{"text": l.line[symbolStart:l.pos]})
		return &Token{Type: NoToken}

	case EOS:
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}

	default:
		for l.pos < len(l.line) && chTab[l.currentChar()] == ErrorToken {
			l.advance()
		}
		l.warn("unknown characters", log.Fields{"text": l.line[symbolStart:l.pos]})
		return &Token{Type: NoToken}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	l.skipWhile(Whitespace)
	start := l.pos
	for l.pos < len(l.line) {
		ch := rune(l.currentChar())
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		l.advance()
	}
	if l.pos > start {
		return &Token{Type: TagToken, Text: l.line[start:l.pos]}
	}
	return &Token{Type: NoToken}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false
	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()
		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}
	l.warn("missing closing quote", log.Fields{})
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}
	l.warn("missing end of comment", log.Fields{})
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
}

// gatherAlpha gathers move text.
func (l *Lexer) gatherAlpha(ch byte, symbolStart int) *Token {
	if !moveChars[ch] {
		for l.pos < len(l.line) && chTab[l.currentChar()] == Alpha {
			l.advance()
		}
		l.warn("unknown word", log.Fields{"text": l.line[symbolStart:l.pos]})
		return &Token{Type: NoToken}
	}
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	if moveSeemsValid(text) {
		return &Token{Type: MoveToken, Text: text}
	}
	l.warn("unknown move text", log.Fields{"text": text})
	return &Token{Type: NoToken}
}

// gatherNumeric handles move numbers, results and zero-style castling.
func (l *Lexer) gatherNumeric(initialDigit byte) *Token {
	remaining := l.line[l.pos:]
	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, Text: "O-O-O"}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, Text: "O-O"}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return &Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}
	return l.gatherMoveNumber()
}

func (l *Lexer) gatherMoveNumber() *Token {
	start := l.pos - 1
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
		l.advance()
	}
	n, _ := strconv.ParseUint(l.line[start:l.pos], 10, 32)
	l.skipWhile(Dot)
	return &Token{Type: MoveNumber, MoveNum: uint(n)}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// moveSeemsValid does a basic check that text could be a move.
func moveSeemsValid(text string) bool {
	if text == "O-O" || text == "O-O-O" {
		return true
	}
	if len(text) < 2 {
		return false
	}
	hasFile, hasRank := false, false
	for _, c := range text {
		if c >= 'a' && c <= 'h' {
			hasFile = true
		}
		if c >= '1' && c <= '8' {
			hasRank = true
		}
	}
	return hasFile && hasRank
}

// RestartForNewGame resets lexer state for a new game.
func (l *Lexer) RestartForNewGame() {
	l.ravLevel = 0
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}
