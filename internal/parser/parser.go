package parser

import (
	"io"

	"github.com/apex/log"
)

// Game is one game read from PGN input.
type Game struct {
	Tags      map[string]string
	Moves     []string // Mainline move texts, without check or annotation symbols
	Result    string   // Terminating result, empty if missing
	StartLine uint
	EndLine   uint
}

// GetTag returns the value of a tag, or "" if it is not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// StartFEN returns the FEN tag unless the SetUp tag disables it.
func (g *Game) StartFEN() string {
	if g.Tags["SetUp"] == "0" {
		return ""
	}
	return g.Tags["FEN"]
}

// Parser parses PGN input into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	ravLevel     uint
	logger       log.Interface
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader, logger log.Interface) *Parser {
	return &Parser{
		lexer:  NewLexer(r, logger),
		logger: logger,
	}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() *Game {
	if p.currentToken == nil || p.currentToken.Type == NoToken {
		p.nextToken()
	}
	p.skipToNextGame()
	p.lexer.RestartForNewGame()
	p.ravLevel = 0
	p.skipComments()

	game := &Game{Tags: make(map[string]string), StartLine: p.lexer.LineNumber()}
	for p.parseTag(game) {
	}
	p.skipComments()
	for p.currentToken.Type == NAGToken {
		p.nextToken()
	}

	game.Moves = p.parseMoveList()
	p.skipComments()
	game.Result = p.parseResult()
	game.EndLine = p.lexer.LineNumber()

	if game.Result != "" {
		if r := game.Tags["Result"]; r == "" || r == "?" {
			game.Tags["Result"] = game.Result
		}
	}

	if p.currentToken.Type == EOFToken && game.Moves == nil && len(game.Tags) == 0 {
		return nil
	}
	return game
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, TerminatingResult:
			return
		default:
			p.nextToken()
		}
	}
}

func (p *Parser) parseTag(game *Game) bool {
	switch p.currentToken.Type {
	case TagToken:
		name := p.currentToken.Text
		p.nextToken()
		if p.currentToken.Type == StringToken {
			game.Tags[name] = p.currentToken.Text
			p.nextToken()
		} else {
			p.logger.WithFields(log.Fields{"tag": name, "line": p.currentToken.Line}).Warn("missing tag string")
		}
		return true
	case StringToken:
		p.logger.WithFields(log.Fields{"value": p.currentToken.Text, "line": p.currentToken.Line}).Warn("missing tag name")
		p.nextToken()
		return true
	}
	return false
}

// parseMoveList parses a list of moves with their variations.
func (p *Parser) parseMoveList() []string {
	var moves []string
	for {
		text, ok := p.parseMove()
		if !ok {
			return moves
		}
		moves = append(moves, text)
		for p.parseVariant() {
		}
		p.skipComments()
	}
}

// parseMove parses a single move with its decorations.
func (p *Parser) parseMove() (string, bool) {
	if p.currentToken.Type == MoveNumber {
		p.nextToken()
	}
	if p.currentToken.Type != MoveToken {
		return "", false
	}
	text := p.currentToken.Text
	p.nextToken()
	for p.currentToken.Type == CheckSymbol || p.currentToken.Type == NAGToken || p.currentToken.Type == CommentToken {
		p.nextToken()
	}
	return text, true
}

// parseVariant skips a variation.
func (p *Parser) parseVariant() bool {
	if p.currentToken.Type != RAVStart {
		return false
	}
	p.ravLevel++
	p.nextToken()
	p.skipComments()
	if moves := p.parseMoveList(); moves == nil {
		p.logger.WithField("line", p.currentToken.Line).Warn("missing move list in variation")
	}
	p.parseResult()
	p.skipComments()

	if p.currentToken.Type == RAVEnd {
		p.ravLevel--
		p.nextToken()
	} else {
		p.logger.WithField("line", p.currentToken.Line).Warn("missing ')' to close variation")
	}
	p.skipComments()
	return true
}

func (p *Parser) skipComments() {
	for p.currentToken.Type == CommentToken {
		p.nextToken()
	}
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type != TerminatingResult {
		return ""
	}
	result := p.currentToken.Text
	if p.ravLevel == 0 {
		// Leave the next token unread so the following game starts cleanly.
		p.currentToken = &Token{Type: NoToken}
	} else {
		p.nextToken()
	}
	return result
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() []*Game {
	var games []*Game
	for {
		game := p.ParseGame()
		if game == nil {
			return games
		}
		games = append(games, game)
	}
}
