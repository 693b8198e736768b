// Package notation converts between algebraic move text and moves: Decode
// parses text into a partially specified candidate, Match resolves a
// candidate against the legal moves of a turn and Encode renders a legal
// move with just enough disambiguation.
package notation

import (
	"regexp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// pattern is one accepted shape of move text.
type pattern struct {
	name  string
	re    *regexp.Regexp
	build func(groups []string) *chess.Move
}

// mustPattern anchors body, allowing surrounding whitespace and a trailing
// check or mate marker.
func mustPattern(name, body string, build func([]string) *chess.Move) pattern {
	return pattern{
		name:  name,
		re:    regexp.MustCompile(`^\s*` + body + `[+#]?\s*$`),
		build: build,
	}
}

// patterns are tried in order; the first that matches wins.
var patterns = []pattern{
	mustPattern("pawn move", `([a-h])([1-8])`, func(g []string) *chess.Move {
		return pawnCandidate(g[1], g[1]+g[2], false, "")
	}),
	mustPattern("pawn promotion", `([a-h])([18])=?([QBNR])`, func(g []string) *chess.Move {
		return pawnCandidate(g[1], g[1]+g[2], false, g[3])
	}),
	mustPattern("pawn capture", `([a-h])x([a-h])([1-8])`, func(g []string) *chess.Move {
		return pawnCandidate(g[1], g[2]+g[3], true, "")
	}),
	mustPattern("pawn capture promotion", `([a-h])x([a-h])([18])=?([QBNR])`, func(g []string) *chess.Move {
		return pawnCandidate(g[1], g[2]+g[3], true, g[4])
	}),
	mustPattern("piece move", `([KQBNR])([a-h][1-8])`, func(g []string) *chess.Move {
		return pieceCandidate(g[1], "", "", false, g[2])
	}),
	mustPattern("piece capture", `([KQBNR])x([a-h][1-8])`, func(g []string) *chess.Move {
		return pieceCandidate(g[1], "", "", true, g[2])
	}),
	mustPattern("piece by file", `([KQBNR])([a-h])(x?)([a-h][1-8])`, func(g []string) *chess.Move {
		return pieceCandidate(g[1], g[2], "", g[3] == "x", g[4])
	}),
	mustPattern("piece by rank", `([KQBNR])([1-8])(x?)([a-h][1-8])`, func(g []string) *chess.Move {
		return pieceCandidate(g[1], "", g[2], g[3] == "x", g[4])
	}),
	mustPattern("piece by square", `([KQBNR])([a-h])([1-8])(x?)([a-h][1-8])`, func(g []string) *chess.Move {
		return pieceCandidate(g[1], g[2], g[3], g[4] == "x", g[5])
	}),
	mustPattern("kingside castle", `[O0]-[O0]`, func([]string) *chess.Move {
		return &chess.Move{Kind: chess.KingsideCastle, PieceKind: chess.King, From: unspecified()}
	}),
	mustPattern("queenside castle", `[O0]-[O0]-[O0]`, func([]string) *chess.Move {
		return &chess.Move{Kind: chess.QueensideCastle, PieceKind: chess.King, From: unspecified()}
	}),
}

func unspecified() chess.Coord {
	return chess.Coord{File: chess.Unspecified, Rank: chess.Unspecified}
}

func pawnCandidate(fromFile, to string, capture bool, promotion string) *chess.Move {
	m := pieceCandidate("P", fromFile, "", capture, to)
	if promotion != "" {
		m.Promotion, _ = chess.KindFromLetter(promotion[0])
	}
	return m
}

func pieceCandidate(letter, fromFile, fromRank string, capture bool, to string) *chess.Move {
	kind, _ := chess.KindFromLetter(letter[0])
	m := &chess.Move{
		Kind:      chess.NormalMove,
		PieceKind: kind,
		From:      unspecified(),
		To:        chess.MustSquare(to),
		IsCapture: capture,
	}
	if fromFile != "" {
		m.From.File, _ = chess.FileFromLetter(fromFile[0])
	}
	if fromRank != "" {
		m.From.Rank, _ = chess.RankFromDigit(fromRank[0])
	}
	return m
}

// Decode parses move text into a candidate move. Text matching no pattern
// yields a move of kind InvalidMove.
func Decode(text string) *chess.Move {
	for _, p := range patterns {
		if groups := p.re.FindStringSubmatch(text); groups != nil {
			return p.build(groups)
		}
	}
	return chess.NewInvalidMove()
}
