package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Encode renders m in algebraic notation. legal is the set m was chosen
// from and decides how much of the source square must be shown. Check and
// mate markers are not added.
func Encode(m *chess.Move, legal []*chess.Move) string {
	switch m.Kind {
	case chess.KingsideCastle:
		return "O-O"
	case chess.QueensideCastle:
		return "O-O-O"
	case chess.InvalidMove:
		return ""
	}

	var sb strings.Builder
	if m.PieceKind == chess.Pawn {
		if m.IsCapture {
			sb.WriteByte(m.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(m.PieceKind.Letter())
	file, rank := disambiguation(m, legal)
	if file {
		sb.WriteByte(m.From.FileLetter())
	}
	if rank {
		sb.WriteByte(m.From.RankDigit())
	}
	if m.IsCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation compares m with every other legal move of the same piece
// kind to the same square. One from another file calls for the source
// file; one from the same file calls for the source rank.
func disambiguation(m *chess.Move, legal []*chess.Move) (file, rank bool) {
	for _, other := range legal {
		if other == m || other.Kind != chess.NormalMove ||
			other.PieceKind != m.PieceKind || other.To != m.To || other.From == m.From {
			continue
		}
		if other.From.File != m.From.File {
			file = true
		} else {
			rank = true
		}
	}
	return file, rank
}
