package notation_test

import (
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var fixtures = []struct {
	name string
	fen  string
	// cornerCastles are castles notnil allows but the engine refuses
	// because the rook's corner is attacked.
	cornerCastles []string
}{
	{"initial", engine.InitialFEN, nil},
	{"kiwipete", testutil.KiwipeteFEN, nil},
	{"endgame", testutil.EndgameFEN, nil},
	{"promotion", testutil.PromotionFEN, nil},
	{"talkchess", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []string{"O-O"}},
}

func isCornerCastle(san string, castles []string) bool {
	for _, c := range castles {
		if strings.TrimRight(san, "+#") == c {
			return true
		}
	}
	return false
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			g := testutil.MustGameFromFEN(t, fx.fen)
			legal := g.LegalMoves().Moves()
			for _, m := range legal {
				text := notation.Encode(m, legal)
				got, err := notation.Match(notation.Decode(text), legal)
				if err != nil {
					t.Errorf("Match(%q) error = %v", text, err)
					continue
				}
				if got != m {
					t.Errorf("Match(%q) = %s, want %s", text, got.LongAlgebraic(), m.LongAlgebraic())
				}
			}
		})
	}
}

func TestEncodeAgreesWithNotnil(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			opt, err := nchess.FEN(fx.fen)
			testutil.AssertNoError(t, err, "nchess.FEN")
			pos := nchess.NewGame(opt).Position()

			var want []string
			for _, m := range pos.ValidMoves() {
				san := nchess.AlgebraicNotation{}.Encode(pos, m)
				if isCornerCastle(san, fx.cornerCastles) {
					continue
				}
				want = append(want, strings.TrimRight(san, "+#"))
			}

			g := testutil.MustGameFromFEN(t, fx.fen)
			testutil.AssertSameStrings(t, g.LegalNotations(), want, "legal SAN")
			for _, c := range fx.cornerCastles {
				_, err := notation.Match(notation.Decode(c), g.LegalMoves().Moves())
				testutil.AssertErrorIs(t, err, errors.ErrNoLegalMatch, c)
			}
		})
	}
}

func TestDecodeAcceptsNotnilNotation(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			opt, err := nchess.FEN(fx.fen)
			testutil.AssertNoError(t, err, "nchess.FEN")
			pos := nchess.NewGame(opt).Position()
			g := testutil.MustGameFromFEN(t, fx.fen)
			legal := g.LegalMoves().Moves()

			for _, m := range pos.ValidMoves() {
				san := nchess.AlgebraicNotation{}.Encode(pos, m)
				if isCornerCastle(san, fx.cornerCastles) {
					continue
				}
				got, err := notation.Match(notation.Decode(san), legal)
				if err != nil {
					t.Errorf("Match(%q) error = %v", san, err)
					continue
				}
				testutil.AssertEqual(t, got.LongAlgebraic(), m.String(), san)
			}
		})
	}
}
