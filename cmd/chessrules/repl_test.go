package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newTestREPL(t *testing.T, fen string) (*REPL, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).WithStartFEN(fen).Build()
	r, err := NewREPL(cfg, logging.Discard())
	testutil.AssertNoError(t, err)
	return r, out
}

func TestREPL_Session(t *testing.T) {
	r, out := newTestREPL(t, "")
	input := strings.Join([]string{"e4", "e5", "Nf3", "fen", "history", "quit", "d4"}, "\n")
	testutil.AssertNoError(t, r.Run(strings.NewReader(input)))

	got := out.String()
	testutil.AssertContains(t, got, "White> e4\n")
	testutil.AssertContains(t, got, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2\n")
	testutil.AssertContains(t, got, "1. e4 e5 2. Nf3 *\n")
	testutil.AssertEqual(t, len(r.game.Log()), 3, "input after quit ignored")
}

func TestREPL_Commands(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		lines []string
		want  string
	}{
		{"invalid move", "", []string{"e5"}, "invalid: "},
		{"syntax", "", []string{"hello"}, "invalid: "},
		{"moves", testutil.PromotionFEN, []string{"moves"}, "Kh1"},
		{"moves when over", testutil.FoolsMateFEN, []string{"moves"}, "Checkmate. 0-1"},
		{"undo empty", "", []string{"undo"}, "error: "},
		{"undo", "", []string{"e4", "undo"}, "White to move."},
		{"board", "", []string{"board"}, "  a b c d e f g h\n"},
		{"json", "", []string{"d4", "json"}, `"san": "d4"`},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", []string{"Ra8"}, "Ra8+\nBlack to move, in check."},
		{"mate", "", []string{"f3", "e5", "g4", "Qh4"}, "Qh4#\nCheckmate. 0-1"},
		{"help", "", []string{"help"}, "take back the last move"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestREPL(t, tt.fen)
			for _, line := range tt.lines {
				r.Exec(line)
			}
			testutil.AssertContains(t, out.String(), tt.want)
		})
	}
}

func TestREPL_New(t *testing.T) {
	r, _ := newTestREPL(t, testutil.KiwipeteFEN)
	r.Exec("O-O")
	r.Exec("new")
	testutil.AssertEqual(t, r.game.FEN(), testutil.KiwipeteFEN)
	testutil.AssertTrue(t, r.Exec("exit"))
}

func TestRunPerft(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, runPerft(&buf, "", 2))
	testutil.AssertEqual(t, buf.String(), "perft(1) = 20\nperft(2) = 400\n")

	testutil.AssertNoError(t, runPerft(&buf, testutil.KiwipeteFEN, 1))
	testutil.AssertContains(t, buf.String(), "perft(1) = 48\n")

	if err := runPerft(&buf, "bogus", 1); err == nil {
		t.Error("runPerft accepted a bad FEN")
	}
}
