package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func writeFiles(t *testing.T, files map[string]string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		body, ok := files[name]
		if !ok {
			continue
		}
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestRunBatch_Text(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "1. e4 e5 2. Nf3 *",
		"b.txt": "1. f3 e5 2. g4 Qh4# 0-1",
		"c.txt": "1. e4 e4",
	})
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).WithWorkers(2).Build()

	failed, err := runBatch(context.Background(), cfg, logging.Discard(), paths)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 1)

	want := "a.txt:\n1. e4 e5 2. Nf3 *\nBlack to move.\n" +
		"b.txt:\n1. f3 e5 2. g4 Qh4# 0-1\nCheckmate. 0-1\n"
	testutil.AssertContains(t, out.String(), want)
	testutil.AssertContains(t, out.String(), "c.txt: ")
}

func TestRunBatch_JSONFromFEN(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "O-O-O O-O",
		"b.txt": "[FEN \"" + testutil.StalemateFEN + "\"]\n",
	})
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).WithJSON(true).WithStartFEN(testutil.KiwipeteFEN).Build()

	failed, err := runBatch(context.Background(), cfg, logging.Discard(), paths)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)

	var got output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, len(got.Games), 2)
	testutil.AssertEqual(t, got.Games[0].InitialFEN, testutil.KiwipeteFEN)
	testutil.AssertEqual(t, got.Games[0].PlyCount, 2)
	testutil.AssertEqual(t, got.Games[1].Status, "stalemate")
	testutil.AssertEqual(t, got.Games[1].Result, "1/2-1/2")
}

func TestRunBatch_MissingFile(t *testing.T) {
	cfg := config.NewConfigBuilder().WithOutput(&bytes.Buffer{}).Build()
	_, err := runBatch(context.Background(), cfg, logging.Discard(), []string{filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Error("missing file accepted")
	}
}

func TestRunBatch_SuppressDuplicates(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "1. Nf3 Nf6 2. g3",
		"b.txt": "1. g3 Nf6 2. Nf3",
		"c.txt": "1. e4",
	})
	tests := []struct {
		name  string
		exact bool
		want  []string
	}{
		{"transpositions dropped", false, []string{"a.txt", "c.txt"}},
		{"exact keeps transpositions", true, []string{"a.txt", "b.txt", "c.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := config.NewConfigBuilder().
				WithOutput(out).
				WithJSON(true).
				WithDuplicateSuppression(true, tt.exact).
				Build()
			_, err := runBatch(context.Background(), cfg, logging.Discard(), paths)
			testutil.AssertNoError(t, err)

			var got output.JSONOutput
			if err := json.Unmarshal(out.Bytes(), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			var names []string
			for _, g := range got.Games {
				names = append(names, g.Name)
			}
			testutil.AssertSameStrings(t, names, tt.want)
		})
	}
}

func TestRunBatch_MultiGameFile(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.txt": "[Event \"one\"]\n1. e4 {main} e5 (1... c5) 2. Nf3 *\n\n[Event \"two\"]\n1. d4 d5 1/2-1/2\n",
	})
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).Build()

	failed, err := runBatch(context.Background(), cfg, logging.Discard(), paths)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)
	testutil.AssertEqual(t, out.String(), "a.txt#1:\n1. e4 e5 2. Nf3 *\nBlack to move.\na.txt#2:\n1. d4 d5 *\nWhite to move.\n")
}
