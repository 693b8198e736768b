package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// command is an interactive command other than a move.
type command struct {
	name string
	help string
	run  func(r *REPL) error
}

var commands = []command{
	{"moves", "list the legal moves", (*REPL).listMoves},
	{"undo", "take back the last move", (*REPL).undo},
	{"board", "show the board", (*REPL).board},
	{"fen", "show the position in FEN", (*REPL).fen},
	{"history", "show the moves played", (*REPL).history},
	{"json", "show the game as JSON", (*REPL).json},
	{"new", "start a new game", (*REPL).restart},
	{"quit", "leave", nil},
}

// REPL reads moves and commands, one per line, and plays them on a game.
type REPL struct {
	cfg    *config.Config
	out    io.Writer
	logger log.Interface
	game   *engine.Game
}

// NewREPL starts a game from the configured position.
func NewREPL(cfg *config.Config, logger log.Interface) (*REPL, error) {
	r := &REPL{cfg: cfg, out: cfg.Output, logger: logger}
	if err := r.restart(); err != nil {
		return nil, err
	}
	return r, nil
}

// Run processes lines from in until end of input or quit.
func (r *REPL) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	r.prompt()
	for sc.Scan() {
		if quit := r.Exec(sc.Text()); quit {
			return nil
		}
		r.prompt()
	}
	return sc.Err()
}

func (r *REPL) prompt() {
	fmt.Fprintf(r.out, "%s> ", r.game.Turn())
}

// Exec handles one input line and reports whether the session should end.
func (r *REPL) Exec(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help", "?":
		for _, c := range commands {
			fmt.Fprintf(r.out, "  %-8s %s\n", c.name, c.help)
		}
		fmt.Fprintln(r.out, "  anything else is read as a move, e.g. e4, Nf3, O-O, e8=Q")
		return false
	}
	for _, c := range commands {
		if c.name == line && c.run != nil {
			if err := c.run(r); err != nil {
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
			return false
		}
	}
	r.move(line)
	return false
}

func (r *REPL) move(text string) {
	u, err := r.game.Play(text)
	if err != nil {
		fmt.Fprintf(r.out, "invalid: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "%s\n", u.Notation)
	if r.game.IsOver() || r.game.InCheck() {
		fmt.Fprintln(r.out, output.StatusLine(r.game))
	}
}

func (r *REPL) listMoves() error {
	moves := r.game.LegalNotations()
	slices.Sort(moves)
	if len(moves) == 0 {
		fmt.Fprintln(r.out, output.StatusLine(r.game))
		return nil
	}
	fmt.Fprintln(r.out, strings.Join(moves, " "))
	return nil
}

func (r *REPL) undo() error {
	if err := r.game.TakeBack(); err != nil {
		return err
	}
	fmt.Fprintln(r.out, output.StatusLine(r.game))
	return nil
}

func (r *REPL) board() error {
	output.WriteBoard(r.out, r.game)
	return nil
}

func (r *REPL) fen() error {
	fmt.Fprintln(r.out, r.game.FEN())
	return nil
}

func (r *REPL) history() error {
	output.WriteMoveText(r.out, r.game, output.DefaultLineLength)
	return nil
}

func (r *REPL) json() error {
	return output.WriteGameJSON(r.out, output.GameToJSON(r.game))
}

func (r *REPL) restart() error {
	g, err := r.cfg.NewGame(gameOptions(r.logger)...)
	if err != nil {
		return err
	}
	r.game = g
	return nil
}
