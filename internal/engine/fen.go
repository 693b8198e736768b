package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN builds a position from a FEN string. Castling rights
// become the unmoved state of the king and rook they name; pawns off their
// home rank count as moved; the en passant square marks the pawn that was
// just double pushed. Missing trailing fields take their defaults.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, &errors.FENError{Field: "placement"}
	}

	p := newEmptyPosition()
	if err := parsePlacement(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts); err != nil {
		return nil, err
	}

	if p.InCheck(p.Turn.Opposite()) {
		return nil, &errors.FENError{
			Field: "placement",
			Got:   parts[0],
			Err:   fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN),
		}
	}
	return p, nil
}

// parsePlacement parses the piece placement field.
func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Field: "placement", Got: placement}
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := chess.KindFromLetter(c)
			if !ok || file >= chess.BoardSize {
				return &errors.FENError{Field: "placement", Got: row}
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return &errors.FENError{Field: "placement", Got: row}
			}
			if kind == chess.King && p.Players[colour].King != nil {
				return &errors.FENError{Field: "placement", Got: placement}
			}
			pc := p.addPiece(kind, colour, chess.SquareAt(file, rank))
			pc.HasMoved = kind != chess.Pawn || pc.Pos.Rank != homeRank(colour)
			file++
		}
		if file != chess.BoardSize {
			return &errors.FENError{Field: "placement", Got: row}
		}
	}

	if p.Players[chess.White].King == nil || p.Players[chess.Black].King == nil {
		return &errors.FENError{
			Field: "placement",
			Got:   placement,
			Err:   fmt.Errorf("each side needs one king: %w", errors.ErrInvalidFEN),
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.Turn = chess.White
	case "b":
		p.Turn = chess.Black
	default:
		return &errors.FENError{Field: "side", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights marks the king and rook named by each right as
// unmoved. A right whose pieces are not in place is ignored.
func parseCastlingRights(p *Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		colour := chess.White
		if c >= 'a' && c <= 'z' {
			colour = chess.Black
			c -= 'a' - 'A'
		}
		var kind chess.MoveKind
		switch c {
		case 'K':
			kind = chess.KingsideCastle
		case 'Q':
			kind = chess.QueensideCastle
		default:
			return &errors.FENError{Field: "castling", Got: parts[2]}
		}

		r := regionFor(colour, kind)
		king := p.Players[colour].King
		rook := p.Board.Get(r.rookFrom)
		if king.Pos != r.kingFrom || rook == nil || rook.IsSentinel() ||
			rook.Kind != chess.Rook || rook.Colour != colour {
			continue
		}
		king.HasMoved = false
		rook.HasMoved = false
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return &errors.FENError{Field: "en passant", Got: parts[3]}
	}
	pusher := p.Players[p.Turn.Opposite()]
	rank := byte('6')
	if pusher.Colour == chess.White {
		rank = '3'
	}
	if sq.RankDigit() != rank {
		return &errors.FENError{Field: "en passant", Got: parts[3]}
	}
	pawn := p.Board.Get(sq.Offset(chess.Coord{Rank: pusher.Colour.Forward()}))
	if pawn == nil || pawn.IsSentinel() || pawn.Kind != chess.Pawn || pawn.Colour != pusher.Colour {
		return &errors.FENError{Field: "en passant", Got: parts[3]}
	}
	pusher.DoublePush = true
	pusher.DoublePushPawn = pawn
	return nil
}

// parseClocks parses the move counters. Only the fullmove number is kept.
func parseClocks(p *Position, parts []string) error {
	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return &errors.FENError{Field: "counters", Got: parts[4]}
		}
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.FENError{Field: "counters", Got: parts[5]}
		}
		p.FullMove = n
	}
	return nil
}

// FEN renders the position. The halfmove clock is not tracked and is
// always written as 0.
func (p *Position) FEN() string {
	var sb strings.Builder
	sb.WriteString(p.Board.CompactString())
	if p.Turn == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castlingField())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantField())
	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.FullMove))
	return sb.String()
}

func (p *Position) castlingField() string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := p.Players[colour].King
		for i := range castleRegions[colour] {
			r := &castleRegions[colour][i]
			if king.HasMoved || king.Pos != r.kingFrom || p.castlingRook(king, r) == nil {
				continue
			}
			letter := r.letter
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func (p *Position) enPassantField() string {
	pusher := p.Players[p.Turn.Opposite()]
	if !pusher.DoublePush || pusher.DoublePushPawn == nil {
		return "-"
	}
	return pusher.DoublePushPawn.Pos.Offset(chess.Coord{Rank: -pusher.Colour.Forward()}).String()
}
