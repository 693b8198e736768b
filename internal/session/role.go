package session

import "github.com/lgbarn/chessrules-go/internal/chess"

// Role is what a participant may do in a session.
type Role string

const (
	RoleWhite     Role = "white"
	RoleBlack     Role = "black"
	RoleSpectator Role = "spectator"
)

// String returns the role name.
func (r Role) String() string { return string(r) }

// Colour returns the side a player role moves for.
func (r Role) Colour() (chess.Colour, bool) {
	switch r {
	case RoleWhite:
		return chess.White, true
	case RoleBlack:
		return chess.Black, true
	}
	return chess.White, false
}

func roleOf(c chess.Colour) Role {
	if c == chess.White {
		return RoleWhite
	}
	return RoleBlack
}
