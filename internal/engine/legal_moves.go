package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveSet is the set of legal moves for one turn. Each move is keyed by the
// digest of the board it produces; castles are keyed by the board with only
// the king relocated, which is what a drag-and-drop client submits.
type MoveSet struct {
	byDigest map[string]*chess.Move
	byKey    map[chess.MoveKey]*chess.Move
	digests  map[*chess.Move]string
	order    []*chess.Move
}

func newMoveSet() *MoveSet {
	return &MoveSet{
		byDigest: make(map[string]*chess.Move),
		byKey:    make(map[chess.MoveKey]*chess.Move),
		digests:  make(map[*chess.Move]string),
	}
}

// add records m under digest. A digest already present is not replaced.
func (s *MoveSet) add(digest string, m *chess.Move) {
	if _, ok := s.byDigest[digest]; ok {
		return
	}
	s.byDigest[digest] = m
	s.byKey[m.Key()] = m
	s.digests[m] = digest
	s.order = append(s.order, m)
}

// Len returns the number of legal moves.
func (s *MoveSet) Len() int {
	return len(s.order)
}

// Moves returns the legal moves in generation order.
func (s *MoveSet) Moves() []*chess.Move {
	return slices.Clone(s.order)
}

// Get returns the move producing digest, or nil.
func (s *MoveSet) Get(digest string) *chess.Move {
	return s.byDigest[digest]
}

// Lookup returns the move with the given tuple identity, or nil.
func (s *MoveSet) Lookup(key chess.MoveKey) *chess.Move {
	return s.byKey[key]
}

// DigestOf returns the digest m is keyed under.
func (s *MoveSet) DigestOf(m *chess.Move) (string, bool) {
	d, ok := s.digests[m]
	return d, ok
}

// Contains reports whether m itself is a member of the set.
func (s *MoveSet) Contains(m *chess.Move) bool {
	_, ok := s.digests[m]
	return ok
}

// Digests returns every digest in sorted order.
func (s *MoveSet) Digests() []string {
	keys := maps.Keys(s.byDigest)
	slices.Sort(keys)
	return keys
}

// LegalMoves enumerates the legal moves of the side to move: every
// candidate of every owned piece is tried and kept only if the mover's king
// is not attacked afterwards.
func (p *Position) LegalMoves() (*MoveSet, error) {
	mover := p.Players[p.Turn]
	set := newMoveSet()
	pieces := slices.Clone(mover.Pieces)
	for _, pc := range pieces {
		for _, m := range p.candidates(pc) {
			var digest string
			safe := false
			err := p.Try(m, func() error {
				if safe = !p.InCheck(mover.Colour); safe {
					digest = p.Board.CompactString()
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			if safe {
				set.add(digest, m)
			}
		}
	}
	return set, nil
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	set, err := p.LegalMoves()
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return int64(set.Len()), nil
	}
	var nodes int64
	for _, m := range set.order {
		d, err := p.Play(m)
		if err != nil {
			return 0, err
		}
		n, err := Perft(p, depth-1)
		if err != nil {
			return 0, err
		}
		if err := p.Undo(d); err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}
