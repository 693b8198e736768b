// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"hash/fnv"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DuplicateDetector tracks the games seen so far.
type DuplicateDetector struct {
	// seen maps a final position digest to the games that reached it
	seen map[string][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch  bool
	duplicateCount int
}

// GameSignature identifies a game for duplicate detection.
type GameSignature struct {
	// Digest is the digest of the final position
	Digest string
	// StartFEN is the position the game started from
	StartFEN string
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// MovesHash hashes the notation of every move played
	MovesHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. Without exactMatch
// two games are duplicates when they start and end in the same positions
// after the same number of moves.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		seen:          make(map[string][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of a game.
func Signature(g *engine.Game) GameSignature {
	notations := g.Notations()
	return GameSignature{
		Digest:    g.Digest(),
		StartFEN:  g.StartFEN(),
		MoveCount: len(notations),
		MovesHash: hashMoveSequence(notations),
	}
}

// CheckAndAdd reports whether g duplicates a game seen earlier and records
// it otherwise.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}
	sig := Signature(g)
	for _, existing := range d.seen[sig.Digest] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	d.seen[sig.Digest] = append(d.seen[sig.Digest], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Digest != b.Digest || a.StartFEN != b.StartFEN || a.MoveCount != b.MoveCount {
		return false
	}
	return !d.useExactMatch || a.MovesHash == b.MovesHash
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.seen {
		count += len(sigs)
	}
	return count
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[string][]GameSignature)
	d.duplicateCount = 0
}

// hashMoveSequence hashes the move texts in order.
func hashMoveSequence(notations []string) uint64 {
	h := fnv.New64a()
	for _, n := range notations {
		h.Write([]byte(n))
		h.Write([]byte{' '})
	}
	return h.Sum64()
}
