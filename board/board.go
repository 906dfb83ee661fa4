package board

import (
	"errors"
	"fmt"

	"github.com/daystram/kestrel/position"
)

var (
	ErrInvalidFEN          = errors.New("invalid fen")
	ErrSquareOccupied      = errors.New("square occupied")
	ErrInvalidKind         = errors.New("invalid kind")
	ErrInvariantViolation  = errors.New("board invariant violated")
	errAggregateOutOfSync  = fmt.Errorf("%w: aggregate out of sync", ErrInvariantViolation)
	errOverlappingKinds    = fmt.Errorf("%w: two kinds share a square", ErrInvariantViolation)
	errMisplacedEnPassant  = fmt.Errorf("%w: en passant target misplaced", ErrInvariantViolation)
	errUnknownTurn         = fmt.Errorf("%w: unknown side to move", ErrInvariantViolation)
	errMultipleEnPassants  = fmt.Errorf("%w: more than one en passant target", ErrInvariantViolation)
	errOccupiedEnPassant   = fmt.Errorf("%w: en passant target occupied", ErrInvariantViolation)
	errInconsistentClock   = fmt.Errorf("%w: full move clock is zero", ErrInvariantViolation)
	errInvalidCastleRights = fmt.Errorf("%w: unknown castle rights bits", ErrInvariantViolation)
)

// Board is the position state. It holds no pointers, so a plain assignment
// copies it completely.
//
// Little-endian rank-file (LERF) mapping.
type Board struct {
	// grid data: one slot per kind, then the black, white and all aggregates
	bitmaps [slotCount]Bitmap

	// meta
	enPassant     Bitmap
	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side
}

type boardConfig struct {
	fen    string
	hasFEN bool
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
		cfg.hasFEN = true
	}
}

// NewBoard returns the standard starting position, or the position described
// by WithFEN. Any string passed to WithFEN is parsed, including "".
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if cfg.hasFEN {
		if err := UnmarshalFEN(cfg.fen, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	for _, k := range Kinds {
		b.bitmaps[kindSlots[k].slot] = maskStartup[k]
	}
	b.bitmaps[slotWhite] = maskStartupSides[SideWhite]
	b.bitmaps[slotBlack] = maskStartupSides[SideBlack]
	b.bitmaps[slotAll] = Union(maskStartupSides[SideWhite], maskStartupSides[SideBlack])
	b.turn = SideWhite
	b.fullMoveClock = 1
	for _, d := range []CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	} {
		b.castleRights.Set(d, true)
	}
	return b, nil
}

// AddPiece places a piece of kind k on an empty square. The kind bitmap, its
// side aggregate and the all-occupancy aggregate are updated together or not
// at all.
func (b *Board) AddPiece(k Kind, pos position.Pos) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}
	cell := maskCell[pos.Index()]
	if b.bitmaps[slotAll]&cell != 0 {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, pos)
	}
	ks := kindSlots[k]
	b.bitmaps[ks.slot] |= cell
	b.bitmaps[ks.agg] |= cell
	b.bitmaps[slotAll] |= cell
	return nil
}

// Apply plays mv as far as the board currently tracks: it flips the side to
// move, replaces the en passant target and advances the clocks. Piece
// placement is left untouched.
func (b *Board) Apply(mv Move) {
	var reset bool
	if k, ok := b.KindAt(mv.From()); ok && k.Piece() == PiecePawn {
		reset = true
	}
	if mv.IsCapture() {
		reset = true
	}
	if reset {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	b.enPassant = 0
	if mv.IsDoublePush() {
		b.enPassant = maskCell[position.NewPos(mv.From().File(), (mv.From().Rank()+mv.To().Rank())/2).Index()]
	}

	if b.turn == SideBlack {
		b.fullMoveClock++
	}
	b.turn = b.turn.Opposite()
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Turn() Side {
	return b.turn
}

// EnPassant returns the en passant target square, if any.
func (b *Board) EnPassant() (position.Pos, bool) {
	if b.enPassant == 0 {
		return 0, false
	}
	return b.enPassant.LS1B(), true
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// Bitmap returns the occupancy of a single kind.
func (b *Board) Bitmap(k Kind) Bitmap {
	if !k.IsValid() {
		return 0
	}
	return b.bitmaps[kindSlots[k].slot]
}

// SideBitmap returns the occupancy of every piece of side s.
func (b *Board) SideBitmap(s Side) Bitmap {
	switch s {
	case SideWhite:
		return b.bitmaps[slotWhite]
	case SideBlack:
		return b.bitmaps[slotBlack]
	default:
		return 0
	}
}

// Occupied returns the occupancy of both sides.
func (b *Board) Occupied() Bitmap {
	return b.bitmaps[slotAll]
}

// KindAt returns the kind standing on pos.
func (b *Board) KindAt(pos position.Pos) (Kind, bool) {
	cell := maskCell[pos.Index()]
	if b.bitmaps[slotAll]&cell == 0 {
		return KindUnknown, false
	}
	for _, k := range Kinds {
		if b.bitmaps[kindSlots[k].slot]&cell != 0 {
			return k, true
		}
	}
	return KindUnknown, false
}

// Validate recomputes every aggregate and checks the board invariants.
func (b *Board) Validate() error {
	var sides [SideBlack + 1]Bitmap
	var seen Bitmap
	for _, k := range Kinds {
		bm := b.bitmaps[kindSlots[k].slot]
		if seen&bm != 0 {
			return fmt.Errorf("%w: %s on %s", errOverlappingKinds, k, (seen & bm).LS1B())
		}
		seen |= bm
		sides[k.Side()] |= bm
	}
	if sides[SideWhite] != b.bitmaps[slotWhite] || sides[SideBlack] != b.bitmaps[slotBlack] {
		return fmt.Errorf("%w: side", errAggregateOutOfSync)
	}
	if Union(b.bitmaps[slotWhite], b.bitmaps[slotBlack]) != b.bitmaps[slotAll] {
		return fmt.Errorf("%w: all", errAggregateOutOfSync)
	}

	if b.turn != SideWhite && b.turn != SideBlack {
		return errUnknownTurn
	}
	if b.fullMoveClock == 0 {
		return errInconsistentClock
	}
	if b.castleRights&^0b1111 != 0 {
		return errInvalidCastleRights
	}
	if b.enPassant != 0 {
		if b.enPassant.BitCount() != 1 {
			return errMultipleEnPassants
		}
		// the side that just pushed is the side not to move
		want := maskRow[position.Rank3]
		if b.turn == SideWhite {
			want = maskRow[position.Rank6]
		}
		if b.enPassant&want == 0 {
			return fmt.Errorf("%w: %s", errMisplacedEnPassant, b.enPassant.LS1B())
		}
		if b.enPassant&b.bitmaps[slotAll] != 0 {
			return fmt.Errorf("%w: %s", errOccupiedEnPassant, b.enPassant.LS1B())
		}
	}
	return nil
}
