package board

import (
	"errors"
	"testing"

	"github.com/daystram/kestrel/position"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := b.Validate(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, DefaultStartingPositionFEN)
	}

	fromFEN, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if *b != *fromFEN {
		t.Errorf("unexpected board: got=%+v want=%+v", *fromFEN, *b)
	}

	tests := []struct {
		pos  position.Pos
		want Kind
	}{
		{pos: position.A1, want: KindWhiteRook},
		{pos: position.B1, want: KindWhiteKnight},
		{pos: position.C1, want: KindWhiteBishop},
		{pos: position.D1, want: KindWhiteQueen},
		{pos: position.E1, want: KindWhiteKing},
		{pos: position.E2, want: KindWhitePawn},
		{pos: position.D8, want: KindBlackQueen},
		{pos: position.E8, want: KindBlackKing},
		{pos: position.G8, want: KindBlackKnight},
		{pos: position.H7, want: KindBlackPawn},
	}
	for _, tt := range tests {
		if got, ok := b.KindAt(tt.pos); !ok || got != tt.want {
			t.Errorf("unexpected kind on %s: got=%v want=%v", tt.pos, got, tt.want)
		}
	}
	if _, ok := b.KindAt(position.E4); ok {
		t.Error("unexpected piece on e4")
	}
}

func TestBoardInvariants(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var white, black Bitmap
	for _, k := range Kinds {
		for _, other := range Kinds {
			if k != other && b.Bitmap(k)&b.Bitmap(other) != 0 {
				t.Errorf("unexpected overlap: %v and %v", k, other)
			}
		}
		if k.IsWhite() {
			white |= b.Bitmap(k)
		} else {
			black |= b.Bitmap(k)
		}
	}
	if white != b.SideBitmap(SideWhite) {
		t.Errorf("unexpected white aggregate: got=%#x want=%#x", b.SideBitmap(SideWhite), white)
	}
	if black != b.SideBitmap(SideBlack) {
		t.Errorf("unexpected black aggregate: got=%#x want=%#x", b.SideBitmap(SideBlack), black)
	}
	if white|black != b.Occupied() {
		t.Errorf("unexpected occupancy: got=%#x want=%#x", b.Occupied(), white|black)
	}
}

func TestAddPiece(t *testing.T) {
	t.Parallel()
	b := &Board{turn: SideWhite, fullMoveClock: 1}
	if err := b.AddPiece(KindWhiteRook, position.D4); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := b.AddPiece(KindBlackKnight, position.E5); err != nil {
		t.Fatal("unexpected error:", err)
	}
	want := *b

	if err := b.AddPiece(KindBlackQueen, position.D4); !errors.Is(err, ErrSquareOccupied) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrSquareOccupied)
	}
	if err := b.AddPiece(KindUnknown, position.A1); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidKind)
	}
	if *b != want {
		t.Errorf("unexpected board after rejected placements: got=%+v want=%+v", *b, want)
	}

	if got := b.Bitmap(KindWhiteRook); got != maskCell[position.D4] {
		t.Errorf("unexpected rook bitmap: got=%#x", got)
	}
	if got := b.SideBitmap(SideBlack); got != maskCell[position.E5] {
		t.Errorf("unexpected black aggregate: got=%#x", got)
	}
	if err := b.Validate(); err != nil {
		t.Error("unexpected error:", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		corrupt func(b *Board)
	}{
		{
			name: "stale side aggregate",
			corrupt: func(b *Board) {
				b.bitmaps[slotWhite] |= maskCell[position.E4]
			},
		},
		{
			name: "stale all aggregate",
			corrupt: func(b *Board) {
				b.bitmaps[slotAll] &^= maskCell[position.E2]
			},
		},
		{
			name: "overlapping kinds",
			corrupt: func(b *Board) {
				b.bitmaps[kindSlots[KindWhiteQueen].slot] |= maskCell[position.E2]
			},
		},
		{
			name: "misplaced en passant",
			corrupt: func(b *Board) {
				b.enPassant = maskCell[position.E3]
			},
		},
		{
			name: "occupied en passant",
			corrupt: func(b *Board) {
				b.turn = SideBlack
				b.enPassant = maskCell[position.E3]
				b.bitmaps[kindSlots[KindWhitePawn].slot] |= maskCell[position.E3]
				b.bitmaps[slotWhite] |= maskCell[position.E3]
				b.bitmaps[slotAll] |= maskCell[position.E3]
			},
		},
		{
			name: "two en passant targets",
			corrupt: func(b *Board) {
				b.turn = SideBlack
				b.enPassant = maskCell[position.E3] | maskCell[position.D3]
			},
		},
		{
			name: "unknown turn",
			corrupt: func(b *Board) {
				b.turn = SideUnknown
			},
		},
		{
			name: "zero full move clock",
			corrupt: func(b *Board) {
				b.fullMoveClock = 0
			},
		},
		{
			name: "castle rights",
			corrupt: func(b *Board) {
				b.castleRights = 0b10000
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			tt.corrupt(b)
			if err := b.Validate(); !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrInvariantViolation)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	b.Apply(NewMove(position.E2, position.E4, OptionDoublePush))
	if got := b.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%v want=%v", got, SideBlack)
	}
	if got, ok := b.EnPassant(); !ok || got != position.E3 {
		t.Errorf("unexpected en passant: got=%v,%v want=%v", got, ok, position.E3)
	}
	if got := b.HalfMoveClock(); got != 0 {
		t.Errorf("unexpected half move clock: got=%d want=%d", got, 0)
	}
	if got := b.FullMoveClock(); got != 1 {
		t.Errorf("unexpected full move clock: got=%d want=%d", got, 1)
	}
	if err := b.Validate(); err != nil {
		t.Error("unexpected error:", err)
	}

	b.Apply(NewMove(position.G8, position.F6, OptionQuiet))
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%v want=%v", got, SideWhite)
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("unexpected en passant target")
	}
	if got := b.HalfMoveClock(); got != 1 {
		t.Errorf("unexpected half move clock: got=%d want=%d", got, 1)
	}
	if got := b.FullMoveClock(); got != 2 {
		t.Errorf("unexpected full move clock: got=%d want=%d", got, 2)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	c := b.Clone()
	if err := c.AddPiece(KindWhiteQueen, position.E4); err != nil {
		t.Fatal("unexpected error:", err)
	}
	c.Apply(NewMove(position.D2, position.D4, OptionDoublePush))

	if b.Occupied().IsSet(position.E4) {
		t.Error("clone shares occupancy with its source")
	}
	if b.Turn() != SideWhite {
		t.Error("clone shares turn with its source")
	}
}

func TestKind(t *testing.T) {
	t.Parallel()
	for i, k := range Kinds {
		wantWhite := i >= len(Kinds)/2
		if got := k.IsWhite(); got != wantWhite {
			t.Errorf("unexpected IsWhite for %v: got=%v want=%v", k, got, wantWhite)
		}
		if got := NewKind(k.Side(), k.Piece()); got != k {
			t.Errorf("unexpected kind: got=%v want=%v", got, k)
		}
		if got := KindFromSymbol(rune(k.Symbol()[0])); got != k {
			t.Errorf("unexpected kind from %s: got=%v want=%v", k.Symbol(), got, k)
		}
		if ks := kindSlots[k]; ks.agg == ks.slot || ks.slot >= kindCount {
			t.Errorf("unexpected slot for %v: %+v", k, ks)
		}
	}
	if KindUnknown.IsWhite() || KindUnknown.IsValid() {
		t.Error("unexpected valid unknown kind")
	}
	if got := NewKind(SideUnknown, PiecePawn); got != KindUnknown {
		t.Errorf("unexpected kind: got=%v want=%v", got, KindUnknown)
	}
}

func TestNewBoardEmptyFEN(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(""))
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidFEN)
	}
	if b != nil {
		t.Errorf("unexpected board: got=%s", b.FEN())
	}
}
