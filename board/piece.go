package board

import "fmt"

// Piece is a colorless piece type.
type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = [4]Piece{PieceKnight, PieceBishop, PieceRook, PieceQueen}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		}
	}
	return ""
}

// Kind is one of the 12 concrete piece kinds. The first six are Black and
// the next six are White; this ordering is load-bearing.
type Kind uint8

const (
	KindBlackPawn Kind = iota
	KindBlackBishop
	KindBlackKnight
	KindBlackRook
	KindBlackQueen
	KindBlackKing
	KindWhitePawn
	KindWhiteBishop
	KindWhiteKnight
	KindWhiteRook
	KindWhiteQueen
	KindWhiteKing

	KindUnknown
)

const kindCount = int(KindUnknown)

// Kinds lists every concrete kind in enumeration order.
var Kinds = [kindCount]Kind{
	KindBlackPawn, KindBlackBishop, KindBlackKnight, KindBlackRook, KindBlackQueen, KindBlackKing,
	KindWhitePawn, KindWhiteBishop, KindWhiteKnight, KindWhiteRook, KindWhiteQueen, KindWhiteKing,
}

// Bitmap slots. Every aggregate has its own slot.
const (
	slotBlack = kindCount + iota
	slotWhite
	slotAll

	slotCount
)

// kindSlot binds a concrete kind to the bitmap slots it updates.
type kindSlot struct {
	side  Side
	piece Piece
	slot  int
	agg   int
}

var (
	kindSlots = [kindCount]kindSlot{
		KindBlackPawn:   {side: SideBlack, piece: PiecePawn, slot: 0, agg: slotBlack},
		KindBlackBishop: {side: SideBlack, piece: PieceBishop, slot: 1, agg: slotBlack},
		KindBlackKnight: {side: SideBlack, piece: PieceKnight, slot: 2, agg: slotBlack},
		KindBlackRook:   {side: SideBlack, piece: PieceRook, slot: 3, agg: slotBlack},
		KindBlackQueen:  {side: SideBlack, piece: PieceQueen, slot: 4, agg: slotBlack},
		KindBlackKing:   {side: SideBlack, piece: PieceKing, slot: 5, agg: slotBlack},
		KindWhitePawn:   {side: SideWhite, piece: PiecePawn, slot: 6, agg: slotWhite},
		KindWhiteBishop: {side: SideWhite, piece: PieceBishop, slot: 7, agg: slotWhite},
		KindWhiteKnight: {side: SideWhite, piece: PieceKnight, slot: 8, agg: slotWhite},
		KindWhiteRook:   {side: SideWhite, piece: PieceRook, slot: 9, agg: slotWhite},
		KindWhiteQueen:  {side: SideWhite, piece: PieceQueen, slot: 10, agg: slotWhite},
		KindWhiteKing:   {side: SideWhite, piece: PieceKing, slot: 11, agg: slotWhite},
	}

	// kindOf is the inverse of kindSlots, filled by initKindSlots.
	kindOf [SideBlack + 1][PieceKing + 1]Kind
)

// initKindSlots checks the kind to slot mapping and builds its inverse.
// A broken table would corrupt every aggregate update, so it panics.
func initKindSlots() {
	if slotBlack == slotWhite || slotBlack == slotAll || slotWhite == slotAll {
		panic("board: aggregate slots alias each other")
	}
	for s := range kindOf {
		for p := range kindOf[s] {
			kindOf[s][p] = KindUnknown
		}
	}
	var seen [kindCount]bool
	for _, k := range Kinds {
		ks := kindSlots[k]
		if ks.slot < 0 || ks.slot >= kindCount || seen[ks.slot] {
			panic(fmt.Sprintf("board: invalid slot %d for kind %d", ks.slot, k))
		}
		seen[ks.slot] = true
		if (ks.side == SideWhite) != k.IsWhite() {
			panic(fmt.Sprintf("board: side of kind %d disagrees with its ordering", k))
		}
		if (ks.side == SideWhite && ks.agg != slotWhite) || (ks.side == SideBlack && ks.agg != slotBlack) {
			panic(fmt.Sprintf("board: kind %d updates the wrong aggregate", k))
		}
		if ks.piece < PiecePawn || ks.piece > PieceKing || kindOf[ks.side][ks.piece] != KindUnknown {
			panic(fmt.Sprintf("board: duplicate or invalid piece for kind %d", k))
		}
		kindOf[ks.side][ks.piece] = k
	}
}

// NewKind returns the concrete kind for a side and piece, or KindUnknown.
func NewKind(s Side, p Piece) Kind {
	if s != SideWhite && s != SideBlack || p < PiecePawn || p > PieceKing {
		return KindUnknown
	}
	return kindOf[s][p]
}

// KindFromSymbol parses a FEN piece letter.
func KindFromSymbol(sym rune) Kind {
	switch sym {
	case 'P':
		return KindWhitePawn
	case 'B':
		return KindWhiteBishop
	case 'N':
		return KindWhiteKnight
	case 'R':
		return KindWhiteRook
	case 'Q':
		return KindWhiteQueen
	case 'K':
		return KindWhiteKing
	case 'p':
		return KindBlackPawn
	case 'b':
		return KindBlackBishop
	case 'n':
		return KindBlackKnight
	case 'r':
		return KindBlackRook
	case 'q':
		return KindBlackQueen
	case 'k':
		return KindBlackKing
	default:
		return KindUnknown
	}
}

// IsWhite reports whether the kind is among the second half of the enumeration.
func (k Kind) IsWhite() bool {
	return k >= KindWhitePawn && k < KindUnknown
}

func (k Kind) IsValid() bool {
	return k < KindUnknown
}

func (k Kind) Side() Side {
	if !k.IsValid() {
		return SideUnknown
	}
	return kindSlots[k].side
}

func (k Kind) Piece() Piece {
	if !k.IsValid() {
		return PieceUnknown
	}
	return kindSlots[k].piece
}

// Symbol returns the FEN letter of the kind.
func (k Kind) Symbol() string {
	return k.Piece().SymbolFEN(k.Side())
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "Unknown"
	}
	return k.Side().String() + " " + k.Piece().String()
}
