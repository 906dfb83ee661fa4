package board

import "github.com/daystram/kestrel/position"

// Move packs a move into 16 bits, from LSB:
//
//	6 bits: origin square
//	6 bits: destination square
//	4 bits: MoveOption
type Move uint16

const (
	moveFromShift    = 0
	moveToShift      = 6
	moveOptionsShift = 12

	moveSquareMask  = 0x3F
	moveOptionsMask = 0xF
)

// MoveOption tags what kind of move a Move is.
type MoveOption uint8

const (
	OptionQuiet MoveOption = iota
	OptionDoublePush
	OptionKingCastle
	OptionQueenCastle
	OptionCapture
	OptionEnPassant
	_
	_
	OptionPromoteKnight
	OptionPromoteBishop
	OptionPromoteRook
	OptionPromoteQueen
	OptionPromoteKnightCapture
	OptionPromoteBishopCapture
	OptionPromoteRookCapture
	OptionPromoteQueenCapture
)

const (
	optionFlagCapture MoveOption = 0b0100
	optionFlagPromote MoveOption = 0b1000
	optionPromoteMask MoveOption = 0b0011
)

// PromoteOption returns the option for a promotion to p.
func PromoteOption(p Piece, capture bool) MoveOption {
	opt := optionFlagPromote
	switch p {
	case PieceKnight:
	case PieceBishop:
		opt |= 1
	case PieceRook:
		opt |= 2
	case PieceQueen:
		opt |= 3
	default:
		return OptionQuiet
	}
	if capture {
		opt |= optionFlagCapture
	}
	return opt
}

func NewMove(from, to position.Pos, opt MoveOption) Move {
	return Move(uint16(from&moveSquareMask)<<moveFromShift |
		uint16(to&moveSquareMask)<<moveToShift |
		uint16(opt&moveOptionsMask)<<moveOptionsShift)
}

func (m Move) From() position.Pos {
	return position.Pos((m >> moveFromShift) & moveSquareMask)
}

func (m Move) To() position.Pos {
	return position.Pos((m >> moveToShift) & moveSquareMask)
}

func (m Move) Options() MoveOption {
	return MoveOption((m >> moveOptionsShift) & moveOptionsMask)
}

func (m Move) IsCapture() bool {
	return m.Options()&optionFlagCapture != 0
}

func (m Move) IsPromotion() bool {
	return m.Options()&optionFlagPromote != 0
}

// Promote returns the promotion piece, or PieceUnknown.
func (m Move) Promote() Piece {
	opt := m.Options()
	if opt&optionFlagPromote == 0 {
		return PieceUnknown
	}
	return PawnPromoteCandidates[opt&optionPromoteMask]
}

func (m Move) IsEnPassant() bool {
	return m.Options() == OptionEnPassant
}

func (m Move) IsDoublePush() bool {
	return m.Options() == OptionDoublePush
}

func (m Move) IsCastle() bool {
	opt := m.Options()
	return opt == OptionKingCastle || opt == OptionQueenCastle
}

// CastleDirection returns the castle this move performs, or CastleDirectionUnknown.
func (m Move) CastleDirection() CastleDirection {
	switch {
	case !m.IsCastle():
		return CastleDirectionUnknown
	case m.From().Rank() == position.Rank1 && m.Options() == OptionKingCastle:
		return CastleDirectionWhiteRight
	case m.From().Rank() == position.Rank1:
		return CastleDirectionWhiteLeft
	case m.Options() == OptionKingCastle:
		return CastleDirectionBlackRight
	default:
		return CastleDirectionBlackLeft
	}
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	return m.From().Notation() + m.To().Notation() + m.Promote().SymbolFEN(SideBlack)
}
