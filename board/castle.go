package board

import (
	"strings"

	"github.com/daystram/kestrel/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// CastleDirections lists the directions available to each side, king side first.
var CastleDirections = [3][2]CastleDirection{
	SideWhite: {CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
	SideBlack: {CastleDirectionBlackRight, CastleDirectionBlackLeft},
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// Symbol returns the FEN castling availability letter for the direction.
func (d CastleDirection) Symbol() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "K"
	case CastleDirectionWhiteLeft:
		return "Q"
	case CastleDirectionBlackRight:
		return "k"
	case CastleDirectionBlackLeft:
		return "q"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// Option returns the move option tagging a castle in this direction.
func (d CastleDirection) Option() MoveOption {
	if d.IsRight() {
		return OptionKingCastle
	}
	return OptionQueenCastle
}

// KingHops returns the king's origin and destination squares.
func (d CastleDirection) KingHops() (position.Pos, position.Pos) {
	hops := posCastling[d][PieceKing]
	return hops[0], hops[1]
}

// RookHops returns the rook's origin and destination squares.
func (d CastleDirection) RookHops() (position.Pos, position.Pos) {
	hops := posCastling[d][PieceRook]
	return hops[0], hops[1]
}

// CastleRights holds four independent availability flags.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	for _, d := range CastleDirections[s] {
		if c.IsAllowed(d) {
			return true
		}
	}
	return false
}

// String returns the FEN castling availability field.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	for _, d := range []CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	} {
		if c.IsAllowed(d) {
			_, _ = builder.WriteString(d.Symbol())
		}
	}
	return builder.String()
}
