package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/kestrel/position"
)

// UnmarshalFEN loads fen into b. b is only written when the whole string
// parses into a valid board.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var nb Board
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			k := KindFromSymbol(cell)
			if k == KindUnknown {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if err := nb.AddPiece(k, position.NewPos(x, y)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	if nb.Bitmap(KindWhiteKing) == 0 || nb.Bitmap(KindBlackKing) == 0 {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	turn, err := NewSideFromSymbol(segments[1])
	if err != nil {
		return fmt.Errorf("%w: invalid turn: %v", ErrInvalidFEN, err)
	}
	nb.turn = turn

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			nb.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			nb.castleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			nb.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			nb.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' && len(segments[2]) == 1 {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		nb.enPassant = maskCell[pos.Index()]
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	nb.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	nb.fullMoveClock = uint16(fullMoveClock)

	if err := nb.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	*b = nb
	return nil
}

// MarshalFEN renders all six FEN fields of b.
func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(b.Position())
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(b.turn.Symbol())
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')
	if pos, ok := b.EnPassant(); ok {
		_, _ = builder.WriteString(pos.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}
	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))
	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}

// Position renders the piece placement field: ranks from 8 down to 1
// separated by '/', files a to h, runs of empty squares as digits. It reads
// only the kind bitmaps.
func (b *Board) Position() string {
	var cells [TotalCells]byte
	for _, k := range Kinds {
		sym := k.Symbol()[0]
		for bm := b.bitmaps[kindSlots[k].slot]; bm != 0; {
			cells[bm.PopLS1B()] = sym
		}
	}

	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		var skip byte
		for x := position.Pos(0); x < Width; x++ {
			sym := cells[position.NewPos(x, y-1)]
			if sym == 0 {
				skip++
				continue
			}
			if skip != 0 {
				_ = builder.WriteByte('0' + skip)
				skip = 0
			}
			_ = builder.WriteByte(sym)
		}
		if skip != 0 {
			_ = builder.WriteByte('0' + skip)
		}
		if y > 1 {
			_ = builder.WriteByte('/')
		}
	}
	return builder.String()
}
