package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares addressable by Pos.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	maskComponent Pos = 0b000111
	shiftRank         = 3
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square packed into 6 bits: file in bits 0-2, rank in bits 3-5.
// With rank 0 being rank "1", the packed value equals rank*8 + file.
type Pos uint8

// NewPos packs file and rank into a Pos. Out of range components wrap around.
func NewPos(file, rank Pos) Pos {
	return (file & maskComponent) | (rank&maskComponent)<<shiftRank
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if p >= TotalCells {
		return ""
	}
	return string(rune('a'+p.File())) + string(rune('1'+p.Rank()))
}

// File returns the file component, 0 for file a.
func (p Pos) File() Pos {
	return p & maskComponent
}

// Rank returns the rank component, 0 for rank 1.
func (p Pos) Rank() Pos {
	return (p >> shiftRank) & maskComponent
}

// Index returns the little-endian rank-file index of the square.
func (p Pos) Index() uint8 {
	return uint8(p.Rank()*MaxComponentScalar + p.File())
}

// Bitmask returns a 64-bit word with only this square's bit set.
func (p Pos) Bitmask() uint64 {
	return 1 << p.Index()
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
