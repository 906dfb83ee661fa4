package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/kestrel/position"
)

// Bitmap is a 64-bit word where bit i represents square i in
// little-endian rank-file order.
type Bitmap uint64

// Edge masks applied before a shift so that no bit wraps across a board edge.
const (
	maskNotFileA  Bitmap = ^Bitmap(0x_01_01_01_01_01_01_01_01)
	maskNotFileH  Bitmap = ^Bitmap(0x_80_80_80_80_80_80_80_80)
	maskNotFileAB Bitmap = ^Bitmap(0x_03_03_03_03_03_03_03_03)
	maskNotFileGH Bitmap = ^Bitmap(0x_C0_C0_C0_C0_C0_C0_C0_C0)
)

// Bits shifted past rank 1 or rank 8 fall off the word, so only file edges need masking.

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) >> 1
}

func ShiftNW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) << 7
}

// KnightAttacks returns the union of knight jumps from every set bit.
func KnightAttacks(bm Bitmap) Bitmap {
	return (bm&maskNotFileH)<<17 |
		(bm&maskNotFileA)<<15 |
		(bm&maskNotFileGH)<<10 |
		(bm&maskNotFileAB)<<6 |
		(bm&maskNotFileH)>>15 |
		(bm&maskNotFileA)>>17 |
		(bm&maskNotFileGH)>>6 |
		(bm&maskNotFileAB)>>10
}

// KingAttacks returns the union of single steps from every set bit.
func KingAttacks(bm Bitmap) Bitmap {
	return ShiftN(bm) | ShiftNE(bm) | ShiftE(bm) | ShiftSE(bm) |
		ShiftS(bm) | ShiftSW(bm) | ShiftW(bm) | ShiftNW(bm)
}

var (
	lateralShifts  = [4]func(Bitmap) Bitmap{ShiftN, ShiftE, ShiftS, ShiftW}
	diagonalShifts = [4]func(Bitmap) Bitmap{ShiftNE, ShiftSE, ShiftSW, ShiftNW}
)

// scanRay walks from cell one step at a time and stops on the first
// occupied square, which is included.
func scanRay(cell, occupied Bitmap, shift func(Bitmap) Bitmap) Bitmap {
	var ray Bitmap
	for next := shift(cell); next != 0; next = shift(next) {
		ray |= next
		if next&occupied != 0 {
			break
		}
	}
	return ray
}

// hitLaterals returns the rook rays from pos, up to and including the first blocker on each.
func hitLaterals(pos position.Pos, occupied Bitmap) Bitmap {
	var hit Bitmap
	for _, shift := range lateralShifts {
		hit |= scanRay(maskCell[pos.Index()], occupied, shift)
	}
	return hit
}

// hitDiagonals returns the bishop rays from pos, up to and including the first blocker on each.
func hitDiagonals(pos position.Pos, occupied Bitmap) Bitmap {
	var hit Bitmap
	for _, shift := range diagonalShifts {
		hit |= scanRay(maskCell[pos.Index()], occupied, shift)
	}
	return hit
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos.Index()]
}

func (bm Bitmap) IsSet(pos position.Pos) bool {
	return bm&maskCell[pos.Index()] != 0
}

func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears the lowest set bit and returns its square. bm must not be empty.
func (bm *Bitmap) PopLS1B() position.Pos {
	pos := bm.LS1B()
	*bm &= *bm - 1
	return pos
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", (y - 1).NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			if bm.IsSet(position.NewPos(x, y-1)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
