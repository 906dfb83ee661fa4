package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/kestrel/position"
)

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", (y - 1).NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if k, ok := b.KindAt(position.NewPos(x, y-1)); ok {
				sym = k.Symbol()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on colored squares. Colors are
// dropped when the output is not a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", (y - 1).NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if k, ok := b.KindAt(position.NewPos(x, y-1)); ok {
				sym = k.Piece().SymbolUnicode(k.Side())
			}
			cell := colorCellDark
			if (x+y)%2 == 0 {
				cell = colorCellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// DebugString summarizes the non-placement state.
func (b *Board) DebugString() string {
	ep := "-"
	if pos, ok := b.EnPassant(); ok {
		ep = pos.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenp:  %s\nhalf: %4d\nfull: %4d", b.turn, b.castleRights, ep, b.halfMoveClock, b.fullMoveClock)
}
