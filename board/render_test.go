package board

import (
	"strings"
	"testing"

	"github.com/daystram/kestrel/position"
)

func TestDump(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	got := b.Dump()
	for _, want := range []string{
		" 8 | r | n | b | q | k | b | n | r |",
		" 1 | R | N | B | Q | K | B | N | R |",
		" 4 |   |   |   |   |   |   |   |   |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("unexpected dump: missing %q in\n%s", want, got)
		}
	}
	if draw := b.Draw(); !strings.Contains(draw, "♔") || !strings.Contains(draw, "♚") {
		t.Errorf("unexpected draw: %s", draw)
	}
}

func TestBitmapDump(t *testing.T) {
	t.Parallel()
	var bm Bitmap
	bm.Set(position.A1)
	bm.Set(position.H8)
	got := bm.Dump('x')
	for _, want := range []string{
		" 8 | .  .  .  .  .  .  .  x ",
		" 1 | x  .  .  .  .  .  .  . ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("unexpected dump: missing %q in\n%s", want, got)
		}
	}
}

func TestCastleRights(t *testing.T) {
	t.Parallel()
	var c CastleRights
	if c.IsSideAllowed(SideWhite) || c.IsSideAllowed(SideBlack) || c.String() != "-" {
		t.Errorf("unexpected empty rights: %s", c)
	}
	c.Set(CastleDirectionBlackLeft, true)
	if c.IsSideAllowed(SideWhite) || !c.IsSideAllowed(SideBlack) {
		t.Errorf("unexpected side rights: %s", c)
	}
	c.Set(CastleDirectionWhiteRight, true)
	if got := c.String(); got != "Kq" {
		t.Errorf("unexpected rights: got=%s want=%s", got, "Kq")
	}
	c.Set(CastleDirectionBlackLeft, false)
	if c.IsSideAllowed(SideBlack) {
		t.Errorf("unexpected black rights: %s", c)
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()
	if got, want := Union(maskRow[position.Rank1], maskCol[position.FileA]), Bitmap(0x_01_01_01_01_01_01_01_FF); got != want {
		t.Errorf("unexpected union: got=%#x want=%#x", got, want)
	}
	if got := Union(); got != 0 {
		t.Errorf("unexpected empty union: got=%#x", got)
	}
}
