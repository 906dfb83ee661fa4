package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/kestrel/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	if draw {
		fmt.Println(b.Draw())
	}
	fmt.Println(b.DebugString())
	fmt.Println(b.Position())
	dumpMoves(b)

	if draw {
		for _, k := range board.Kinds {
			if k.Side() != b.Turn() || b.Bitmap(k) == 0 {
				continue
			}
			var dst board.Bitmap
			for _, mv := range b.GenerateMovesForKind(k, nil) {
				dst.Set(mv.To())
			}
			fmt.Printf("\n%s destinations:\n", k)
			fmt.Println(dst.Dump([]rune(k.Piece().SymbolUnicode(k.Side()))...))
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GeneratePseudoLegalMoves(b.Turn())
	for i, mv := range mvs {
		k, _ := b.KindAt(mv.From())
		fmt.Printf("option %*d: [%s] %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), k, mv.From(), mv.To(), mv.IsCapture(), mv.IsEnPassant(), mv.CastleDirection(), mv.Promote())
	}
}
