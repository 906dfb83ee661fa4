package board

import (
	"fmt"

	"github.com/daystram/kestrel/position"
)

// generator appends the pseudo-legal moves of every piece of one kind.
type generator func(b *Board, buf []Move) []Move

// generators binds each concrete kind to its generation function.
var generators = [kindCount]generator{
	KindBlackPawn:   genPawnMoves(pawnRulesBlack),
	KindBlackBishop: genSliderMoves(KindBlackBishop, hitDiagonals),
	KindBlackKnight: genStepperMoves(KindBlackKnight, &maskKnight),
	KindBlackRook:   genSliderMoves(KindBlackRook, hitLaterals),
	KindBlackQueen:  genSliderMoves(KindBlackQueen, hitQueen),
	KindBlackKing:   genKingMoves(KindBlackKing),
	KindWhitePawn:   genPawnMoves(pawnRulesWhite),
	KindWhiteBishop: genSliderMoves(KindWhiteBishop, hitDiagonals),
	KindWhiteKnight: genStepperMoves(KindWhiteKnight, &maskKnight),
	KindWhiteRook:   genSliderMoves(KindWhiteRook, hitLaterals),
	KindWhiteQueen:  genSliderMoves(KindWhiteQueen, hitQueen),
	KindWhiteKing:   genKingMoves(KindWhiteKing),
}

// generationOrder is the order in which a side's kinds are generated.
var generationOrder = [6]Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

func initGenerators() {
	for _, k := range Kinds {
		if generators[k] == nil {
			panic(fmt.Sprintf("board: no generator for %s", k))
		}
	}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for side s. Moves
// that leave the mover's own king in check are not filtered out.
func (b *Board) GeneratePseudoLegalMoves(s Side) []Move {
	return b.GeneratePseudoLegalMovesInto(s, make([]Move, 0, MoveBufferSize))
}

// GeneratePseudoLegalMovesInto appends every pseudo-legal move for side s to
// buf and returns the extended slice. It does not allocate when buf has at
// least MoveBufferSize spare capacity. The result is deterministic for a given
// board.
func (b *Board) GeneratePseudoLegalMovesInto(s Side, buf []Move) []Move {
	if s != SideWhite && s != SideBlack {
		return buf
	}
	for _, p := range generationOrder {
		buf = generators[NewKind(s, p)](b, buf)
	}
	return buf
}

// GenerateMovesForKind appends the pseudo-legal moves of the pieces of kind k only.
func (b *Board) GenerateMovesForKind(k Kind, buf []Move) []Move {
	if !k.IsValid() {
		return buf
	}
	return generators[k](b, buf)
}

// pawnRules describes how the pawns of one side move. Offsets are what must be
// subtracted from a destination index to recover its origin.
type pawnRules struct {
	kind         Kind
	push         func(Bitmap) Bitmap
	captureLeft  func(Bitmap) Bitmap
	captureRight func(Bitmap) Bitmap
	pushOffset   int8
	leftOffset   int8
	rightOffset  int8
	doubleRank   Bitmap // where a single push from the home rank lands
	promoteRank  Bitmap
	enPassant    Bitmap // rank an en passant target must lie on for this side
}

var (
	pawnRulesWhite = pawnRules{
		kind:         KindWhitePawn,
		push:         ShiftN,
		captureLeft:  ShiftNW,
		captureRight: ShiftNE,
		pushOffset:   8,
		leftOffset:   7,
		rightOffset:  9,
		doubleRank:   0x_00_00_00_00_00_FF_00_00,
		promoteRank:  0x_FF_00_00_00_00_00_00_00,
		enPassant:    0x_00_00_FF_00_00_00_00_00,
	}
	pawnRulesBlack = pawnRules{
		kind:         KindBlackPawn,
		push:         ShiftS,
		captureLeft:  ShiftSW,
		captureRight: ShiftSE,
		pushOffset:   -8,
		leftOffset:   -9,
		rightOffset:  -7,
		doubleRank:   0x_00_00_FF_00_00_00_00_00,
		promoteRank:  0x_00_00_00_00_00_00_00_FF,
		enPassant:    0x_00_00_00_00_00_FF_00_00,
	}
)

// genPawnMoves moves every pawn of the side at once and recovers each origin
// from the fixed offset of the shift that produced the destination.
func genPawnMoves(r pawnRules) generator {
	return func(b *Board, buf []Move) []Move {
		pawns := b.Bitmap(r.kind)
		if pawns == 0 {
			return buf
		}
		s := r.kind.Side()
		empty := ^b.bitmaps[slotAll]
		targets := b.SideBitmap(s.Opposite()) | b.enPassant&r.enPassant

		single := r.push(pawns) & empty
		// a blocked single push also blocks the double push
		double := r.push(single&r.doubleRank) & empty
		left := r.captureLeft(pawns) & targets
		right := r.captureRight(pawns) & targets

		buf = appendPawnMoves(buf, single, r.pushOffset, r.promoteRank, OptionQuiet)
		for double != 0 {
			to := double.PopLS1B()
			buf = append(buf, NewMove(offset(to, 2*r.pushOffset), to, OptionDoublePush))
		}
		buf = appendPawnCaptures(buf, left, r.leftOffset, r.promoteRank, b.enPassant)
		buf = appendPawnCaptures(buf, right, r.rightOffset, r.promoteRank, b.enPassant)
		return buf
	}
}

func appendPawnMoves(buf []Move, tos Bitmap, off int8, promoteRank Bitmap, opt MoveOption) []Move {
	for tos != 0 {
		to := tos.PopLS1B()
		from := offset(to, off)
		if maskCell[to.Index()]&promoteRank != 0 {
			buf = appendPromotions(buf, from, to, opt == OptionCapture)
			continue
		}
		buf = append(buf, NewMove(from, to, opt))
	}
	return buf
}

func appendPawnCaptures(buf []Move, tos Bitmap, off int8, promoteRank, enPassant Bitmap) []Move {
	if ep := tos & enPassant; ep != 0 {
		to := ep.LS1B()
		buf = append(buf, NewMove(offset(to, off), to, OptionEnPassant))
		tos &^= ep
	}
	return appendPawnMoves(buf, tos, off, promoteRank, OptionCapture)
}

func appendPromotions(buf []Move, from, to position.Pos, capture bool) []Move {
	for _, p := range PawnPromoteCandidates {
		buf = append(buf, NewMove(from, to, PromoteOption(p, capture)))
	}
	return buf
}

// offset returns the square off steps before pos.
func offset(pos position.Pos, off int8) position.Pos {
	return position.Pos(int8(pos) - off)
}

// genStepperMoves expands a precomputed attack table per origin.
func genStepperMoves(k Kind, table *[TotalCells]Bitmap) generator {
	return func(b *Board, buf []Move) []Move {
		own := b.SideBitmap(k.Side())
		for froms := b.Bitmap(k); froms != 0; {
			from := froms.PopLS1B()
			buf = appendMoves(buf, from, table[from.Index()]&^own, b.bitmaps[slotAll])
		}
		return buf
	}
}

// genSliderMoves expands ray scans per origin. The first blocker on a ray is
// kept as a capture when it is an enemy and dropped when it is our own.
func genSliderMoves(k Kind, hit func(position.Pos, Bitmap) Bitmap) generator {
	return func(b *Board, buf []Move) []Move {
		own := b.SideBitmap(k.Side())
		for froms := b.Bitmap(k); froms != 0; {
			from := froms.PopLS1B()
			buf = appendMoves(buf, from, hit(from, b.bitmaps[slotAll])&^own, b.bitmaps[slotAll])
		}
		return buf
	}
}

func hitQueen(pos position.Pos, occupied Bitmap) Bitmap {
	return hitLaterals(pos, occupied) | hitDiagonals(pos, occupied)
}

// genKingMoves adds castles to the steps. Whether the king is in check or
// crosses an attacked square is left to the legality layer.
func genKingMoves(k Kind) generator {
	steps := genStepperMoves(k, &maskKing)
	return func(b *Board, buf []Move) []Move {
		buf = steps(b, buf)
		s := k.Side()
		if !b.castleRights.IsSideAllowed(s) {
			return buf
		}
		king := b.Bitmap(k)
		rook := b.Bitmap(NewKind(s, PieceRook))
		for _, d := range CastleDirections[s] {
			if !b.castleRights.IsAllowed(d) || maskCastling[d]&b.bitmaps[slotAll] != 0 {
				continue
			}
			kingFrom, kingTo := d.KingHops()
			rookFrom, _ := d.RookHops()
			if !king.IsSet(kingFrom) || !rook.IsSet(rookFrom) {
				continue
			}
			buf = append(buf, NewMove(kingFrom, kingTo, d.Option()))
		}
		return buf
	}
}

func appendMoves(buf []Move, from position.Pos, tos, occupied Bitmap) []Move {
	for tos != 0 {
		to := tos.PopLS1B()
		opt := OptionQuiet
		if occupied.IsSet(to) {
			opt = OptionCapture
		}
		buf = append(buf, NewMove(from, to, opt))
	}
	return buf
}

// RookAttacks returns the squares a rook on pos reaches given occupied,
// including the first blocker on each ray.
func RookAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return hitLaterals(pos, occupied)
}

// BishopAttacks returns the squares a bishop on pos reaches given occupied,
// including the first blocker on each ray.
func BishopAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return hitDiagonals(pos, occupied)
}
