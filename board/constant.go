package board

import (
	"github.com/daystram/kestrel/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	// MoveBufferSize is the recommended capacity for move buffers. No reachable
	// position yields more pseudo-legal moves for one side.
	MoveBufferSize = 256
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell   [TotalCells]Bitmap
	maskKnight [TotalCells]Bitmap
	maskKing   [TotalCells]Bitmap

	maskStartup = [kindCount]Bitmap{
		KindWhitePawn:   0x_00_00_00_00_00_00_FF_00,
		KindWhiteBishop: 0x_00_00_00_00_00_00_00_24,
		KindWhiteKnight: 0x_00_00_00_00_00_00_00_42,
		KindWhiteRook:   0x_00_00_00_00_00_00_00_81,
		KindWhiteQueen:  0x_00_00_00_00_00_00_00_08,
		KindWhiteKing:   0x_00_00_00_00_00_00_00_10,
		KindBlackPawn:   0x_00_FF_00_00_00_00_00_00,
		KindBlackBishop: 0x_24_00_00_00_00_00_00_00,
		KindBlackKnight: 0x_42_00_00_00_00_00_00_00,
		KindBlackRook:   0x_81_00_00_00_00_00_00_00,
		KindBlackQueen:  0x_08_00_00_00_00_00_00_00,
		KindBlackKing:   0x_10_00_00_00_00_00_00_00,
	}
	maskStartupSides = [SideBlack + 1]Bitmap{
		SideWhite: 0x_00_00_00_00_00_00_FF_FF,
		SideBlack: 0x_FF_FF_00_00_00_00_00_00,
	}

	// squares between king and rook that must be empty to castle
	maskCastling = [4 + 1]Bitmap{}
	posCastling  = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	maskCastleRights = [5]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}
)

func init() {
	initKindSlots()
	initMask()
	initGenerators()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskKnight[pos] = KnightAttacks(maskCell[pos])
		maskKing[pos] = KingAttacks(maskCell[pos])
	}

	maskCastling = [5]Bitmap{
		CastleDirectionWhiteRight: maskRow[position.Rank1] & (maskCol[position.FileF] | maskCol[position.FileG]),
		CastleDirectionWhiteLeft:  maskRow[position.Rank1] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
		CastleDirectionBlackRight: maskRow[position.Rank8] & (maskCol[position.FileF] | maskCol[position.FileG]),
		CastleDirectionBlackLeft:  maskRow[position.Rank8] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
	}
}
