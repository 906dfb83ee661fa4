package board

import (
	"testing"

	"github.com/daystram/kestrel/position"
)

func TestMoveRoundTrip(t *testing.T) {
	t.Parallel()
	for from := position.Pos(0); from < TotalCells; from++ {
		for to := position.Pos(0); to < TotalCells; to++ {
			for opt := MoveOption(0); opt <= OptionPromoteQueenCapture; opt++ {
				mv := NewMove(from, to, opt)
				if mv.From() != from || mv.To() != to || mv.Options() != opt {
					t.Fatalf("unexpected decode: got=(%v,%v,%d) want=(%v,%v,%d)", mv.From(), mv.To(), mv.Options(), from, to, opt)
				}
			}
		}
	}
}

// Each field must own its bit range; packing to or options with a right
// shift would drop them entirely.
func TestMoveFieldsDisjoint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mv   Move
		want Move
	}{
		{name: "from", mv: NewMove(position.H8, 0, 0), want: 0x003F},
		{name: "to", mv: NewMove(0, position.H8, 0), want: 0x0FC0},
		{name: "options", mv: NewMove(0, 0, OptionPromoteQueenCapture), want: 0xF000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.mv != tt.want {
				t.Errorf("unexpected bits: got=%#04x want=%#04x", uint16(tt.mv), uint16(tt.want))
			}
		})
	}
}

func TestMoveOptions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		mv            Move
		wantCapture   bool
		wantPromote   Piece
		wantEnPassant bool
		wantDouble    bool
		wantCastle    CastleDirection
		wantUCI       string
	}{
		{
			name:    "quiet",
			mv:      NewMove(position.G1, position.F3, OptionQuiet),
			wantUCI: "g1f3",
		},
		{
			name:       "double push",
			mv:         NewMove(position.E2, position.E4, OptionDoublePush),
			wantDouble: true,
			wantUCI:    "e2e4",
		},
		{
			name:        "capture",
			mv:          NewMove(position.E4, position.D5, OptionCapture),
			wantCapture: true,
			wantUCI:     "e4d5",
		},
		{
			name:          "en passant",
			mv:            NewMove(position.E5, position.D6, OptionEnPassant),
			wantCapture:   true,
			wantEnPassant: true,
			wantUCI:       "e5d6",
		},
		{
			name:       "white king castle",
			mv:         NewMove(position.E1, position.G1, OptionKingCastle),
			wantCastle: CastleDirectionWhiteRight,
			wantUCI:    "e1g1",
		},
		{
			name:       "black queen castle",
			mv:         NewMove(position.E8, position.C8, OptionQueenCastle),
			wantCastle: CastleDirectionBlackLeft,
			wantUCI:    "e8c8",
		},
		{
			name:        "promote knight",
			mv:          NewMove(position.A7, position.A8, PromoteOption(PieceKnight, false)),
			wantPromote: PieceKnight,
			wantUCI:     "a7a8n",
		},
		{
			name:        "promote queen capture",
			mv:          NewMove(position.B2, position.A1, PromoteOption(PieceQueen, true)),
			wantCapture: true,
			wantPromote: PieceQueen,
			wantUCI:     "b2a1q",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.mv.IsCapture(); got != tt.wantCapture {
				t.Errorf("unexpected capture: got=%v want=%v", got, tt.wantCapture)
			}
			if got := tt.mv.Promote(); got != tt.wantPromote {
				t.Errorf("unexpected promotion: got=%v want=%v", got, tt.wantPromote)
			}
			if got := tt.mv.IsPromotion(); got != (tt.wantPromote != PieceUnknown) {
				t.Errorf("unexpected promotion flag: got=%v", got)
			}
			if got := tt.mv.IsEnPassant(); got != tt.wantEnPassant {
				t.Errorf("unexpected en passant: got=%v want=%v", got, tt.wantEnPassant)
			}
			if got := tt.mv.IsDoublePush(); got != tt.wantDouble {
				t.Errorf("unexpected double push: got=%v want=%v", got, tt.wantDouble)
			}
			if got := tt.mv.CastleDirection(); got != tt.wantCastle {
				t.Errorf("unexpected castle: got=%v want=%v", got, tt.wantCastle)
			}
			if got := tt.mv.UCI(); got != tt.wantUCI {
				t.Errorf("unexpected UCI: got=%s want=%s", got, tt.wantUCI)
			}
		})
	}
}

func TestPromoteOptionRejectsNonPromotable(t *testing.T) {
	t.Parallel()
	for _, p := range []Piece{PieceUnknown, PiecePawn, PieceKing} {
		if got := PromoteOption(p, true); got != OptionQuiet {
			t.Errorf("unexpected option for %v: got=%d want=%d", p, got, OptionQuiet)
		}
	}
}
