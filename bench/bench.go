package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/kestrel/board"
)

var ErrInvalidIterations = errors.New("invalid iterations")

// DefaultPositions is the perft suite plus an en passant setup.
var DefaultPositions = []string{
	board.DefaultStartingPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

// Report tallies the moves generated over a run.
type Report struct {
	Positions    int
	Iterations   int
	Moves        uint64
	Captures     uint64
	EnPassants   uint64
	Castles      uint64
	Promotions   uint64
	DoublePushes uint64
	// MaxMoves is the largest move list produced for a single position.
	MaxMoves uint64
	Elapsed  time.Duration
}

// Rate returns generated moves per second.
func (r Report) Rate() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Moves) / r.Elapsed.Seconds())
}

func (r Report) String() string {
	return message.NewPrinter(language.English).
		Sprintf("pos=%d it=%d moves=%d rate=%dm/s max=%d cap=%d enp=%d cas=%d pro=%d dbl=%d (%.3fs elapsed)",
			r.Positions, r.Iterations, r.Moves, r.Rate(), r.MaxMoves, r.Captures, r.EnPassants, r.Castles, r.Promotions, r.DoublePushes, r.Elapsed.Seconds())
}

// Run generates the moves of the side to move for every position, iterations
// times each. In parallel mode every position runs in its own goroutine on
// its own copy of the board.
func Run(fens []string, iterations int, parallel bool) (Report, error) {
	if iterations < 1 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	boards := make([]*board.Board, 0, len(fens))
	for i, fen := range fens {
		b, err := board.NewBoard(board.WithFEN(fen))
		if err != nil {
			return Report{}, fmt.Errorf("position %d: %w", i, err)
		}
		boards = append(boards, b)
	}

	var run benchFunc
	if parallel {
		run = runBenchParallel
	} else {
		run = runBench
	}

	r := Report{Positions: len(boards), Iterations: iterations}
	start := time.Now()
	run(boards, iterations, &r)
	r.Elapsed = time.Since(start)
	return r, nil
}

type benchFunc func(boards []*board.Board, iterations int, r *Report)

func runBench(boards []*board.Board, iterations int, r *Report) {
	buf := make([]board.Move, 0, board.MoveBufferSize)
	for _, b := range boards {
		for i := 0; i < iterations; i++ {
			buf = b.GeneratePseudoLegalMovesInto(b.Turn(), buf[:0])
			tally(buf, r)
		}
	}
}

func runBenchParallel(boards []*board.Board, iterations int, r *Report) {
	var wg sync.WaitGroup
	for _, b := range boards {
		b := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Report
			buf := make([]board.Move, 0, board.MoveBufferSize)
			for i := 0; i < iterations; i++ {
				buf = b.GeneratePseudoLegalMovesInto(b.Turn(), buf[:0])
				tally(buf, &local)
			}
			atomic.AddUint64(&r.Moves, local.Moves)
			atomic.AddUint64(&r.Captures, local.Captures)
			atomic.AddUint64(&r.EnPassants, local.EnPassants)
			atomic.AddUint64(&r.Castles, local.Castles)
			atomic.AddUint64(&r.Promotions, local.Promotions)
			atomic.AddUint64(&r.DoublePushes, local.DoublePushes)
			for {
				cur := atomic.LoadUint64(&r.MaxMoves)
				if atomic.CompareAndSwapUint64(&r.MaxMoves, cur, max(cur, local.MaxMoves)) {
					break
				}
			}
		}()
	}
	wg.Wait()
}

func tally(mvs []board.Move, r *Report) {
	r.Moves += uint64(len(mvs))
	r.MaxMoves = max(r.MaxMoves, uint64(len(mvs)))
	for _, mv := range mvs {
		if mv.IsCapture() {
			r.Captures++
		}
		if mv.IsEnPassant() {
			r.EnPassants++
		}
		if mv.IsCastle() {
			r.Castles++
		}
		if mv.IsPromotion() {
			r.Promotions++
		}
		if mv.IsDoublePush() {
			r.DoublePushes++
		}
	}
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
