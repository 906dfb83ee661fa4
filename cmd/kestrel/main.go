package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"errors"
	"os"
	"strings"

	"github.com/daystram/kestrel/api"
	"github.com/daystram/kestrel/board"
)

const (
	exitOK = iota
	exitErr
)

var errNoMode = errors.New("no mode selected: use -movegen, -bench or -serve")

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw the board and per-kind destinations in movegen mode")

	benchRun        = flag.Bool("bench", false, "run bench mode")
	benchIterations = flag.Int("bench.iterations", 100_000, "generation rounds per position in bench mode")
	benchParallel   = flag.Bool("bench.parallel", false, "run one goroutine per position in bench mode")

	serveRun  = flag.Bool("serve", false, "run serve mode")
	serveAddr = flag.String("serve.addr", api.DefaultAddress, "listen address in serve mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	var fen string
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	switch {
	case *movegenRun:
		if fen == "" {
			fen = board.DefaultStartingPositionFEN
		}
		return movegen(fen, *movegenDraw)
	case *benchRun:
		return runBench(fen, *benchIterations, *benchParallel)
	case *serveRun:
		return serve(*serveAddr)
	default:
		flag.Usage()
		return errNoMode
	}
}
