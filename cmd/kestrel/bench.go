package main

import (
	"log"

	"github.com/daystram/kestrel/bench"
)

func runBench(fen string, iterations int, parallel bool) error {
	fens := bench.DefaultPositions
	if fen != "" {
		fens = []string{fen}
	}
	mode := "sequential"
	if parallel {
		mode = "parallel"
	}
	log.Printf("============ bench: %s\n", mode)

	r, err := bench.Run(fens, iterations, parallel)
	if err != nil {
		return err
	}
	log.Println(r)
	return nil
}
