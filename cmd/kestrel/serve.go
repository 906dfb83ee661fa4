package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/daystram/kestrel/api"
)

func serve(addr string) error {
	log.Println("============ serve")
	s := api.NewServer(api.WithAddress(addr))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("shutting down")
		_ = s.Shutdown()
	}()

	log.Printf("listening on http://%s\n", s.Addr())
	return s.Listen()
}
