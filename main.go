package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/updown/bollywood"
	"github.com/lguibr/updown/server"
	"github.com/lguibr/updown/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", "", "listen address, overrides server_addr")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}

	engine := bollywood.NewEngine()
	rng := utils.NewRandom(cfg.Seed)
	roomPID, err := server.StartRoom(engine, bollywood.NewProps(server.NewRoomProducer(engine, cfg, rng)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Room started: %s\n", roomPID)

	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.New(engine, roomPID).Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		fmt.Printf("Listening on %s\n", cfg.ServerAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error: http server: %v\n", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("http shutdown: %v\n", err)
	}
	engine.Shutdown(2 * time.Second)
}
