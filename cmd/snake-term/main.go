package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/logging"
	"snake/internal/network"
	"snake/internal/rng"
	"snake/internal/terminal"
)

func main() {
	seed := flag.Uint64("seed", 0, "apple placement seed (0 picks one from the clock)")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	logFile := flag.String("log-file", "snake-term.log", "where to write logs while the terminal is in use")
	eventsAddr := flag.String("events-addr", "", "UDP address to publish game events to")
	flag.Parse()

	if err := run(*seed, *logLevel, *logFile, *eventsAddr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(seed uint64, logLevel, logFile, eventsAddr string) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	logger, err := logging.Setup(logLevel, f)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cfg := domain.DefaultGameConfig()
	var sinks []domain.EventSink
	if eventsAddr != "" {
		socket, err := network.NewSocket("0.0.0.0:0")
		if err != nil {
			return fmt.Errorf("open event socket: %w", err)
		}
		defer socket.Close()

		sink, err := network.NewSink(socket, eventsAddr, logger)
		if err != nil {
			return err
		}
		sinks = append(sinks, sink)
	}

	application, err := app.NewApp(app.Options{
		Config: cfg,
		Canvas: terminal.NewCanvas(screen, domain.NewField(cfg.Width, cfg.Height), cfg.CellSize),
		Random: rng.New(seed),
		Sinks:  sinks,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer application.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return terminal.Run(gctx, screen, application, logger)
	})
	return g.Wait()
}
