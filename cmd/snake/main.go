package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"snake/internal/app"
	"snake/internal/audio"
	"snake/internal/domain"
	"snake/internal/logging"
	"snake/internal/network"
	"snake/internal/rng"
	"snake/internal/ui/frame"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"
)

func main() {
	seed := flag.Uint64("seed", 0, "apple placement seed (0 picks one from the clock)")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	eventsAddr := flag.String("events-addr", "", "UDP address to publish game events to, e.g. 127.0.0.1:9192")
	sound := flag.Bool("sound", false, "play sound cues")
	flag.Parse()

	logger, err := logging.Setup(*logLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}

	cfg := domain.DefaultGameConfig()
	canvas := frame.NewCanvas()
	random := rng.New(*seed)
	logger.Info().Uint64("seed", random.Seed()).Msg("random source ready")

	sinks, closeSinks := buildSinks(logger, *eventsAddr, *sound)
	defer closeSinks()

	application, err := app.NewApp(app.Options{
		Config: cfg,
		Canvas: canvas,
		Random: random,
		Sinks:  sinks,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine := graphics.NewEngine(logger)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewGameScreen(engine, canvas, cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize),
	)
	engine.SetHUDSource(application)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		handleUIEvents(gctx, application, engine, logger)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		engine.Quit()
		return nil
	})

	if err := engine.Run(); err != nil {
		logger.Error().Err(err).Msg("UI error")
	}

	cancel()
	application.Stop()
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("bye")
}

func buildSinks(logger zerolog.Logger, eventsAddr string, sound bool) ([]domain.EventSink, func()) {
	var sinks []domain.EventSink
	var closers []func()

	if eventsAddr != "" {
		socket, err := network.NewSocket("0.0.0.0:0")
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open event socket")
		}
		sink, err := network.NewSink(socket, eventsAddr, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create event sink")
		}
		sinks = append(sinks, sink)
		closers = append(closers, func() { socket.Close() })
		logger.Info().Str("target", eventsAddr).Int("port", socket.LocalPort()).Msg("publishing game events")
	}

	if sound {
		player := audio.NewSink(logger)
		if err := player.Init(); err == nil {
			sinks = append(sinks, player)
			closers = append(closers, player.Close)
		}
	}

	return sinks, func() {
		for _, c := range closers {
			c()
		}
	}
}

// handleUIEvents turns window events into app calls. The app is started on
// the first Play and paused while the menu is up so the snake does not move
// behind it.
func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine, logger zerolog.Logger) {
	started := false

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-application.Events():
				if event.Type != app.AppEventError {
					continue
				}
				if err, ok := event.Payload.(error); ok {
					engine.SetError(err.Error())
				}
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event := <-engine.Events():
			switch event.Type {
			case types.UIEventStartGame:
				if !started {
					if err := application.Start(ctx); err != nil {
						logger.Error().Err(err).Msg("failed to start game")
						engine.SetError(err.Error())
						continue
					}
					started = true
					continue
				}
				if application.HUD().Status == domain.StatusRunning {
					application.Resume()
					continue
				}
				application.Restart()

			case types.UIEventRestart:
				application.Restart()

			case types.UIEventSteer:
				data := event.Payload.(types.SteerData)
				application.Input(data.Key)

			case types.UIEventExitGame:
				if started {
					application.Pause()
				}
				logger.Debug().Msg("back to menu")

			case types.UIEventQuit:
				engine.Quit()
				return
			}
		}
	}
}
