package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-board/controller"
	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
	"github.com/sheikhrachel/go-gol-board/view"
)

// intentBuffer lets front ends queue a burst of input while a generation is computed
const intentBuffer = 64

// run wires config, logging, the controller loop and the chosen front end, and blocks until
// the front end exits or the process is signalled
func run(args []string) error {
	config, err := utils.ParseFlags("go-gol", args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := utils.NewLogger(config, logFallback(config))
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	intents := make(chan controller.Intent, intentBuffer)
	frontend, err := newFrontend(config, intents, logger)
	if err != nil {
		return err
	}

	board := controller.New(config, logger, model.NewRNG(config.Seed))
	logger.Info("starting board",
		"frontend", config.Frontend,
		"width", config.Width,
		"height", config.Height,
		"tick", config.TickInterval,
		"step_mode", config.StepMode,
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return controller.Run(egCtx, board, intents, controller.NewTickerClock(config.TickInterval), frontend)
	})

	// The front end stays on this goroutine: ebiten needs the main thread
	runErr := frontend.Run(egCtx)
	cancel()
	loopErr := eg.Wait()

	for _, err := range []error{runErr, loopErr} {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	logger.Info("board stopped", "generation", board.Generation())
	return nil
}

// logFallback is where logs go without -log-file; full screen front ends own the terminal
func logFallback(config utils.Config) io.Writer {
	if config.Frontend == utils.FrontendHeadless {
		return os.Stderr
	}
	return io.Discard
}

func newFrontend(config utils.Config, intents chan<- controller.Intent, logger *slog.Logger) (view.Frontend, error) {
	switch config.Frontend {
	case utils.FrontendHeadless:
		return view.NewHeadless(os.Stdout, intents, config.Generations, logger), nil
	case utils.FrontendEbiten:
		return view.NewWindow(intents, config.Scale, logger), nil
	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "[newFrontend] failed to create terminal screen")
		}
		return view.NewTerminal(screen, intents, logger)
	}
}
