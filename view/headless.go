package view

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sheikhrachel/go-gol-board/controller"
	"github.com/sheikhrachel/go-gol-board/model"
)

// Headless prints a random board and the generations that follow it as text
type Headless struct {
	out         io.Writer
	intents     chan<- controller.Intent
	generations int
	renderer    *model.TextRenderer
	logger      *slog.Logger

	rendered chan error
}

// NewHeadless writes generations frames after the initial random board to out
func NewHeadless(out io.Writer, intents chan<- controller.Intent, generations int, logger *slog.Logger) *Headless {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Headless{
		out:         out,
		intents:     intents,
		generations: generations,
		renderer:    model.NewTextRenderer(),
		logger:      logger,
		rendered:    make(chan error, 1),
	}
}

// Render prints the frame and hands the write result back to Run
func (h *Headless) Render(f controller.Frame) {
	err := h.print(f)
	select {
	case h.rendered <- err:
	default:
		h.logger.Warn("headless frame rendered while none was awaited", "generation", f.Generation)
	}
}

func (h *Headless) print(f controller.Frame) error {
	if _, err := fmt.Fprintf(h.out, "%s\n", statusLine(f)); err != nil {
		return err
	}
	return h.renderer.Display(h.out, f.Grid)
}

// Run seeds a random board and steps it, waiting for every frame before sending the next intent
func (h *Headless) Run(ctx context.Context) error {
	// The loop renders the empty starting board first
	if err := h.wait(ctx); err != nil {
		return err
	}

	script := []controller.Intent{controller.GenerateRandom{}}
	for range h.generations {
		script = append(script, controller.Step{})
	}
	for _, in := range script {
		if !send(ctx, h.intents, in) {
			return ctx.Err()
		}
		if err := h.wait(ctx); err != nil {
			return err
		}
	}
	h.logger.Info("headless run finished", "generations", h.generations)
	return nil
}

func (h *Headless) wait(ctx context.Context) error {
	select {
	case err := <-h.rendered:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
