//go:build !ebiten

package view

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/controller"
)

// Window is a placeholder that satisfies the API expected by the GUI build.
type Window struct{}

// NewWindow returns a placeholder; Run reports that the ebiten build tag is required.
func NewWindow(chan<- controller.Intent, int, *slog.Logger) *Window { return &Window{} }

// Render is a no-op placeholder.
func (w *Window) Render(controller.Frame) {}

// Run always reports that the GUI build tag is missing.
func (w *Window) Run(context.Context) error {
	return errors.New("[Window.Run] the ebiten frontend requires building with the 'ebiten' tag")
}
