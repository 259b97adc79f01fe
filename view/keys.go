// Package view holds the front ends that present the board. They own no simulation
// state: they draw the frames the controller loop renders and send intents back.
package view

import (
	"context"
	"fmt"
	"math"

	"github.com/sheikhrachel/go-gol-board/controller"
)

// Frontend presents frames and forwards user input until the user quits or ctx ends
type Frontend interface {
	controller.Renderer
	Run(ctx context.Context) error
}

const thresholdStep = 0.05

// keyIntent maps the single-key bindings shared by every interactive front end
func keyIntent(r rune, frame controller.Frame) (controller.Intent, bool) {
	switch r {
	case ' ':
		return controller.ToggleClock{}, true
	case 'n':
		return controller.Step{}, true
	case 'g':
		return controller.Generate{}, true
	case 'r':
		return controller.GenerateRandom{}, true
	case '[':
		return controller.SetThreshold{Threshold: nudge(frame.Threshold, -thresholdStep)}, true
	case ']':
		return controller.SetThreshold{Threshold: nudge(frame.Threshold, thresholdStep)}, true
	}
	return nil, false
}

// nudge moves a threshold by delta, keeping it in [0,1] and on the step grid
func nudge(threshold, delta float64) float64 {
	v := math.Round((threshold+delta)/thresholdStep) * thresholdStep
	return min(1, max(0, v))
}

// send delivers an intent to the loop unless ctx ends first
func send(ctx context.Context, intents chan<- controller.Intent, in controller.Intent) bool {
	select {
	case intents <- in:
		return true
	case <-ctx.Done():
		return false
	}
}

// statusLine summarizes a frame for the status bar
func statusLine(f controller.Frame) string {
	state := "stopped"
	if f.Running {
		state = "running"
	}
	size := fmt.Sprintf("%dx%d", f.Grid.Width, f.Grid.Height)
	if f.Width != f.Grid.Width || f.Height != f.Grid.Height {
		size += fmt.Sprintf(" (next %dx%d)", f.Width, f.Height)
	}
	return fmt.Sprintf("gen %d  pop %d  size %s  threshold %.2f  %s",
		f.Generation, f.Population, size, f.Threshold, state)
}

const helpLine = "space play/stop  n step  g clear  r random  [ ] threshold  s size  w/h next size  q quit"
