package controller

import (
	"context"
)

// Renderer receives a frame after every change. It is called from the loop goroutine.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(Frame)

func (f RenderFunc) Render(frame Frame) { f(frame) }

// Run applies intents and clock ticks one at a time until intents is closed or ctx ends.
// It renders the initial frame and then once per change, and stops the clock on exit.
func Run(ctx context.Context, c *Controller, intents <-chan Intent, clock Clock, renderer Renderer) error {
	defer clock.Stop()

	renderer.Render(c.Frame())
	for {
		var in Intent
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-intents:
			if !ok {
				return nil
			}
			in = next
		case <-clock.C():
			in = Tick{}
		}

		if c.Apply(in) {
			renderer.Render(c.Frame())
		}
	}
}
