package view

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-gol-board/controller"
	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

func TestHeadlessPrintsEveryGeneration(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 6, 4

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out strings.Builder
	intents := make(chan controller.Intent)
	h := NewHeadless(&out, intents, 3, nil)
	c := controller.New(config, nil, model.NewRNG(11))

	loopDone := make(chan error, 1)
	loopCtx, stopLoop := context.WithCancel(ctx)
	go func() {
		loopDone <- controller.Run(loopCtx, c, intents, controller.NewTickerClock(time.Hour), h)
	}()

	if err := h.Run(ctx); err != nil {
		t.Fatalf("headless run: %v", err)
	}
	stopLoop()
	<-loopDone

	text := out.String()
	for _, want := range []string{"gen 0", "gen 1", "gen 2", "gen 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(text, "gen 4") {
		t.Error("headless printed more generations than asked")
	}
	if c.Generation() != 3 {
		t.Fatalf("controller at generation %d, want 3", c.Generation())
	}
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewHeadless(&strings.Builder{}, make(chan controller.Intent), 3, nil)
	if err := h.Run(ctx); err == nil {
		t.Fatal("Run on a cancelled context should fail")
	}
}
