package main

import (
	"flag"
	"io"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/utils"
)

func TestRunHeadless(t *testing.T) {
	args := []string{"-frontend", "headless", "-generations", "2", "-width", "4", "-height", "3", "-seed", "3", "-log-level", "error"}
	if err := run(args); err != nil {
		t.Fatalf("headless run failed: %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if err := run([]string{"-step-mode", "sideways"}); err == nil {
		t.Fatal("unknown step mode accepted")
	}
	if err := run([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h returned %v, want flag.ErrHelp", err)
	}
}

func TestLogFallback(t *testing.T) {
	config := utils.DefaultConfig()
	if logFallback(config) != io.Discard {
		t.Fatal("terminal front end must not log to the terminal")
	}
	config.Frontend = utils.FrontendHeadless
	if logFallback(config) == io.Discard {
		t.Fatal("headless runs should log to stderr")
	}
}
