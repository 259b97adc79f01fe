package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "go-gol: %v\n", err)
		os.Exit(1)
	}
}
