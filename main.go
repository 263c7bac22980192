package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	exitOK = iota
	exitBadInput
	exitFailure
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the whole program minus process setup, so tests can drive it
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		configPath = fset.String("config", "config.json", "path to a JSON config file")
		pattern    = fset.String("pattern", "", "seed pattern instead of reading cells ("+strings.Join(model.PatternNames(), ", ")+")")
		iterations = fset.Uint64("iterations", 0, "maximum generations, overrides the config when > 0")
	)
	if err := fset.Parse(args); err != nil {
		return exitFailure
	}

	config, err := loadConfig(*configPath, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading configuration:", err)
		return exitFailure
	}
	if *iterations > 0 {
		config.MaxIterations = *iterations
	}

	citizens, err := loadCitizens(ctx, *pattern, fset.Args(), stdin, config)
	switch {
	case errors.Is(err, model.ErrBadInput):
		fmt.Fprintln(stderr, "Bad input:", err)
		return exitBadInput
	case err != nil:
		fmt.Fprintln(stderr, "Error loading cells:", err)
		return exitFailure
	}

	var (
		game     = model.NewGame(citizens)
		renderer = rendererFromConfig(config)
		stats    = utils.NewStats()
	)
	status, err := playGame(ctx, game, renderer, config, stdout, stats)
	if err != nil {
		fmt.Fprintln(stderr, "Error rendering board:", err)
		return exitFailure
	}
	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "\n🛑 Shutting down gracefully...")
	}

	displaySummary(stderr, game, status, stats)
	return exitOK
}
