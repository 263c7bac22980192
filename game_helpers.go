package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(path string, stderr io.Writer) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// loadCitizens builds generation 0 from a named pattern, the given files, or stdin
func loadCitizens(
	ctx context.Context,
	pattern string,
	files []string,
	stdin io.Reader,
	config utils.Config,
) (model.Citizens, error) {
	switch {
	case pattern != "":
		return model.PatternByName(pattern, viewportFromConfig(config), config.RandomDensity, config.Seed)
	case len(files) > 0:
		return model.ReadFiles(ctx, files)
	}
	return model.ReadCitizens(stdin)
}

// viewportFromConfig returns the window rendered after each generation
func viewportFromConfig(config utils.Config) model.Viewport {
	return model.Viewport{
		Min: model.Position{X: config.ViewMinX, Y: config.ViewMinY},
		Max: model.Position{X: config.ViewMaxX, Y: config.ViewMaxY},
	}
}

// rendererFromConfig applies the configured markers, blank markers keep the defaults
func rendererFromConfig(config utils.Config) *model.TerminalRenderer {
	r := &model.TerminalRenderer{}
	if m := []rune(config.LiveMarker); len(m) == 1 {
		r.Live = m[0]
	}
	if m := []rune(config.DeadMarker); len(m) == 1 {
		r.Dead = m[0]
	}
	return r
}

// playGame advances the game up to config.MaxIterations times, rendering the
// viewport after every Ok generation. It returns the status that ended the
// loop, or Ok when the iteration cap or ctx stopped it first.
func playGame(
	ctx context.Context,
	game *model.Game,
	renderer *model.TerminalRenderer,
	config utils.Config,
	stdout io.Writer,
	stats *utils.Stats,
) (model.Status, error) {
	var (
		vp            = viewportFromConfig(config)
		lastFrameTime = time.Now()
	)

	for range config.MaxIterations {
		select {
		case <-ctx.Done():
			return model.Ok, nil
		default:
		}

		frameStart := time.Now()
		status := game.Next()
		stats.Update(game.Generation(), game.Citizens().Len(), time.Since(lastFrameTime))
		lastFrameTime = frameStart
		if !status.Continues() {
			return status, nil
		}

		if config.ClearScreen {
			renderer.Clear()
		}
		if err := renderer.Render(stdout, game.Citizens(), vp); err != nil {
			return status, err
		}
		fmt.Fprintln(stdout)

		if config.FrameRate > 0 {
			time.Sleep(config.FrameRate)
		}
	}
	return model.Ok, nil
}

// displaySummary reports how the run ended
func displaySummary(stderr io.Writer, game *model.Game, status model.Status, stats *utils.Stats) {
	if bounds, ok := game.Citizens().Bounds(); ok {
		stats.BoundingBoxSize = bounds.Width() * bounds.Height()
	}
	fmt.Fprintf(stderr, "Gen: %d | Living: %d | Status: %s | State: %s\n",
		game.Generation(), game.Citizens().Len(), status, game.State())
	fmt.Fprintf(stderr, "Performance: %.1f gen/sec | Avg Pop: %.1f | Bounding box: %d cells | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.BoundingBoxSize, stats.Elapsed().Seconds())
}
