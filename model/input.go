package model

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrBadInput marks malformed cell text
var ErrBadInput = errors.New("bad input")

const (
	commentPrefix = "#"

	// maxParallelReads caps how many pattern files are parsed at once
	maxParallelReads = 8
)

// ParseCell parses "<x> <y>". The two integers may be separated by
// whitespace or by a single comma.
func ParseCell(line string) (Cell, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 || strings.Count(line, ",") > 1 {
		return Cell{}, errors.Wrapf(ErrBadInput, "[ParseCell] expected two integers, got %q", line)
	}

	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Cell{}, errors.Wrapf(ErrBadInput, "[ParseCell] invalid x %q: %v", fields[0], err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Cell{}, errors.Wrapf(ErrBadInput, "[ParseCell] invalid y %q: %v", fields[1], err)
	}
	return Cell{X: x, Y: y}, nil
}

// ReadCitizens reads one cell per line. Blank lines and lines starting with
// '#' are skipped. A single malformed line fails the whole read and no set
// is returned.
func ReadCitizens(r io.Reader) (Citizens, error) {
	citizens := NewCitizens()
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		cell, err := ParseCell(line)
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadCitizens] line %d", lineNo)
		}
		citizens.Add(cell)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadCitizens] failed to read input")
	}
	return citizens, nil
}

// ReadFile reads citizens from the file at path
func ReadFile(path string) (Citizens, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	citizens, err := ReadCitizens(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] %s", path)
	}
	return citizens, nil
}

// ReadFiles parses several pattern files in parallel and merges them into one
// set. The first failure cancels the remaining reads and fails the load.
func ReadFiles(ctx context.Context, paths []string) (Citizens, error) {
	var (
		mu     sync.Mutex
		merged = NewCitizens()
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelReads)
	for _, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			citizens, err := ReadFile(path)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for cell := range citizens {
				merged.Add(cell)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}
