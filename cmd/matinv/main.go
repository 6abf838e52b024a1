// SPDX-License-Identifier: MIT

// Command matinv inverts a matrix through an invcache.Cell, repeating the
// request so that cache hits show up in the log.
//
//	matinv -m "2,0;0,2" -n 3 --log-level info
//	matinv -f matrix.yaml --no-pivot
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/matcache/invcache"
	mylog "github.com/katalvlaran/matcache/internal/log"
	"github.com/katalvlaran/matcache/internal/source"
	"github.com/katalvlaran/matcache/matrix"
)

// errInput marks failures caused by flags or the matrix document rather than
// by the inversion itself.
var errInput = errors.New("invalid input")

func main() {
	os.Exit(realMain(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout).Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errInput) {
			return 1
		}
		return 2
	}

	return 0
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "matinv",
		Usage:     "invert a matrix, memoizing the result",
		UsageText: `matinv (--matrix "2,0;0,2" | --file m.yaml) [options]`,
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "matrix",
				Aliases: []string{"m"},
				Usage:   "inline matrix, rows split by ';' and cells by ','",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML document with a 'matrix' key",
			},
			&cli.IntFlag{
				Name:    "repeat",
				Aliases: []string{"n"},
				Usage:   "number of inverse requests against the same cell",
				Value:   2,
			},
			&cli.FloatFlag{
				Name:  "tolerance",
				Usage: "relative pivot tolerance",
				Value: matrix.DefaultPivotTolerance,
			},
			&cli.BoolFlag{
				Name:  "no-pivot",
				Usage: "disable partial pivoting",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars(mylog.EnvLevel),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mylog.InitLogger(cmd.String("log-level"))

			m, opts, err := loadInput(cmd)
			if err != nil {
				return fmt.Errorf("%w: %w", errInput, err)
			}
			repeat := cmd.Int("repeat")
			if repeat < 1 {
				return fmt.Errorf("%w: --repeat must be >= 1, got %d", errInput, repeat)
			}

			return run(stdout, m, repeat, opts)
		},
	}
}

// loadInput resolves the matrix and solver options. Flags given explicitly
// override values from the YAML document.
func loadInput(cmd *cli.Command) (*matrix.Dense, []matrix.InverseOption, error) {
	var doc source.Document
	switch {
	case cmd.String("file") != "":
		var err error
		if doc, err = source.Load(cmd.String("file")); err != nil {
			return nil, nil, err
		}
	case cmd.String("matrix") != "":
		rows, err := source.Parse(cmd.String("matrix"))
		if err != nil {
			return nil, nil, err
		}
		doc.Matrix = rows
	default:
		return nil, nil, source.ErrEmpty
	}

	if cmd.IsSet("tolerance") {
		tol := cmd.Float("tolerance")
		doc.Tolerance = &tol
	}
	if cmd.IsSet("no-pivot") {
		pivot := !cmd.Bool("no-pivot")
		doc.Pivoting = &pivot
	}

	m, err := doc.Dense()
	if err != nil {
		return nil, nil, err
	}
	opts, err := doc.Options()
	if err != nil {
		return nil, nil, err
	}

	return m, opts, nil
}

// run asks the cell for the inverse repeat times and prints it once.
func run(w io.Writer, m *matrix.Dense, repeat int, opts []matrix.InverseOption) error {
	c := invcache.New(m)

	var inv matrix.Matrix
	var err error
	hits := 0
	for i := 0; i < repeat; i++ {
		if c.Cached() {
			hits++
		}
		if inv, err = invcache.Solve(c, opts...); err != nil {
			return err
		}
	}
	log.Debugf("served %d of %d requests from cache", hits, repeat)

	fmt.Fprint(w, inv)
	return nil
}
