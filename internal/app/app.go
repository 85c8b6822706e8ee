// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"varanno/internal/annotator"
	"varanno/internal/cli"
	"varanno/internal/cmdutil"
	"varanno/internal/pipeline"
	"varanno/internal/version"
	"varanno/internal/writers"
)

// RunContext parses argv, streams evidence through the annotator, and
// writes annotated sites to stdout. Exit codes: 0 ok, 2 usage error,
// 3 runtime/write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("varanno")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw, "varanno")
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "varanno version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Window == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "--window 0: sites are called as soon as they arrive")
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := writers.StartSiteWriter(outw, opts.Output, opts.Header, 64)

	a := annotator.New(
		annotator.Config{
			MinGQX:   opts.MinGQX,
			MaxDepth: uint32(opts.MaxDepth),
			MaxSB:    opts.MaxSB,
		},
		func(s annotator.Site) error {
			select {
			case inCh <- s:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	perr := pipeline.Run(ctx, pipeline.Config{Window: opts.Window}, opts.EvidenceFiles, a)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
