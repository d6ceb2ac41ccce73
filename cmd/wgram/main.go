package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aabizri/wgram"
	"github.com/aabizri/wgram/interchange/wgif"
	"github.com/pkg/errors"
)

func main() {
	Execute()
}

// listen expands every document read from r, writing the results to w in input order
func listen(w io.Writer, r io.Reader, logger *slog.Logger, opts options) error {
	in, out := buildPipeline(opts)

	// Signal that the pipeline is empty, with the output error if any
	closed := make(chan error)
	go func() {
		var (
			seq      = -1
			failed   int
			writeErr error
		)
		for o := range out {
			seq++
			if o.err != nil {
				logger.Error("expansion failed", "document", o.seq, "error", o.err)
				failed++
				continue
			}

			logger.Debug("document expanded",
				"document", o.seq,
				"passes", o.result.Passes,
				"symbols", len(o.result.Form),
				"truncated", o.result.Truncated,
			)
			if writeErr != nil {
				continue // Drain
			}
			if _, err := fmt.Fprintln(w, o.result.String()); err != nil {
				writeErr = errors.Wrap(err, "writing output")
			}
		}

		switch {
		case writeErr != nil:
			closed <- writeErr
		case failed > 0:
			closed <- errors.Errorf("%d of %d documents failed", failed, seq+1)
		default:
			closed <- nil
		}
	}()

	readErr := read(in, r, logger, opts)
	close(in)

	outErr := <-closed
	if readErr != nil {
		return readErr
	}
	return outErr
}

// read feeds the pipeline until the end of the stream or the first invalid document
func read(in chan<- *wgram.Expander, r io.Reader, logger *slog.Logger, opts options) error {
	decoder := wgif.NewDecoder(r)
	for n := 0; ; n++ {
		format, err := decoder.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "document %d", n)
		}

		parameters, err := format.Import()
		if err != nil {
			return errors.Wrapf(err, "document %d", n)
		}
		if opts.seed != 0 {
			parameters.Seed = opts.seed
		}

		logger.Debug("document read", "document", n, "start", parameters.Start.ID, "rules", parameters.Grammar.Len())
		in <- wgram.New(parameters)
	}
}
