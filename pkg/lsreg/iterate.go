package lsreg

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/joshuapare/lsregkit/internal/dumpfile"
	"github.com/joshuapare/lsregkit/internal/dumptext"
	"github.com/joshuapare/lsregkit/internal/regdump"
	"github.com/joshuapare/lsregkit/pkg/types"
)

// ErrStopIteration is a sentinel error that can be returned from iteration
// callbacks to stop early without triggering an error condition.
var ErrStopIteration = errors.New("stop iteration")

// Iterate runs the dump command and calls fn for every record in stream
// order. The command is reaped before Iterate returns; a failing exit status
// is reported only if its whole output was read. ctx is checked between
// records and kills the command when cancelled.
func Iterate(ctx context.Context, opts *Options, fn func(types.Record) error) error {
	argv := opts.command()
	if len(argv) == 0 {
		argv = regdump.ResolveCommand()
	}

	stream, err := regdump.Open(ctx, argv)
	if err != nil {
		return err
	}

	err = run(ctx, stream, opts, nil, fn)
	if closeErr := stream.Close(); err == nil {
		err = closeErr
	}
	return err
}

// IterateReader calls fn for every record read from r.
func IterateReader(r io.Reader, opts *Options, fn func(types.Record) error) error {
	return run(context.Background(), r, opts, nil, fn)
}

// IterateFile calls fn for every record of a dump saved at path.
func IterateFile(path string, opts *Options, fn func(types.Record) error) error {
	f, err := dumpfile.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return run(context.Background(), f, opts, nil, fn)
}

// IterateInto is IterateReader with caller supplied storage: factory is
// called before each section is read and the record is decoded into the
// storage it returns. Because the end of the stream is only found by trying
// to read another section, factory is usually called once more than fn.
// Returning the same *types.Storage every time reuses one set of records, in
// which case a record passed to fn must not be retained after fn returns. A
// nil factory, or a factory returning nil, allocates.
func IterateInto(r io.Reader, opts *Options, factory func() *types.Storage, fn func(types.Record) error) error {
	return run(context.Background(), r, opts, factory, fn)
}

func run(ctx context.Context, r io.Reader, opts *Options, factory func() *types.Storage, fn func(types.Record) error) error {
	dec, err := dumptext.NewDecoder(r, opts.decoderOptions())
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var st *types.Storage
		if factory != nil {
			st = factory()
		}
		rec, err := dec.NextInto(st)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := fn(rec); err != nil {
			if errors.Is(err, ErrStopIteration) {
				return nil
			}
			return err
		}
	}
}

// Records returns an iterator over the records read from r. Each record is
// freshly allocated. A configuration error is yielded once with a nil
// record; parse problems inside the dump are logged, not yielded.
func Records(r io.Reader, opts *Options) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		dec, err := dumptext.NewDecoder(r, opts.decoderOptions())
		if err != nil {
			yield(nil, err)
			return
		}
		for {
			rec, err := dec.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Collect reads every record from r into a slice.
func Collect(r io.Reader, opts *Options) ([]types.Record, error) {
	var records []types.Record
	for rec, err := range Records(r, opts) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}
