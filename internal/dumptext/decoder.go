package dumptext

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/joshuapare/lsregkit/internal/logger"
	"github.com/joshuapare/lsregkit/pkg/types"
)

// Options controls decoding.
type Options struct {
	// HeaderLines is the number of preamble lines skipped before the first
	// section. Zero means DefaultHeaderLines; NoHeader skips nothing.
	HeaderLines int

	// Encoding names the character set of the dump: "utf-8" (default),
	// "macintosh", "windows-1252" or "iso-8859-1". Non UTF-8 input is
	// transcoded before lines are split.
	Encoding string

	// Location interprets "reg date" and "mod date" values.
	// Default: time.Local
	Location *time.Location

	// Logger receives reports about malformed input.
	// Default: logger.L
	Logger *slog.Logger
}

// Decoder reads records from a dump one section at a time.
type Decoder struct {
	src     *LineSource
	log     *slog.Logger
	fields  fieldContext
	header  int
	started bool
	done    bool
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts Options) (*Decoder, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	log := opts.Logger
	if log == nil {
		log = logger.L
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	header := opts.HeaderLines
	switch {
	case header == 0:
		header = DefaultHeaderLines
	case header < 0:
		header = 0
	}

	src := NewLineSource(r, log)
	return &Decoder{
		src:    src,
		log:    log,
		fields: fieldContext{src: src, loc: loc},
		header: header,
	}, nil
}

// CheckEncoding reports whether name is an encoding the decoder accepts.
func CheckEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}

// lookupEncoding returns nil for UTF-8, which needs no transcoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "utf8":
		return nil, nil
	case EncodingMacintosh, "macroman":
		return charmap.Macintosh, nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252, nil
	case EncodingISO88591, "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnsupportedEncoding, name)
	}
}

// Next parses the next section into a freshly allocated record. It returns
// io.EOF once the stream is exhausted; a read failure also ends the stream
// and is reported by Err.
func (d *Decoder) Next() (types.Record, error) {
	return d.NextInto(nil)
}

// NextInto is Next with record storage supplied by the caller. The returned
// record points into st and is overwritten by the next call that reuses st.
// A nil st allocates.
func (d *Decoder) NextInto(st *types.Storage) (types.Record, error) {
	if d.done {
		return nil, io.EOF
	}
	if !d.started {
		d.started = true
		if !d.skipHeader() {
			d.done = true
			return nil, io.EOF
		}
	}

	header, ok := d.readHeader()
	if !ok {
		d.done = true
		return nil, io.EOF
	}

	rec, fields := d.detect(header, st)
	if fields == nil {
		d.log.Warn("skipping section",
			"line", d.src.Line(), "header", rec.(*types.Unknown).Header,
			"error", types.ErrUnsupportedRecord)
		if d.drainSection() == StatusDone {
			d.done = true
		}
		return rec, nil
	}

	if d.readSection(fields) == StatusDone {
		d.done = true
	}
	return rec, nil
}

// Err returns the read error that ended the stream, or nil after a clean end.
func (d *Decoder) Err() error { return d.src.Err() }

func (d *Decoder) skipHeader() bool {
	for range d.header {
		if _, ok := d.src.ReadLine(); !ok {
			return false
		}
	}
	return true
}

// readHeader returns the next section header, passing over blank lines and
// separator lines left between sections.
func (d *Decoder) readHeader() (string, bool) {
	for {
		line, ok := d.src.ReadLine()
		if !ok {
			return "", false
		}
		if isBlank(line) || line[0] == SectionTerminator {
			continue
		}
		return line, true
	}
}

// detect reads the record type and id from a header line such as
// "bundle\tid:            1588". An unsupported header yields an
// *types.Unknown and a nil parser.
func (d *Decoder) detect(header string, st *types.Storage) (types.Record, fieldParser) {
	var uid uint32
	if len(header) >= MinHeaderLength {
		if sep := strings.IndexByte(header, KeyValueSeparator); sep >= 0 {
			uid = uint32(atoi(header[sep+1:]))
		}
		switch {
		case strings.HasPrefix(header, BundleToken):
			b := st.NewBundle(uid)
			return b, &bundleParser{fieldContext: &d.fields, b: b}
		case strings.HasPrefix(header, VolumeToken):
			v := st.NewVolume(uid)
			return v, &volumeParser{fieldContext: &d.fields, v: v}
		case strings.HasPrefix(header, HandlerToken):
			h := st.NewHandler(uid)
			return h, &handlerParser{fieldContext: &d.fields, h: h}
		}
	}
	return st.NewUnknown(uid, stripTerminator(header)), nil
}

// readSection drives one section through its states: the main key/value
// block, then (after a "\t-" line) the remainder, which is skipped. It
// returns StatusContinue when a '-' line closed the section and StatusDone
// when the stream ended first.
func (d *Decoder) readSection(fields fieldParser) Status {
	passedMain := false
	for {
		line, ok := d.src.ReadLine()
		if !ok {
			return StatusDone
		}
		if isBlank(line) {
			continue
		}
		if line[0] == SectionTerminator {
			return StatusContinue
		}
		if passedMain {
			continue
		}
		if strings.HasPrefix(line, MainInfoTerminator) {
			passedMain = true
			continue
		}

		kv, err := SplitKeyValue(line)
		if err != nil {
			d.log.Warn("unable to parse line", "line", d.src.Line(), "error", err)
			continue
		}

		status, err := fields.parseField(kv)
		if err != nil {
			d.logFieldError(kv, err)
		}
		if status == StatusDone {
			return StatusDone
		}
	}
}

// drainSection discards the rest of an abandoned section so the next call
// starts at a section boundary.
func (d *Decoder) drainSection() Status {
	for {
		line, ok := d.src.ReadLine()
		if !ok {
			return StatusDone
		}
		if line != "" && line[0] == SectionTerminator {
			return StatusContinue
		}
	}
}

func (d *Decoder) logFieldError(kv KeyValue, err error) {
	if errors.Is(err, types.ErrUnknownKey) {
		d.log.Debug("ignoring key", "line", d.src.Line(), "key", kv.Key)
		return
	}
	d.log.Warn("malformed field", "line", d.src.Line(), "key", kv.Key, "value", kv.Value, "error", err)
}
