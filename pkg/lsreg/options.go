package lsreg

import (
	"log/slog"
	"time"

	"github.com/joshuapare/lsregkit/internal/dumptext"
)

// Options controls how a dump is obtained and parsed. A nil *Options uses
// the defaults of every field.
type Options struct {
	// Command is the argv used by Iterate to produce the dump.
	// Default: lsregister -dump at the path matching the OS release
	Command []string

	// HeaderLines is the number of preamble lines before the first section.
	// Default: 3. Use -1 for a dump that has no preamble.
	HeaderLines int

	// Encoding of the dump text: "utf-8", "macintosh", "windows-1252" or
	// "iso-8859-1".
	// Default: "utf-8"
	Encoding string

	// Location interprets registration and modification dates.
	// Default: time.Local
	Location *time.Location

	// Logger receives reports about malformed input.
	// Default: the package logger, which discards until configured
	Logger *slog.Logger
}

func (o *Options) decoderOptions() dumptext.Options {
	if o == nil {
		return dumptext.Options{}
	}
	return dumptext.Options{
		HeaderLines: o.HeaderLines,
		Encoding:    o.Encoding,
		Location:    o.Location,
		Logger:      o.Logger,
	}
}

func (o *Options) command() []string {
	if o == nil {
		return nil
	}
	return o.Command
}
