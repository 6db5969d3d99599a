// Package printer renders parsed registry records as text, XML, JSON or YAML.
package printer

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/lsregkit/pkg/types"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one brace-delimited block per record.
	FormatText Format = "text"

	// FormatXML outputs a <records> document.
	FormatXML Format = "xml"

	// FormatJSON outputs a JSON array of records.
	FormatJSON Format = "json"

	// FormatYAML outputs one YAML document per record.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatXML, FormatJSON, FormatYAML}

// ParseFormat maps a format name to a Format, ignoring case. "c" is accepted
// as an alias for text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "c":
		return FormatText, nil
	case FormatText, FormatXML, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", &types.Error{Kind: types.ErrKindConfig, Msg: fmt.Sprintf("unsupported format %q", s)}
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, xml, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per nesting level (json and yaml).
	// Default: 2
	IndentSize int

	// SkipUnknown drops *types.Unknown records. XML output never includes them.
	// Default: false
	SkipUnknown bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
	}
}

// Printer writes a stream of records. Call Begin once, Print for each
// record, then End.
type Printer struct {
	opts   Options
	writer io.Writer
	yaml   *yaml.Encoder
	count  int
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Begin()
//	lsreg.IterateReader(f, nil, p.Print)
//	p.End()
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{writer: w, opts: opts}
}

// Count returns the number of records printed so far.
func (p *Printer) Count() int { return p.count }

// Begin writes the document preamble, if the format has one.
func (p *Printer) Begin() error {
	switch p.opts.Format {
	case FormatXML:
		return p.beginXML()
	case FormatJSON:
		_, err := io.WriteString(p.writer, "[")
		return err
	case FormatYAML:
		p.startYAML()
		return nil
	default:
		return nil
	}
}

func (p *Printer) startYAML() {
	p.yaml = yaml.NewEncoder(p.writer)
	p.yaml.SetIndent(p.opts.IndentSize)
}

// Print writes one record.
func (p *Printer) Print(rec types.Record) error {
	if _, ok := rec.(*types.Unknown); ok && (p.opts.SkipUnknown || p.opts.Format == FormatXML) {
		return nil
	}

	var err error
	switch p.opts.Format {
	case FormatXML:
		err = p.printXML(rec)
	case FormatJSON:
		err = p.printJSON(rec)
	case FormatYAML:
		err = p.printYAML(rec)
	case FormatText:
		err = p.printText(rec)
	default:
		err = p.printText(rec)
	}
	if err != nil {
		return fmt.Errorf("print %s %d: %w", rec.Kind(), rec.UID(), err)
	}
	p.count++
	return nil
}

// End closes the document opened by Begin.
func (p *Printer) End() error {
	switch p.opts.Format {
	case FormatXML:
		return p.endXML()
	case FormatJSON:
		closing := "]\n"
		if p.count > 0 {
			closing = "\n]\n"
		}
		_, err := io.WriteString(p.writer, closing)
		return err
	case FormatYAML:
		if p.yaml == nil {
			return nil
		}
		return p.yaml.Close()
	default:
		return nil
	}
}
