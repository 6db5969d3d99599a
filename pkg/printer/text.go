package printer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joshuapare/lsregkit/pkg/types"
)

const (
	textDateLayout = "2006-01-02 15:04:05"
	textNoDate     = "0000-00-00 00:00:00"
	textNull       = "(null)"
)

// textWriter accumulates the first write error so field lines can be emitted
// without checking each one.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func quoted(s *string) string {
	if s == nil {
		return textNull
	}
	return `"` + *s + `"`
}

func textDate(t *time.Time) string {
	if t == nil {
		return textNoDate
	}
	return t.Format(textDateLayout)
}

func (t *textWriter) identifier(id *types.Identifier, indent string) {
	if id == nil {
		t.printf("NULL\n")
		return
	}
	t.printf("{\n%s  name = \"%s\"\n%s  hash = 0x%x\n%s}\n", indent, id.Name, indent, id.Hash, indent)
}

// printText writes a record as a brace-delimited block of field assignments.
func (p *Printer) printText(rec types.Record) error {
	t := &textWriter{w: p.writer}

	switch r := rec.(type) {
	case *types.Bundle:
		t.printf("bundle {\n")
		t.printf("  uid                  = %d\n", r.ID)
		t.printf("  identifier           = ")
		t.identifier(r.Identifier, "  ")
		t.printf("  canonical_identifier = ")
		t.identifier(r.CanonicalIdentifier, "  ")
		t.printf("  path                 = %s\n", quoted(r.Path))
		t.printf("  name                 = %s\n", quoted(r.Name))
		t.printf("  version              = %s\n", quoted(r.Version))
		t.printf("  type_code            = %s\n", quoted(r.TypeCode))
		t.printf("  executable           = %s\n", quoted(r.Executable))
		t.printf("  icon                 = %s\n", quoted(r.Icon))
		t.printf("  regdate              = %s\n", textDate(r.RegDate))
		t.printf("  moddate              = %s\n", textDate(r.ModDate))
		t.printf("  library              = %s\n", quoted(r.Library))
		t.printf("  library_items        = ")
		if r.HasLibraryItems() {
			t.printf("[\n")
			for _, item := range r.LibraryItems {
				t.printf("    \"%s\"\n", item)
			}
			t.printf("  ]\n")
		} else {
			t.printf("NULL\n")
		}
		t.printf("}\n")

	case *types.Volume:
		mounted := "NO"
		if r.IsMounted {
			mounted = "YES"
		}
		t.printf("volume {\n")
		t.printf("  uid        = %d\n", r.ID)
		t.printf("  path       = %s\n", quoted(r.Path))
		t.printf("  disk_image = %s\n", quoted(r.DiskImage))
		t.printf("  is_mounted = %s\n", mounted)
		t.printf("  vrefnum    = %d\n", r.VRefNum)
		t.printf("  flags      = 0x%x\n", uint32(r.Flags))
		t.printf("}\n")

	case *types.Handler:
		t.printf("handler {\n")
		t.printf("  uid          = %d\n", r.ID)
		t.printf("  content_type = %s\n", quoted(r.ContentType))
		t.printf("  extension    = %s\n", quoted(r.Extension))
		t.printf("  uri_scheme   = %s\n", quoted(r.URIScheme))
		t.printf("  roles        = ")
		t.identifier(r.Roles, "  ")
		t.printf("  options      = 0x%x\n", uint32(r.Options))
		t.printf("}\n")

	case *types.Unknown:
		t.printf("unknown {\n")
		t.printf("  uid    = %d\n", r.ID)
		t.printf("  header = %q\n", strings.TrimSpace(r.Header))
		t.printf("}\n")

	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}
	return t.err
}
