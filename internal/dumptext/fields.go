package dumptext

import (
	"fmt"
	"strings"
	"time"

	"github.com/joshuapare/lsregkit/pkg/types"
)

// Status tells the section loop whether to keep reading after a field.
type Status int

const (
	// StatusContinue means the field was consumed and the section goes on.
	StatusContinue Status = iota
	// StatusDone means the stream ended while a field was being read, which
	// also ends the record.
	StatusDone
)

// fieldParser assigns one key/value pair to a typed record. Parsers for
// multi-line values read further lines from the shared source and push back
// the first line that does not belong to them.
//
// A non-nil error is never fatal: the record keeps whatever was assigned and
// the section loop logs the error and moves on.
type fieldParser interface {
	parseField(kv KeyValue) (Status, error)
}

// fieldContext is what every field parser shares with the section loop.
type fieldContext struct {
	src *LineSource
	loc *time.Location
}

func unknownKey(key string) error {
	return fmt.Errorf("%w %q", types.ErrUnknownKey, key)
}

// -----------------------------------------------------------------------------
// Bundle
// -----------------------------------------------------------------------------

type bundleParser struct {
	*fieldContext
	b *types.Bundle
}

func (p *bundleParser) parseField(kv KeyValue) (Status, error) {
	switch kv.Key {
	case KeyLibraryItems:
		return p.readLibraryItems(kv.Value), nil
	case KeyProperties:
		return p.skipPropertyList()
	}
	return StatusContinue, p.set(kv)
}

func (p *bundleParser) set(kv KeyValue) error {
	b := p.b
	switch kv.Key {
	case KeyPath:
		b.Path = types.String(kv.Value)
	case KeyName:
		b.Name = types.String(kv.Value)
	case KeyVersion:
		b.Version = types.String(kv.Value)
	case KeyTypeCode:
		b.TypeCode = types.String(unquote(kv.Value))
	case KeyExecutable:
		b.Executable = types.String(kv.Value)
	case KeyIcon:
		b.Icon = types.String(kv.Value)
	case KeyLibrary:
		b.Library = types.String(kv.Value)
	case KeyModDate:
		t, err := ParseDate(kv.Value, p.loc)
		if err != nil {
			return err
		}
		b.ModDate = &t
	case KeyRegDate:
		t, err := ParseDate(kv.Value, p.loc)
		if err != nil {
			return err
		}
		b.RegDate = &t
	case KeyIdentifier:
		id, err := ParseIdentifier(kv.Value)
		b.Identifier = &id
		return err
	case KeyCanonicalID:
		id, err := ParseIdentifier(kv.Value)
		b.CanonicalIdentifier = &id
		return err
	default:
		return unknownKey(kv.Key)
	}
	return nil
}

// readLibraryItems collects the first item from the key's own line and every
// continuation line after it. lsregister prints "canonical id" before
// "library items" only when it differs from "identifier", so a bundle that
// reaches this point without one has identical ids.
func (p *bundleParser) readLibraryItems(first string) Status {
	b := p.b
	if b.CanonicalIdentifier == nil && b.Identifier != nil {
		canonical := *b.Identifier
		b.CanonicalIdentifier = &canonical
	}

	items := make([]string, 0, 2)
	if first != "" {
		items = append(items, first)
	}
	defer func() { b.LibraryItems = items }()

	for {
		line, ok := p.src.ReadLine()
		if !ok {
			return StatusDone
		}
		if !isLibraryItem(line) {
			p.src.Unread(line)
			return StatusContinue
		}
		items = append(items, stripTerminator(trimLeft(line)))
	}
}

func isLibraryItem(line string) bool {
	return len(line) > MinLibraryItemLength && strings.HasPrefix(line, LibraryItemPrefix)
}

// skipPropertyList discards the property list document that follows a
// "properties" key, up to and including its closing tag. If the first line
// is already a section line the key had no document: that line is pushed
// back and ErrUnexpectedKey is returned.
func (p *bundleParser) skipPropertyList() (Status, error) {
	seenDocument := false
	for {
		line, ok := p.src.ReadLine()
		if !ok {
			return StatusDone, nil
		}
		if !seenDocument {
			if line[0] == '\t' || line[0] == SectionTerminator {
				p.src.Unread(line)
				return StatusContinue, fmt.Errorf("%w: %q", types.ErrUnexpectedKey, stripTerminator(line))
			}
			seenDocument = true
		}
		if strings.HasPrefix(trimLeft(line), PlistEnd) {
			return StatusContinue, nil
		}
	}
}

// -----------------------------------------------------------------------------
// Volume
// -----------------------------------------------------------------------------

type volumeParser struct {
	*fieldContext
	v *types.Volume
}

func (p *volumeParser) parseField(kv KeyValue) (Status, error) {
	v := p.v
	switch kv.Key {
	case KeyPath:
		v.Path = types.String(kv.Value)
	case KeyDiskImage:
		v.DiskImage = types.String(kv.Value)
	case KeyState:
		// "mounted" vs "unmounted": lsregister prints nothing else here,
		// so the word length decides.
		v.IsMounted = len(kv.Value) == len(MountedState)
	case KeyVRefNum:
		v.VRefNum = atoi(kv.Value)
	case KeyFlags:
		v.RawFlags = types.String(kv.Value)
	default:
		return StatusContinue, unknownKey(kv.Key)
	}
	return StatusContinue, nil
}

// -----------------------------------------------------------------------------
// Handler
// -----------------------------------------------------------------------------

type handlerParser struct {
	*fieldContext
	h *types.Handler
}

func (p *handlerParser) parseField(kv KeyValue) (Status, error) {
	h := p.h
	switch kv.Key {
	case KeyContentType:
		h.ContentType = types.String(kv.Value)
	case KeyExtension:
		h.Extension = types.String(kv.Value)
	case KeyURIScheme:
		h.URIScheme = types.String(kv.Value)
	case KeyAllRoles:
		id, err := ParseIdentifier(kv.Value)
		h.Roles = &id
		return StatusContinue, err
	case KeyOptions:
		h.RawOptions = types.String(kv.Value)
	default:
		return StatusContinue, unknownKey(kv.Key)
	}
	return StatusContinue, nil
}
