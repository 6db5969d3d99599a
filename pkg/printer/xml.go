package printer

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/joshuapare/lsregkit/pkg/types"
)

const xmlDateLayout = "2006-01-02T15:04:05-0700"

type xmlIdentifier struct {
	Hash string `xml:"hash,attr"`
	Name string `xml:",chardata"`
}

type xmlBundle struct {
	XMLName  xml.Name `xml:"bundle"`
	ID       uint32   `xml:"id,attr"`
	Name     string   `xml:"name,attr"`
	Version  string   `xml:"version,attr"`
	TypeCode string   `xml:"type_code,attr"`

	// Canonical name; the child elements carry both identifiers in full.
	CanonicalName string `xml:"identifier,attr"`

	Identifier          *xmlIdentifier `xml:"identifier,omitempty"`
	CanonicalIdentifier *xmlIdentifier `xml:"canonical_identifier,omitempty"`
	Path                string         `xml:"path,omitempty"`
	Executable          string         `xml:"executable,omitempty"`
	RegDate             string         `xml:"regdate,omitempty"`
	ModDate             string         `xml:"moddate,omitempty"`
	Library             string         `xml:"library,omitempty"`
	LibraryItems        []string       `xml:"library_items>item,omitempty"`
}

type xmlVolume struct {
	XMLName   xml.Name `xml:"volume"`
	ID        uint32   `xml:"id,attr"`
	Mounted   bool     `xml:"mounted,attr"`
	VRefNum   int      `xml:"vrefnum,attr"`
	Flags     string   `xml:"flags,attr"`
	Path      string   `xml:"path,omitempty"`
	DiskImage string   `xml:"disk_image,omitempty"`
}

type xmlHandler struct {
	XMLName     xml.Name       `xml:"handler"`
	ID          uint32         `xml:"id,attr"`
	ContentType string         `xml:"content_type,attr"`
	Extension   string         `xml:"extension,attr"`
	URIScheme   string         `xml:"uri_scheme,attr"`
	Options     string         `xml:"options,attr"`
	Roles       *xmlIdentifier `xml:"roles,omitempty"`
}

func newXMLIdentifier(id *types.Identifier) *xmlIdentifier {
	if id == nil {
		return nil
	}
	return &xmlIdentifier{Hash: fmt.Sprintf("%x", id.Hash), Name: id.Name}
}

func xmlDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(xmlDateLayout)
}

func (p *Printer) beginXML() error {
	_, err := io.WriteString(p.writer, xml.Header+"<records>\n")
	return err
}

func (p *Printer) endXML() error {
	_, err := io.WriteString(p.writer, "</records>\n")
	return err
}

// printXML writes one record element inside <records>.
func (p *Printer) printXML(rec types.Record) error {
	var v any
	switch r := rec.(type) {
	case *types.Bundle:
		b := xmlBundle{
			ID:                  r.ID,
			Name:                types.StringValue(r.Name),
			Version:             types.StringValue(r.Version),
			TypeCode:            types.StringValue(r.TypeCode),
			Identifier:          newXMLIdentifier(r.Identifier),
			CanonicalIdentifier: newXMLIdentifier(r.CanonicalIdentifier),
			Path:                types.StringValue(r.Path),
			Executable:          types.StringValue(r.Executable),
			RegDate:             xmlDate(r.RegDate),
			ModDate:             xmlDate(r.ModDate),
			Library:             types.StringValue(r.Library),
			LibraryItems:        r.LibraryItems,
		}
		if r.CanonicalIdentifier != nil {
			b.CanonicalName = r.CanonicalIdentifier.Name
		}
		v = b
	case *types.Volume:
		v = xmlVolume{
			ID:        r.ID,
			Mounted:   r.IsMounted,
			VRefNum:   r.VRefNum,
			Flags:     fmt.Sprintf("%08x", uint32(r.Flags)),
			Path:      types.StringValue(r.Path),
			DiskImage: types.StringValue(r.DiskImage),
		}
	case *types.Handler:
		v = xmlHandler{
			ID:          r.ID,
			ContentType: types.StringValue(r.ContentType),
			Extension:   types.StringValue(r.Extension),
			URIScheme:   types.StringValue(r.URIScheme),
			Options:     fmt.Sprintf("%08x", uint32(r.Options)),
			Roles:       newXMLIdentifier(r.Roles),
		}
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}

	enc := xml.NewEncoder(p.writer)
	enc.Indent("  ", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(p.writer, "\n")
	return err
}
