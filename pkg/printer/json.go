package printer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joshuapare/lsregkit/pkg/types"
)

// identifierView is an Identifier in JSON and YAML output.
type identifierView struct {
	Name string `json:"name" yaml:"name"`
	Hash uint32 `json:"hash" yaml:"hash"`
}

// bundleView represents a bundle in JSON and YAML output. Absent fields are
// omitted; library_items is null when the key never appeared.
type bundleView struct {
	Kind                string          `json:"kind" yaml:"kind"`
	ID                  uint32          `json:"id" yaml:"id"`
	Identifier          *identifierView `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	CanonicalIdentifier *identifierView `json:"canonical_identifier,omitempty" yaml:"canonical_identifier,omitempty"`
	Path                *string         `json:"path,omitempty" yaml:"path,omitempty"`
	Name                *string         `json:"name,omitempty" yaml:"name,omitempty"`
	Version             *string         `json:"version,omitempty" yaml:"version,omitempty"`
	TypeCode            *string         `json:"type_code,omitempty" yaml:"type_code,omitempty"`
	Executable          *string         `json:"executable,omitempty" yaml:"executable,omitempty"`
	Icon                *string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	RegDate             *time.Time      `json:"reg_date,omitempty" yaml:"reg_date,omitempty"`
	ModDate             *time.Time      `json:"mod_date,omitempty" yaml:"mod_date,omitempty"`
	Library             *string         `json:"library,omitempty" yaml:"library,omitempty"`
	LibraryItems        []string        `json:"library_items" yaml:"library_items,omitempty"`
}

type volumeView struct {
	Kind      string  `json:"kind" yaml:"kind"`
	ID        uint32  `json:"id" yaml:"id"`
	Path      *string `json:"path,omitempty" yaml:"path,omitempty"`
	DiskImage *string `json:"disk_image,omitempty" yaml:"disk_image,omitempty"`
	Mounted   bool    `json:"mounted" yaml:"mounted"`
	VRefNum   int     `json:"vrefnum" yaml:"vrefnum"`
	Flags     uint32  `json:"flags" yaml:"flags"`
	RawFlags  *string `json:"raw_flags,omitempty" yaml:"raw_flags,omitempty"`
}

type handlerView struct {
	Kind        string          `json:"kind" yaml:"kind"`
	ID          uint32          `json:"id" yaml:"id"`
	ContentType *string         `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Extension   *string         `json:"extension,omitempty" yaml:"extension,omitempty"`
	URIScheme   *string         `json:"uri_scheme,omitempty" yaml:"uri_scheme,omitempty"`
	Roles       *identifierView `json:"roles,omitempty" yaml:"roles,omitempty"`
	Options     uint32          `json:"options" yaml:"options"`
	RawOptions  *string         `json:"raw_options,omitempty" yaml:"raw_options,omitempty"`
}

type unknownView struct {
	Kind   string `json:"kind" yaml:"kind"`
	ID     uint32 `json:"id" yaml:"id"`
	Header string `json:"header" yaml:"header"`
}

func newIdentifierView(id *types.Identifier) *identifierView {
	if id == nil {
		return nil
	}
	return &identifierView{Name: id.Name, Hash: id.Hash}
}

// view converts a record to its JSON/YAML shape.
func view(rec types.Record) (any, error) {
	switch r := rec.(type) {
	case *types.Bundle:
		return bundleView{
			Kind:                r.Kind().String(),
			ID:                  r.ID,
			Identifier:          newIdentifierView(r.Identifier),
			CanonicalIdentifier: newIdentifierView(r.CanonicalIdentifier),
			Path:                r.Path,
			Name:                r.Name,
			Version:             r.Version,
			TypeCode:            r.TypeCode,
			Executable:          r.Executable,
			Icon:                r.Icon,
			RegDate:             r.RegDate,
			ModDate:             r.ModDate,
			Library:             r.Library,
			LibraryItems:        r.LibraryItems,
		}, nil
	case *types.Volume:
		return volumeView{
			Kind:      r.Kind().String(),
			ID:        r.ID,
			Path:      r.Path,
			DiskImage: r.DiskImage,
			Mounted:   r.IsMounted,
			VRefNum:   r.VRefNum,
			Flags:     uint32(r.Flags),
			RawFlags:  r.RawFlags,
		}, nil
	case *types.Handler:
		return handlerView{
			Kind:        r.Kind().String(),
			ID:          r.ID,
			ContentType: r.ContentType,
			Extension:   r.Extension,
			URIScheme:   r.URIScheme,
			Roles:       newIdentifierView(r.Roles),
			Options:     uint32(r.Options),
			RawOptions:  r.RawOptions,
		}, nil
	case *types.Unknown:
		return unknownView{Kind: r.Kind().String(), ID: r.ID, Header: r.Header}, nil
	default:
		return nil, fmt.Errorf("unsupported record type %T", rec)
	}
}

// printJSON writes one element of the array opened by Begin.
func (p *Printer) printJSON(rec types.Record) error {
	v, err := view(rec)
	if err != nil {
		return err
	}

	indent := strings.Repeat(" ", p.opts.IndentSize)
	data, err := json.MarshalIndent(v, indent, indent)
	if err != nil {
		return err
	}

	sep := "\n"
	if p.count > 0 {
		sep = ",\n"
	}
	_, err = fmt.Fprintf(p.writer, "%s%s%s", sep, indent, data)
	return err
}

// printYAML writes one document per record.
func (p *Printer) printYAML(rec types.Record) error {
	v, err := view(rec)
	if err != nil {
		return err
	}
	if p.yaml == nil {
		p.startYAML()
	}
	return p.yaml.Encode(v)
}
