package types

import (
	"fmt"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Record kinds
// -----------------------------------------------------------------------------

// Kind identifies which variant a Record holds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBundle
	KindVolume
	KindHandler
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindBundle:
		return "bundle"
	case KindVolume:
		return "volume"
	case KindHandler:
		return "handler"
	default:
		return "unknown"
	}
}

// Record is one parsed registry section. The concrete type is one of
// *Bundle, *Volume, *Handler or *Unknown.
type Record interface {
	Kind() Kind
	// UID is the registry database id from the section header.
	UID() uint32

	isRecord()
}

// -----------------------------------------------------------------------------
// Identifier
// -----------------------------------------------------------------------------

// Identifier is a reverse-domain name paired with the registry's 32-bit hash,
// as printed by the dump: "com.apple.Safari (0x8000702f)".
type Identifier struct {
	Name string
	Hash uint32
}

// String formats the identifier the way the dump prints it.
func (id Identifier) String() string {
	return fmt.Sprintf("%s (0x%x)", id.Name, id.Hash)
}

// -----------------------------------------------------------------------------
// Bundle
// -----------------------------------------------------------------------------

// Bundle describes an installed application, plugin or framework.
type Bundle struct {
	ID                  uint32
	Identifier          *Identifier // "com.apple.Safari", 0x8000702f
	CanonicalIdentifier *Identifier // "com.apple.safari", 0x80007030
	Path                *string     // /Applications/Safari.app
	Name                *string     // "Safari"
	Version             *string     // "5528.16" (free form)
	TypeCode            *string     // "APPL", quotes removed
	Executable          *string     // "Contents/MacOS/Safari"
	Icon                *string     // "Contents/Resources/compass.icns"
	RegDate             *time.Time
	ModDate             *time.Time
	Library             *string // "Contents/Library/"

	// LibraryItems is nil when the section has no "library items" key. A
	// non-nil, empty slice means the key was present with nothing listed.
	LibraryItems []string
}

func (*Bundle) Kind() Kind              { return KindBundle }
func (b *Bundle) UID() uint32           { return b.ID }
func (*Bundle) isRecord()               {}
func (b *Bundle) HasLibraryItems() bool { return b.LibraryItems != nil }

// -----------------------------------------------------------------------------
// Volume
// -----------------------------------------------------------------------------

// VolumeFlags is the bitset describing a volume.
type VolumeFlags uint32

const (
	VolumeLocal        VolumeFlags = 1 << iota // local device
	VolumeDiskImage                            // backed by a disk image
	VolumeSystemDevice                         // system device
)

// String lists the set flags separated by '|', or "0" when none are set.
func (f VolumeFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	if f&VolumeLocal != 0 {
		parts = append(parts, "local")
	}
	if f&VolumeDiskImage != 0 {
		parts = append(parts, "disk-image")
	}
	if f&VolumeSystemDevice != 0 {
		parts = append(parts, "system-device")
	}
	if rest := f &^ (VolumeLocal | VolumeDiskImage | VolumeSystemDevice); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// Volume describes a mounted or previously seen filesystem volume.
type Volume struct {
	ID        uint32
	Path      *string // mount path, may no longer exist
	DiskImage *string // nil unless backed by a disk image
	IsMounted bool
	VRefNum   int // 0 when absent
	Flags     VolumeFlags

	// RawFlags keeps the undecoded "flags" value. Flags itself is not
	// derived from it.
	RawFlags *string
}

func (*Volume) Kind() Kind    { return KindVolume }
func (v *Volume) UID() uint32 { return v.ID }
func (*Volume) isRecord()     {}

// -----------------------------------------------------------------------------
// Handler
// -----------------------------------------------------------------------------

// HandlerOptions is the bitset of handler options.
type HandlerOptions uint32

// Handler associates a content type, extension or URI scheme with the
// application that claims it.
type Handler struct {
	ID          uint32
	ContentType *string     // "public.html"
	Extension   *string     // "html"
	URIScheme   *string     // "http"; the dump labels this key "unknown"
	Roles       *Identifier // "com.apple.safari (0x80007030)"
	Options     HandlerOptions

	// RawOptions keeps the undecoded "options" value.
	RawOptions *string
}

func (*Handler) Kind() Kind    { return KindHandler }
func (h *Handler) UID() uint32 { return h.ID }
func (*Handler) isRecord()     {}

// -----------------------------------------------------------------------------
// Unknown
// -----------------------------------------------------------------------------

// Unknown stands in for a section whose header named no supported type.
type Unknown struct {
	ID     uint32
	Header string // the header line, terminator removed
}

func (*Unknown) Kind() Kind    { return KindUnknown }
func (u *Unknown) UID() uint32 { return u.ID }
func (*Unknown) isRecord()     {}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// String returns a pointer to a copy of s.
func String(s string) *string { return &s }

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
