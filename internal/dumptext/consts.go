package dumptext

const (
	// ============================================================================
	// Section Structure
	// ============================================================================

	// DefaultHeaderLines is the number of preamble lines lsregister prints
	// before the first section.
	DefaultHeaderLines = 3

	// NoHeader disables header skipping when set as Options.HeaderLines.
	NoHeader = -1

	// SectionTerminator starts the line that closes a section.
	SectionTerminator = '-'

	// MainInfoTerminator starts the line that closes the main key/value block
	// of a section. Sub-entries (claims, bindings) follow it.
	MainInfoTerminator = "\t-"

	// MinHeaderLength is the shortest header line that can name a record type
	// and an id. Shorter lines are unsupported headers.
	MinHeaderLength = 8

	// KeyValueSeparator splits a line into key and value at its first occurrence.
	KeyValueSeparator = ':'

	// LF is the line feed character
	LF = "\n"

	// CR is the carriage return character
	CR = "\r"

	// asciiSpace lists the bytes trimmed as whitespace.
	asciiSpace = " \t\n\v\f\r"

	// ============================================================================
	// Record Type Tokens
	// ============================================================================

	// BundleToken starts a bundle section header ("bundle\tid: 1588").
	BundleToken = "bundle"

	// VolumeToken starts a volume section header.
	VolumeToken = "volume"

	// HandlerToken starts a handler section header.
	HandlerToken = "handler"

	// ============================================================================
	// Bundle Keys
	// ============================================================================

	KeyPath         = "path"
	KeyName         = "name"
	KeyVersion      = "version"
	KeyTypeCode     = "type code"
	KeyExecutable   = "executable"
	KeyIcon         = "icon"
	KeyModDate      = "mod date"
	KeyRegDate      = "reg date"
	KeyIdentifier   = "identifier"
	KeyCanonicalID  = "canonical id"
	KeyLibrary      = "library"
	KeyLibraryItems = "library items"
	KeyProperties   = "properties"

	// ============================================================================
	// Volume Keys
	// ============================================================================

	KeyDiskImage = "disk image"
	KeyState     = "state"
	KeyVRefNum   = "vrefnum"
	KeyFlags     = "flags"

	// MountedState is the state word of a mounted volume. Only its length is
	// compared: a state value of the same length counts as mounted.
	MountedState = "mounted"

	// ============================================================================
	// Handler Keys
	// ============================================================================

	KeyContentType = "content type"
	KeyExtension   = "extension"
	KeyURIScheme   = "unknown" // lsregister prints the URI scheme under this label
	KeyAllRoles    = "all roles"
	KeyOptions     = "options"

	// ============================================================================
	// Multi-line Values
	// ============================================================================

	// LibraryItemPrefix starts every continuation line of a library items list.
	LibraryItemPrefix = "\t  "

	// MinLibraryItemLength is the exclusive lower bound on continuation line
	// length: the tab plus the value column indent.
	MinLibraryItemLength = 16

	// PlistEnd closes an embedded property list after a "properties" key.
	PlistEnd = "</plist>"

	// ============================================================================
	// Value Formats
	// ============================================================================

	// DateSeparators follow month, day, year, hour and minute in a dump
	// date such as "6/26/2006 2:41:56". A ' ' matches any run of blanks.
	DateSeparators = "// ::"

	// HashOpen starts the hash suffix of an identifier: "name (0x8000702f)".
	HashOpen = '('

	// HashPrefixLength covers the "(0x" in front of the hash digits.
	HashPrefixLength = 3

	// MaxHexDigits is the widest hex string that fits in 32 bits.
	MaxHexDigits = 8

	// TypeCodeQuoteLength is the width of the quote wrapping a type code ('APPL').
	TypeCodeQuoteLength = 1

	// ============================================================================
	// Encoding Names
	// ============================================================================

	EncodingUTF8        = "utf-8"
	EncodingMacintosh   = "macintosh"
	EncodingWindows1252 = "windows-1252"
	EncodingISO88591    = "iso-8859-1"

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// ReaderBufferSize is the initial buffer size of the line source.
	ReaderBufferSize = 64 * 1024 // 64KB
)
