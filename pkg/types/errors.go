package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindField     ErrKind = iota // malformed field value (hex, date); field left unset
	ErrKindStructure                // line or block that does not follow the dump grammar
	ErrKindRecord                   // section abandoned (unsupported record type)
	ErrKindStream                   // failure reading the underlying dump stream
	ErrKindConfig                   // invalid option or configuration value
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindField:
		return "field"
	case ErrKindStructure:
		return "structure"
	case ErrKindRecord:
		return "record"
	case ErrKindStream:
		return "stream"
	case ErrKindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by the dump parser.
var (
	// ErrHexTooWide indicates a hex string longer than eight digits.
	ErrHexTooWide = &Error{Kind: ErrKindField, Msg: "hex value wider than 32 bits"}
	// ErrHexInvalidChar indicates a character outside 0-9a-fA-F.
	ErrHexInvalidChar = &Error{Kind: ErrKindField, Msg: "invalid hex character"}
	// ErrBadDate indicates a date value not in "month/day/year h:m:s" form.
	ErrBadDate = &Error{Kind: ErrKindField, Msg: "malformed date"}
	// ErrUnknownKey reports a key the record type does not map. It is
	// informational; parsing continues.
	ErrUnknownKey = &Error{Kind: ErrKindField, Msg: "unknown key"}
	// ErrNoSeparator indicates a line with no ':' between key and value.
	ErrNoSeparator = &Error{Kind: ErrKindStructure, Msg: "no key/value separator"}
	// ErrUnexpectedKey indicates a key line where a property list was expected.
	ErrUnexpectedKey = &Error{Kind: ErrKindStructure, Msg: "expected property list, found key"}
	// ErrUnsupportedRecord indicates a section header naming no known type.
	ErrUnsupportedRecord = &Error{Kind: ErrKindRecord, Msg: "unsupported record type"}
	// ErrUnsupportedEncoding indicates an input encoding name that is not known.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindConfig, Msg: "unsupported encoding"}
)
