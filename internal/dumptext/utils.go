package dumptext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/lsregkit/pkg/types"
)

// ParseHex32 converts a string of at most MaxHexDigits hex digits into a
// uint32. Digits are case-insensitive; an empty string yields 0.
//
// Conversion runs from the least significant digit upward. On an invalid
// character the partial magnitude accumulated so far is returned together
// with an error wrapping types.ErrHexInvalidChar, and the caller must not
// trust it.
func ParseHex32(s string) (uint32, error) {
	if len(s) > MaxHexDigits {
		return 0, fmt.Errorf("%w: %q", types.ErrHexTooWide, s)
	}
	var result uint32
	place := uint32(1)
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := hexDigit(s[i])
		if !ok {
			return result, fmt.Errorf("%w %q in %q", types.ErrHexInvalidChar, s[i], s)
		}
		result += v * place
		place *= 16
	}
	return result, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// ParseIdentifier splits "name (0xHASH)" into an identifier. The name is
// always populated. A missing hash suffix leaves Hash at 0 without error; a
// malformed one leaves Hash at 0 and returns the hex error so the caller can
// report it.
func ParseIdentifier(s string) (types.Identifier, error) {
	var (
		id  types.Identifier
		err error
	)
	name := s
	if open := strings.LastIndexByte(s, HashOpen); open >= 0 {
		name = s[:open]
		start := open + HashPrefixLength
		end := len(s) - 1 // drop the closing ')'
		if start > end {
			err = fmt.Errorf("%w: truncated hash %q", types.ErrHexInvalidChar, s[open:])
		} else if id.Hash, err = ParseHex32(s[start:end]); err != nil {
			id.Hash = 0
		}
	}
	id.Name = trimRight(name)
	return id, err
}

// ParseDate parses a dump date ("6/26/2006 2:41:56") in the given location.
// Fields may have one or two digits (four for the year) and anything after
// the seconds is ignored, so "6/26/2006 12:41:56 PM" parses as 12:41:56.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	var f [6]int // month, day, year, hour, minute, second
	rest := s
	for i := range f {
		rest = trimLeft(rest)
		n := 0
		for n < dateFieldWidth(i) && n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 {
			return time.Time{}, fmt.Errorf("%w %q", types.ErrBadDate, s)
		}
		f[i], _ = strconv.Atoi(rest[:n])
		rest = rest[n:]

		if i == len(f)-1 {
			break
		}
		sep := DateSeparators[i]
		if sep == ' ' {
			if rest == "" || strings.IndexByte(asciiSpace, rest[0]) < 0 {
				return time.Time{}, fmt.Errorf("%w %q", types.ErrBadDate, s)
			}
			continue
		}
		if rest == "" || rest[0] != sep {
			return time.Time{}, fmt.Errorf("%w %q", types.ErrBadDate, s)
		}
		rest = rest[1:]
	}

	month, day, year, hour, minute, second := f[0], f[1], f[2], f[3], f[4], f[5]
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 60 {
		return time.Time{}, fmt.Errorf("%w %q: field out of range", types.ErrBadDate, s)
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}

// dateFieldWidth is the most digits field i of a dump date may use.
func dateFieldWidth(i int) int {
	if i == 2 {
		return 4
	}
	return 2
}

// atoi reads the leading decimal integer of s after skipping whitespace. An
// optional sign is accepted; trailing text is ignored. Anything without
// digits, or out of int32 range, yields 0.
func atoi(s string) int {
	s = trimLeft(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

// unquote strips a one-character wrapper from each end ('APPL' -> APPL).
// Values too short to carry both quotes are returned unchanged.
func unquote(s string) string {
	if len(s) < 2*TypeCodeQuoteLength {
		return s
	}
	return s[TypeCodeQuoteLength : len(s)-TypeCodeQuoteLength]
}

func trimLeft(s string) string { return strings.TrimLeft(s, asciiSpace) }

func trimRight(s string) string { return strings.TrimRight(s, asciiSpace) }

// stripTerminator removes exactly one trailing line terminator (LF or CRLF).
func stripTerminator(s string) string {
	if strings.HasSuffix(s, LF) {
		s = s[:len(s)-len(LF)]
		s = strings.TrimSuffix(s, CR)
	}
	return s
}

// isBlank reports whether a raw line carries no content.
func isBlank(line string) bool { return trimRight(line) == "" }
