package lsreg

import (
	"io"
	"strings"

	"github.com/joshuapare/lsregkit/pkg/types"
)

// MatchIdentifierPrefix reports whether b's identifier name starts with
// prefix, ignoring case. A bundle without an identifier never matches.
func MatchIdentifierPrefix(b *types.Bundle, prefix string) bool {
	if b == nil || b.Identifier == nil {
		return false
	}
	name := b.Identifier.Name
	return len(prefix) <= len(name) && strings.EqualFold(name[:len(prefix)], prefix)
}

// FindBundles returns the bundles read from r whose identifier starts with
// prefix, in stream order.
func FindBundles(r io.Reader, opts *Options, prefix string) ([]*types.Bundle, error) {
	var found []*types.Bundle
	err := IterateReader(r, opts, func(rec types.Record) error {
		if b, ok := rec.(*types.Bundle); ok && MatchIdentifierPrefix(b, prefix) {
			found = append(found, b)
		}
		return nil
	})
	return found, err
}
