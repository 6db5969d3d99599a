// Package types defines the record model produced by parsing a Launch
// Services registry dump ("lsregister -dump").
//
// A dump is a sequence of sections. Each section becomes one Record, which is
// one of *Bundle, *Volume, *Handler or *Unknown. Callers switch on the
// concrete type (or on Record.Kind) to reach the typed fields:
//
//	switch rec := rec.(type) {
//	case *types.Bundle:
//	    fmt.Println(rec.Identifier.Name, types.StringValue(rec.Path))
//	case *types.Volume:
//	    fmt.Println(types.StringValue(rec.Path), rec.IsMounted)
//	}
//
// Optional string fields are pointers: nil means the key never appeared in the
// section, which is distinct from a key that appeared with an empty value.
//
// This package has no dependencies beyond the standard library.
package types
