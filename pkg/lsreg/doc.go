/*
Package lsreg reads the Launch Services registry dump printed by
"lsregister -dump" and yields one typed record per section.

# Quick Start

Print every registered application bundle:

	err := lsreg.Iterate(ctx, nil, func(rec types.Record) error {
	    if b, ok := rec.(*types.Bundle); ok {
	        fmt.Println(types.StringValue(b.Path))
	    }
	    return nil
	})

# Sources

Iterate locates lsregister for the running OS release, starts it and reads
its output. IterateFile, IterateReader, Records and Collect parse a dump that
was saved earlier, for example with:

	lsregister -dump > dump.txt

# Stopping Early

A callback that returns ErrStopIteration ends the iteration and the call
returns nil. Any other error from the callback is returned as is.

	var first *types.Bundle
	lsreg.IterateReader(f, nil, func(rec types.Record) error {
	    if b, ok := rec.(*types.Bundle); ok {
	        first = b
	        return lsreg.ErrStopIteration
	    }
	    return nil
	})

# Malformed Input

Problems inside a section never end the iteration. Bad hex or date values
leave the field unset, lines without a key are skipped, and sections with an
unsupported header are yielded as *types.Unknown. Each case is logged through
Options.Logger. A read error on the source ends the iteration like a clean
end of stream.

# Record Storage

By default each record is freshly allocated and owned by the callback.
IterateInto lets the caller hand out storage that is reused across calls; a
record obtained that way is only valid until the callback returns.
*/
package lsreg
