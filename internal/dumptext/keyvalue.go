package dumptext

import (
	"fmt"
	"strings"

	"github.com/joshuapare/lsregkit/pkg/types"
)

// KeyValue is one "key: value" line of a section.
type KeyValue struct {
	Key   string
	Value string
}

// SplitKeyValue splits a raw line on its first ':'. The key is left-trimmed;
// the value is left-trimmed and, when anything remains, loses one trailing
// line terminator.
func SplitKeyValue(line string) (KeyValue, error) {
	sep := strings.IndexByte(line, KeyValueSeparator)
	if sep < 0 {
		return KeyValue{}, fmt.Errorf("%w in %q", types.ErrNoSeparator, stripTerminator(line))
	}
	value := trimLeft(line[sep+1:])
	if value != "" {
		value = stripTerminator(value)
	}
	return KeyValue{
		Key:   trimLeft(line[:sep]),
		Value: value,
	}, nil
}
