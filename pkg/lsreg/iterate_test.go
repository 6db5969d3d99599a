package lsreg

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lsregkit/pkg/types"
)

var sampleUIDs = []uint32{1588, 2044, 12, 3001, 13, 77}

func samplePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", "dumps", "sample.txt")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test dump not found: %s", path)
	}
	return path
}

func openSample(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open(samplePath(t))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

var utc = &Options{Location: time.UTC}

func TestIterateReader_VisitsEveryRecordInOrder(t *testing.T) {
	var uids []uint32
	err := IterateReader(openSample(t), utc, func(rec types.Record) error {
		uids = append(uids, rec.UID())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, sampleUIDs, uids)
}

func TestIterateFile(t *testing.T) {
	var uids []uint32
	err := IterateFile(samplePath(t), utc, func(rec types.Record) error {
		uids = append(uids, rec.UID())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, sampleUIDs, uids)

	err = IterateFile(filepath.Join(t.TempDir(), "absent.txt"), nil, func(types.Record) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIterateReader_StopAfterFirst(t *testing.T) {
	calls := 0
	err := IterateReader(openSample(t), utc, func(rec types.Record) error {
		calls++
		return ErrStopIteration
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestIterateReader_StopWrapped(t *testing.T) {
	calls := 0
	err := IterateReader(openSample(t), utc, func(rec types.Record) error {
		calls++
		if calls == 3 {
			return errors.Join(errors.New("enough"), ErrStopIteration)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestIterateReader_CallbackError(t *testing.T) {
	boom := errors.New("consumer failed")
	calls := 0
	err := IterateReader(openSample(t), utc, func(rec types.Record) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestIterateReader_NilOptions(t *testing.T) {
	calls := 0
	err := IterateReader(openSample(t), nil, func(types.Record) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(sampleUIDs), calls)
}

func TestIterateReader_BadEncoding(t *testing.T) {
	err := IterateReader(strings.NewReader(""), &Options{Encoding: "klingon"}, func(types.Record) error {
		t.Fatal("callback must not run")
		return nil
	})
	require.ErrorIs(t, err, types.ErrUnsupportedEncoding)
}

func TestIterateInto_ReusesStorage(t *testing.T) {
	var st types.Storage
	factoryCalls := 0
	factory := func() *types.Storage {
		factoryCalls++
		return &st
	}

	var bundles []*types.Bundle
	var firstPath string
	err := IterateInto(openSample(t), utc, factory, func(rec types.Record) error {
		if b, ok := rec.(*types.Bundle); ok {
			if len(bundles) == 0 {
				firstPath = types.StringValue(b.Path)
			}
			bundles = append(bundles, b)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(sampleUIDs)+1, factoryCalls, "storage is requested once more before end of stream is seen")
	require.Equal(t, "/Applications/Safari.app", firstPath)
	require.Len(t, bundles, 2)
	require.Same(t, bundles[0], bundles[1])
	require.Equal(t, uint32(2044), bundles[0].ID, "storage holds the last bundle")
}

func TestIterateInto_NilFactory(t *testing.T) {
	var bundles []*types.Bundle
	err := IterateInto(openSample(t), utc, nil, func(rec types.Record) error {
		if b, ok := rec.(*types.Bundle); ok {
			bundles = append(bundles, b)
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	require.NotSame(t, bundles[0], bundles[1])
}

func TestRecords(t *testing.T) {
	var uids []uint32
	for rec, err := range Records(openSample(t), utc) {
		require.NoError(t, err)
		uids = append(uids, rec.UID())
		if len(uids) == 2 {
			break
		}
	}
	require.Equal(t, sampleUIDs[:2], uids)
}

func TestRecords_ConfigError(t *testing.T) {
	n := 0
	for rec, err := range Records(strings.NewReader(""), &Options{Encoding: "nope"}) {
		n++
		require.Nil(t, rec)
		require.ErrorIs(t, err, types.ErrUnsupportedEncoding)
	}
	require.Equal(t, 1, n)
}

func TestCollect(t *testing.T) {
	records, err := Collect(openSample(t), utc)
	require.NoError(t, err)
	require.Len(t, records, len(sampleUIDs))
	require.Equal(t, types.KindUnknown, records[3].Kind())
	require.Equal(t, types.KindHandler, records[5].Kind())
}

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestIterate_Command(t *testing.T) {
	requireCommand(t, "cat")

	opts := &Options{Command: []string{"cat", samplePath(t)}, Location: time.UTC}
	var uids []uint32
	err := Iterate(context.Background(), opts, func(rec types.Record) error {
		uids = append(uids, rec.UID())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, sampleUIDs, uids)
}

func TestIterate_CommandFails(t *testing.T) {
	requireCommand(t, "sh")

	opts := &Options{Command: []string{"sh", "-c", "cat \"$0\"; exit 2", samplePath(t)}}
	calls := 0
	err := Iterate(context.Background(), opts, func(types.Record) error {
		calls++
		return nil
	})
	require.Error(t, err)
	require.Equal(t, len(sampleUIDs), calls, "records before the failure are still delivered")

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrKindStream, typed.Kind)
}

func TestIterate_StopKeepsCommandQuiet(t *testing.T) {
	requireCommand(t, "sh")

	opts := &Options{Command: []string{"sh", "-c", "cat \"$0\"; exit 2", samplePath(t)}}
	err := Iterate(context.Background(), opts, func(types.Record) error {
		return ErrStopIteration
	})
	require.NoError(t, err)
}

func TestIterate_CancelledContext(t *testing.T) {
	requireCommand(t, "cat")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Iterate(ctx, &Options{Command: []string{"cat", samplePath(t)}}, func(types.Record) error {
		t.Fatal("callback must not run")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
