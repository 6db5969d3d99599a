package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindBundle, "bundle"},
		{KindVolume, "volume"},
		{KindHandler, "handler"},
		{KindUnknown, "unknown"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestRecord_Variants(t *testing.T) {
	records := []Record{
		&Bundle{ID: 1},
		&Volume{ID: 2},
		&Handler{ID: 3},
		&Unknown{ID: 4},
	}
	kinds := []Kind{KindBundle, KindVolume, KindHandler, KindUnknown}
	for i, rec := range records {
		require.Equal(t, kinds[i], rec.Kind())
		require.Equal(t, uint32(i+1), rec.UID())
	}
}

func TestBundle_HasLibraryItems(t *testing.T) {
	b := &Bundle{}
	require.False(t, b.HasLibraryItems())

	b.LibraryItems = []string{}
	require.True(t, b.HasLibraryItems(), "empty but present list must be distinguishable from absent")
}

func TestIdentifier_String(t *testing.T) {
	id := Identifier{Name: "com.apple.Safari", Hash: 0x8000702f}
	require.Equal(t, "com.apple.Safari (0x8000702f)", id.String())
}

func TestVolumeFlags_String(t *testing.T) {
	require.Equal(t, "0", VolumeFlags(0).String())
	require.Equal(t, "local", VolumeLocal.String())
	require.Equal(t, "local|disk-image|system-device", (VolumeLocal | VolumeDiskImage | VolumeSystemDevice).String())
	require.Equal(t, "disk-image|0x10", (VolumeDiskImage | 0x10).String())
}

func TestStringHelpers(t *testing.T) {
	require.Equal(t, "", StringValue(nil))
	p := String("")
	require.NotNil(t, p)
	require.Equal(t, "", StringValue(p))
	require.Equal(t, "x", StringValue(String("x")))
}

func TestError_WrapAndIs(t *testing.T) {
	err := fmt.Errorf("parse %q: %w", "zz", ErrHexInvalidChar)
	require.True(t, errors.Is(err, ErrHexInvalidChar))
	require.False(t, errors.Is(err, ErrHexTooWide))

	var typed *Error
	require.True(t, errors.As(err, &typed))
	require.Equal(t, ErrKindField, typed.Kind)
	require.Equal(t, "field", typed.Kind.String())

	wrapped := &Error{Kind: ErrKindStream, Msg: "read dump", Err: errors.New("broken pipe")}
	require.Equal(t, "read dump: broken pipe", wrapped.Error())

	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestStorage_ReusesSlots(t *testing.T) {
	var s Storage
	b1 := s.NewBundle(1)
	b1.Path = String("/Applications/Safari.app")
	b1.LibraryItems = []string{"a"}

	b2 := s.NewBundle(2)
	require.Same(t, b1, b2)
	require.Nil(t, b2.Path, "reused slot must be cleared")
	require.Nil(t, b2.LibraryItems)
	require.Equal(t, uint32(2), b2.ID)

	v := s.NewVolume(3)
	require.Equal(t, uint32(3), v.ID)
	h := s.NewHandler(4)
	require.Equal(t, uint32(4), h.ID)
	u := s.NewUnknown(5, "claim id: 5")
	require.Equal(t, "claim id: 5", u.Header)

	s.Reset()
	require.Nil(t, b2.LibraryItems)
	require.Equal(t, uint32(0), b2.ID)
}

func TestStorage_NilAllocatesFresh(t *testing.T) {
	var s *Storage
	b1 := s.NewBundle(1)
	b2 := s.NewBundle(2)
	require.NotSame(t, b1, b2)
	require.Equal(t, uint32(1), b1.ID)
	require.NotNil(t, s.NewVolume(1))
	require.NotNil(t, s.NewHandler(1))
	require.NotNil(t, s.NewUnknown(1, ""))
	s.Reset()
}
