package types

// Storage holds one record of each variant so a caller can parse many
// sections without allocating a record per section.
//
// Each New* method clears the corresponding slot and returns a pointer into
// it, so any record previously handed out for that variant is overwritten.
// A caller using Storage must not retain a record past the next parse.
//
// A nil *Storage is valid and allocates a fresh record on every call.
type Storage struct {
	bundle  Bundle
	volume  Volume
	handler Handler
	unknown Unknown
}

// NewBundle returns a cleared bundle with the given id.
func (s *Storage) NewBundle(id uint32) *Bundle {
	if s == nil {
		return &Bundle{ID: id}
	}
	s.bundle = Bundle{ID: id}
	return &s.bundle
}

// NewVolume returns a cleared volume with the given id.
func (s *Storage) NewVolume(id uint32) *Volume {
	if s == nil {
		return &Volume{ID: id}
	}
	s.volume = Volume{ID: id}
	return &s.volume
}

// NewHandler returns a cleared handler with the given id.
func (s *Storage) NewHandler(id uint32) *Handler {
	if s == nil {
		return &Handler{ID: id}
	}
	s.handler = Handler{ID: id}
	return &s.handler
}

// NewUnknown returns a cleared placeholder record.
func (s *Storage) NewUnknown(id uint32, header string) *Unknown {
	if s == nil {
		return &Unknown{ID: id, Header: header}
	}
	s.unknown = Unknown{ID: id, Header: header}
	return &s.unknown
}

// Reset drops every field held by the storage.
func (s *Storage) Reset() {
	if s == nil {
		return
	}
	*s = Storage{}
}
