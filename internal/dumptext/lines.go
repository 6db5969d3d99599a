package dumptext

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
)

// LineSource yields one raw line at a time, terminator included. A read
// error is logged and treated as end of stream; Err reports it afterwards.
//
// A single line can be pushed back with Unread so that a sub-parser which
// reads one line too far can hand it back to the section loop.
type LineSource struct {
	r       *bufio.Reader
	log     *slog.Logger
	back    string
	hasBack bool
	lineNo  int
	done    bool
	err     error
}

// NewLineSource wraps r. A nil logger discards read error reports.
func NewLineSource(r io.Reader, log *slog.Logger) *LineSource {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LineSource{
		r:   bufio.NewReaderSize(r, ReaderBufferSize),
		log: log,
	}
}

// ReadLine returns the next line and true, or "" and false at end of stream.
func (s *LineSource) ReadLine() (string, bool) {
	if s.hasBack {
		s.hasBack = false
		line := s.back
		s.back = ""
		return line, true
	}
	if s.done {
		return "", false
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
			s.log.Error("error while reading dump", "line", s.lineNo+1, "error", err)
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	s.lineNo++
	return line, true
}

// Unread pushes line back so the next ReadLine returns it. Only one line
// can be held; a second Unread replaces the first.
func (s *LineSource) Unread(line string) {
	s.back = line
	s.hasBack = true
}

// Line returns the number of lines read from the underlying stream.
func (s *LineSource) Line() int { return s.lineNo }

// Err returns the read error that ended the stream, if any. A clean end of
// stream reports nil.
func (s *LineSource) Err() error { return s.err }
