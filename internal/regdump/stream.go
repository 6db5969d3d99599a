package regdump

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/joshuapare/lsregkit/internal/logger"
	"github.com/joshuapare/lsregkit/pkg/types"
)

// ErrNoCommand is returned by Open when argv is empty.
var ErrNoCommand = &types.Error{Kind: types.ErrKindConfig, Msg: "no dump command configured"}

// Stream is the standard output of a running dump command.
type Stream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr bytes.Buffer
	eof    bool
	closed bool
}

// Open starts argv and returns its standard output. Close must be called to
// reap the process. Cancelling ctx kills it.
func Open(ctx context.Context, argv []string) (*Stream, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	s := &Stream{cmd: exec.CommandContext(ctx, argv[0], argv[1:]...)}
	s.cmd.Stderr = &s.stderr

	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindStream, Msg: "create stdout pipe", Err: err}
	}
	s.stdout = stdout

	logger.Debug("starting dump command", "argv", strings.Join(argv, " "))
	if err := s.cmd.Start(); err != nil {
		return nil, &types.Error{Kind: types.ErrKindStream, Msg: "start " + argv[0], Err: err}
	}
	return s, nil
}

func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.stdout.Read(p)
	if errors.Is(err, io.EOF) {
		s.eof = true
	}
	return n, err
}

// Close releases the pipe and waits for the process. An unsuccessful exit is
// reported only when the output was read to the end; a reader that stops
// early leaves the process to die on a broken pipe.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.stdout.Close()
	err := s.cmd.Wait()
	if err == nil || !s.eof {
		return nil
	}

	logger.Error("dump command failed", "error", err, "stderr", strings.TrimSpace(s.stderr.String()))
	msg := "dump command failed"
	if detail := strings.TrimSpace(s.stderr.String()); detail != "" {
		msg += ": " + firstLine(detail)
	}
	return &types.Error{Kind: types.ErrKindStream, Msg: msg, Err: err}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
