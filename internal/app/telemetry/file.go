package telemetry

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// FileSource tails a log file: it replays the trailing lines that already
// exist, then follows appends via filesystem notifications. Truncation is
// handled by rereading from the start.
type FileSource struct {
	path    string
	stream  Stream
	log     logger.Logger
	offset  int64
	pending []byte // trailing partial line carried between reads
}

// NewFileSource creates a source tailing the file at path
func NewFileSource(path string, stream Stream, log logger.Logger) (*FileSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.ErrInputNotFound
	}

	return &FileSource{
		path:   path,
		stream: stream,
		log:    log,
	}, nil
}

// Run replays the existing tail and follows the file until ctx ends
func (s *FileSource) Run(ctx context.Context) error {
	if err := s.replayTail(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Write) {
				s.readNew()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.log.Error().Err(err).Msg("file watch failed")
		}
	}
}

// replayTail publishes the last TailLines lines of the file and records
// the follow offset
func (s *FileSource) replayTail() error {
	file, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	ring := make([][]byte, config.TailLines)
	count := 0
	idx := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())

		ring[idx] = line
		idx = (idx + 1) % config.TailLines

		if count < config.TailLines {
			count++
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	start := 0
	if count == config.TailLines {
		start = idx
	}

	for i := 0; i < count; i++ {
		line := ring[(start+i)%config.TailLines]
		if len(line) > 0 {
			s.stream.Publish(line)
		}
	}

	info, err := file.Stat()
	if err != nil {
		return err
	}

	s.offset = info.Size()

	return nil
}

// readNew publishes complete lines appended since the last read
func (s *FileSource) readNew() {
	file, err := os.Open(s.path)
	if err != nil {
		s.log.Error().Err(err).Msg("reopen tailed file failed")

		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return
	}

	// Truncated: start over
	if info.Size() < s.offset {
		s.offset = 0
		s.pending = nil
	}

	if _, err := file.Seek(s.offset, io.SeekStart); err != nil {
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.log.Error().Err(err).Msg("read tailed file failed")

		return
	}

	s.offset += int64(len(data))

	buf := append(s.pending, data...)
	lines := bytes.Split(buf, []byte("\n"))

	// Last element is a partial line (or empty when buf ends in \n).
	// Published lines are copied because subscribers consume asynchronously.
	s.pending = append([]byte(nil), lines[len(lines)-1]...)

	for _, line := range lines[:len(lines)-1] {
		if len(line) > 0 {
			copied := make([]byte, len(line))
			copy(copied, line)

			s.stream.Publish(copied)
		}
	}
}
