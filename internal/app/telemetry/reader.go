package telemetry

import (
	"bufio"
	"context"
	"io"

	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// maxLineSize bounds a single telemetry line (1 MiB)
const maxLineSize = 1024 * 1024

// ReaderSource publishes NDJSON lines read from an io.Reader, stdin in
// production
type ReaderSource struct {
	reader io.Reader
	stream Stream
	log    logger.Logger
}

// NewReaderSource creates a source over the given reader
func NewReaderSource(reader io.Reader, stream Stream, log logger.Logger) *ReaderSource {
	return &ReaderSource{
		reader: reader,
		stream: stream,
		log:    log,
	}
}

// Run reads lines until the reader is exhausted or ctx is cancelled
func (s *ReaderSource) Run(ctx context.Context) {
	scanner := bufio.NewScanner(s.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		// Scanner reuses its buffer between calls
		copied := make([]byte, len(line))
		copy(copied, line)

		s.stream.Publish(copied)
	}

	if err := scanner.Err(); err != nil {
		s.log.Error().Err(err).Msg("telemetry input read failed")

		return
	}

	s.log.Debug().Msg("telemetry input exhausted")
}
