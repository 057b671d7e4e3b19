package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
	"github.com/GofMan5/Antigravity-Manager/internal/config"
	"github.com/GofMan5/Antigravity-Manager/internal/config/logger"
)

// timestampFormat is the ISO-8601 form used in copied and exported output
const timestampFormat = "2006-01-02T15:04:05.000Z"

// Clipboard is the injected clipboard-write capability
type Clipboard interface {
	Write(text string) error
}

// FileWriter is the injected file-write capability
type FileWriter interface {
	Write(name string, data []byte) error
}

// Formatter serializes a visible entry set to clipboard text or a
// line-delimited JSON file. It operates only on the slice it is given;
// callers pass the filtered view, never the full buffer.
type Formatter struct {
	clipboard Clipboard
	files     FileWriter
	log       logger.Logger
	now       func() time.Time
}

// NewFormatter creates a formatter with the given capabilities
func NewFormatter(clipboard Clipboard, files FileWriter, log logger.Logger) *Formatter {
	return &Formatter{
		clipboard: clipboard,
		files:     files,
		log:       log,
		now:       time.Now,
	}
}

// CopyAsText renders the entries one per line and hands the result to the
// clipboard capability
func (f *Formatter) CopyAsText(entries []Entry) error {
	var sb strings.Builder

	for i, entry := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(FormatLine(entry))
	}

	if err := f.clipboard.Write(sb.String()); err != nil {
		f.log.Error().Err(err).Msg("copy to clipboard failed")

		return fmt.Errorf("%w: %w", errors.ErrClipboardWrite, err)
	}

	f.log.Debug().Msgf("copied %d entries to clipboard", len(entries))

	return nil
}

// ExportAsLines serializes the entries as newline-delimited JSON and hands
// the bytes to the file-write capability. It returns the destination name.
func (f *Formatter) ExportAsLines(entries []Entry) (string, error) {
	var buf bytes.Buffer

	for _, entry := range entries {
		line, err := json.Marshal(exportRecord{
			ID:        entry.ID,
			Timestamp: entry.Time().Format(timestampFormat),
			Level:     entry.Level.String(),
			Target:    entry.Target,
			Message:   entry.Message,
			Fields:    entry.Fields,
		})
		if err != nil {
			return "", fmt.Errorf("%w: %w", errors.ErrExportWrite, err)
		}

		buf.Write(line)
		buf.WriteByte('\n')
	}

	name := f.exportName()

	if err := f.files.Write(name, buf.Bytes()); err != nil {
		f.log.Error().Err(err).Msgf("export to %s failed", name)

		return "", fmt.Errorf("%w: %w", errors.ErrExportWrite, err)
	}

	f.log.Debug().Msgf("exported %d entries to %s", len(entries), name)

	return name, nil
}

// FormatLine renders a single entry for clipboard output:
// [timestamp] [LEVEL] [target] message key=value ...
func FormatLine(entry Entry) string {
	var sb strings.Builder

	sb.WriteString("[")
	sb.WriteString(entry.Time().Format(timestampFormat))
	sb.WriteString("] [")
	sb.WriteString(entry.Level.String())
	sb.WriteString("] [")
	sb.WriteString(entry.Target)
	sb.WriteString("] ")
	sb.WriteString(entry.Message)

	for _, field := range entry.Fields {
		sb.WriteString(" ")
		sb.WriteString(field.Key)
		sb.WriteString("=")
		sb.WriteString(field.Value)
	}

	return strings.TrimRight(sb.String(), " \t")
}

// exportName builds the dated destination name for an export
func (f *Formatter) exportName() string {
	return fmt.Sprintf("%s-logs-%s.jsonl", config.AppName, f.now().UTC().Format("2006-01-02"))
}

// exportRecord is the shape of one exported NDJSON line
type exportRecord struct {
	ID        uint64 `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Target    string `json:"target"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields"`
}
