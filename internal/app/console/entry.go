package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
)

// Level represents one of the five log severities
type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
	LevelInfo  Level = "INFO"
	LevelDebug Level = "DEBUG"
	LevelTrace Level = "TRACE"
)

// Levels lists all severities in display order
var Levels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// ParseLevel maps a raw level string to a known severity
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "TRACE":
		return LevelTrace, nil
	default:
		return "", errors.ErrUnknownLevel
	}
}

// String returns the canonical upper-case form
func (l Level) String() string {
	return string(l)
}

// Field is a single key/value pair attached to an entry
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered list of key/value pairs; insertion order is preserved
type Fields []Field

// Get returns the value for a key and whether it is present
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}

	return "", false
}

// MarshalJSON renders the fields as a JSON object in insertion order
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Entry represents a single ingested log record, immutable once created
type Entry struct {
	ID        uint64
	Timestamp int64 // epoch milliseconds
	Level     Level
	Target    string
	Message   string
	Fields    Fields
}

// Time returns the entry timestamp as a UTC time value
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}
