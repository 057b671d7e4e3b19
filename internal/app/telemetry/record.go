package telemetry

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Field is one key/value pair from a raw record, in wire order
type Field struct {
	Key   string
	Value string
}

// Record is a raw log record as received from the emitter, before the
// ingestion adapter validates it
type Record struct {
	Timestamp    int64 // epoch milliseconds
	HasTimestamp bool
	Level        string
	Target       string
	Message      string
	HasMessage   bool
	Fields       []Field
}

// wireRecord mirrors the emitter's JSON shape; raw messages keep presence
// information and field ordering available
type wireRecord struct {
	Timestamp json.RawMessage `json:"timestamp"`
	Level     string          `json:"level"`
	Target    string          `json:"target"`
	Message   json.RawMessage `json:"message"`
	Fields    json.RawMessage `json:"fields"`
}

// ParseRecord decodes one NDJSON line into a Record. Field insertion order
// is preserved. Presence of timestamp and message is tracked so the
// ingestion adapter can reject incomplete records.
func ParseRecord(line []byte) (Record, error) {
	var wire wireRecord
	if err := json.Unmarshal(line, &wire); err != nil {
		return Record{}, err
	}

	record := Record{
		Level:  wire.Level,
		Target: wire.Target,
	}

	if wire.Timestamp != nil {
		ts, ok := parseTimestamp(wire.Timestamp)
		record.Timestamp = ts
		record.HasTimestamp = ok
	}

	if wire.Message != nil {
		var message string
		if err := json.Unmarshal(wire.Message, &message); err != nil {
			return Record{}, err
		}

		record.Message = message
		record.HasMessage = true
	}

	if wire.Fields != nil {
		fields, err := parseFields(wire.Fields)
		if err != nil {
			return Record{}, err
		}

		record.Fields = fields
	}

	return record, nil
}

// parseTimestamp accepts epoch milliseconds or an RFC3339 string
func parseTimestamp(raw json.RawMessage) (int64, bool) {
	text := string(bytes.TrimSpace(raw))

	if millis, err := strconv.ParseInt(text, 10, 64); err == nil {
		return millis, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, false
	}

	return t.UnixMilli(), true
}

// parseFields walks the fields object token by token so that wire order
// survives; values are coerced to their string form
func parseFields(raw json.RawMessage) ([]Field, error) {
	trimmed := bytes.TrimSpace(raw)
	if string(trimmed) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil { // opening brace
		return nil, err
	}

	var fields []Field

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, _ := keyToken.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		fields = append(fields, Field{Key: key, Value: stringifyValue(value)})
	}

	return fields, nil
}

// stringifyValue renders a JSON value the way the console displays it:
// strings unquoted, everything else as its literal JSON text
func stringifyValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}

	return string(trimmed)
}
