package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseRecord(t *testing.T) {
	line := []byte(`{"timestamp":1700000000000,"level":"error","target":"proxy::upstream","message":"Connection Reset","fields":{"status":"502","account":"primary"}}`)

	record, err := ParseRecord(line)
	require.NoError(t, err)

	assert.True(t, record.HasTimestamp)
	assert.Equal(t, int64(1700000000000), record.Timestamp)
	assert.Equal(t, "error", record.Level)
	assert.Equal(t, "proxy::upstream", record.Target)
	assert.True(t, record.HasMessage)
	assert.Equal(t, "Connection Reset", record.Message)

	require.Len(t, record.Fields, 2)
	assert.Equal(t, Field{Key: "status", Value: "502"}, record.Fields[0])
	assert.Equal(t, Field{Key: "account", Value: "primary"}, record.Fields[1])
}

func Test_ParseRecord_RFC3339Timestamp(t *testing.T) {
	line := []byte(`{"timestamp":"2023-11-14T22:13:20Z","level":"info","message":"hi"}`)

	record, err := ParseRecord(line)
	require.NoError(t, err)
	assert.True(t, record.HasTimestamp)
	assert.Equal(t, int64(1700000000000), record.Timestamp)
}

func Test_ParseRecord_MissingParts(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no timestamp", `{"level":"info","message":"hi"}`},
		{"no message", `{"timestamp":1,"level":"info"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseRecord([]byte(tt.line))
			require.NoError(t, err)

			// Presence flags drive rejection downstream
			if tt.name == "no timestamp" {
				assert.False(t, record.HasTimestamp)
			} else {
				assert.False(t, record.HasMessage)
			}
		})
	}
}

func Test_ParseRecord_UnparseableTimestamp(t *testing.T) {
	record, err := ParseRecord([]byte(`{"timestamp":"yesterday","level":"info","message":"hi"}`))
	require.NoError(t, err)
	assert.False(t, record.HasTimestamp)
}

func Test_ParseRecord_FieldOrderPreserved(t *testing.T) {
	line := []byte(`{"timestamp":1,"level":"info","message":"m","fields":{"z":"1","a":"2","m":"3"}}`)

	record, err := ParseRecord(line)
	require.NoError(t, err)

	keys := make([]string, 0, len(record.Fields))
	for _, field := range record.Fields {
		keys = append(keys, field.Key)
	}

	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func Test_ParseRecord_NonStringFieldValues(t *testing.T) {
	line := []byte(`{"timestamp":1,"level":"info","message":"m","fields":{"count":42,"ok":true,"ratio":0.5}}`)

	record, err := ParseRecord(line)
	require.NoError(t, err)

	require.Len(t, record.Fields, 3)
	assert.Equal(t, "42", record.Fields[0].Value)
	assert.Equal(t, "true", record.Fields[1].Value)
	assert.Equal(t, "0.5", record.Fields[2].Value)
}

func Test_ParseRecord_NullFields(t *testing.T) {
	record, err := ParseRecord([]byte(`{"timestamp":1,"level":"info","message":"m","fields":null}`))
	require.NoError(t, err)
	assert.Empty(t, record.Fields)
}

func Test_ParseRecord_InvalidJSON(t *testing.T) {
	for _, line := range []string{"not json", `{"level":`, ""} {
		_, err := ParseRecord([]byte(line))
		assert.Error(t, err, line)
	}
}

func Test_ParseRecord_EmptyMessagePresent(t *testing.T) {
	record, err := ParseRecord([]byte(`{"timestamp":1,"level":"info","message":""}`))
	require.NoError(t, err)
	assert.True(t, record.HasMessage)
	assert.Equal(t, "", record.Message)
}
