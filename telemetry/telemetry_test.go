package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbacks_NilHooksAreNeverCalled(t *testing.T) {
	var c Callbacks
	assert.NotPanics(t, func() {
		c.Logf(LevelInfo, "ignored")
		c.Progressf(50, "phase")
	})
}

func TestCallbacks_SetHooksAreCalled(t *testing.T) {
	var gotLevel Level
	var gotMsg string
	var gotFields []Field
	c := Callbacks{
		Log: func(level Level, msg string, fields ...Field) {
			gotLevel = level
			gotMsg = msg
			gotFields = fields
		},
	}
	c.Logf(LevelDebug, "hello", Field{Key: "k", Value: 1})
	assert.Equal(t, LevelDebug, gotLevel)
	assert.Equal(t, "hello", gotMsg)
	require.Len(t, gotFields, 1)
	assert.Equal(t, "k", gotFields[0].Key)
}

func TestNewZerologSink_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sink := NewZerologSink(logger)

	sink(LevelInfo, "cover matrix built", Field{Key: "rows", Value: 42})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "cover matrix built", decoded["message"])
	assert.Equal(t, "info", decoded["level"])
	assert.EqualValues(t, 42, decoded["rows"])
}
