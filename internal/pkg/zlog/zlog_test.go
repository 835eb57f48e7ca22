package zlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithOutput(&buf))

	helper := log.NewHelper(log.With(logger, "service", "cinetalk"))
	helper.Errorw(log.DefaultMessageKey, "save failed", "err", errors.New("boom"), "user_id", 7)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "save failed", entry["msg"])
	assert.Equal(t, "cinetalk", entry["service"])
	assert.Equal(t, "boom", entry["err"])
	assert.EqualValues(t, 7, entry["user_id"])
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithOutput(&buf), WithLevel("warn"))

	require.NoError(t, logger.Log(log.LevelInfo, "msg", "dropped"))
	assert.Zero(t, buf.Len())

	require.NoError(t, logger.Log(log.LevelWarn, "msg", "kept"))
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerUnpairedKeyvals(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithOutput(&buf))

	require.NoError(t, logger.Log(log.LevelInfo, "lonely"))
	assert.Contains(t, buf.String(), "KEYVALS UNPAIRED")
}
