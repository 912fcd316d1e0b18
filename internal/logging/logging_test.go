package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Info("shown", "row", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, float64(3), entry["row"])
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("flood fill")

	assert.Contains(t, buf.String(), "flood fill")
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()

	require.NoError(t, Setup(log, &buf, false, ""))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	require.NoError(t, Setup(log, &buf, true, ""))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")
	log := logrus.New()

	require.NoError(t, Setup(log, &bytes.Buffer{}, false, path))
	log.WithField("cell", "0:0").Info("mine revealed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mine revealed")
}
