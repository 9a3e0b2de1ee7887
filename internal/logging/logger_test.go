package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"fittracker/fitness-app/internal/config"
	"fittracker/fitness-app/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warning"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("nonsense"))
}

func TestSetup_File(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	base := filepath.Join(t.TempDir(), "app")
	logging.Setup(config.LogConfig{Level: "info", JSON: true, File: base})
	logrus.Info("hello")

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
