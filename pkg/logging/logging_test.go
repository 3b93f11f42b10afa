/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation,
log file creation, queue draining on shutdown, and the custom formatter's
prefix and field rendering.
*/

package logging_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-decipher/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidate tests configuration validation
func TestLoggerConfigValidate(t *testing.T) {
	valid := &logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: "./logs",
		MaxFiles:  10,
	}
	assert.NoError(t, valid.Validate())

	noDir := *valid
	noDir.OutputDir = ""
	assert.Error(t, noDir.Validate())

	badFormat := *valid
	badFormat.Format = "xml"
	assert.Error(t, badFormat.Validate())

	badLevel := *valid
	badLevel.Level = "loud"
	assert.Error(t, badLevel.Validate())
}

// TestNewLoggerCreatesLogFile tests timestamped file creation
func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  3,
	})
	require.NoError(t, err)
	defer logger.Close()

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-decipher_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

// TestCloseFlushesQueuedEntries tests that async entries survive shutdown
func TestCloseFlushesQueuedEntries(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  3,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		logger.Info(fmt.Sprintf("queued entry %d", i), nil)
	}
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-decipher_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Contains(t, string(data), fmt.Sprintf("queued entry %d", i))
	}
}

// TestDecipherFormatterPrefixes tests message tagging
func TestDecipherFormatterPrefixes(t *testing.T) {
	f := &logging.DecipherFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Now(),
		Level:   logrus.InfoLevel,
		Message: "Strategy completed",
		Data:    logrus.Fields{"strategy": "base58", "candidates": 4},
	}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[STRATEGY]")
	assert.Contains(t, string(out), "strategy=base58")
	assert.Contains(t, string(out), "candidates=4")

	entry.Message = "Strategy fault"
	entry.Level = logrus.ErrorLevel
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[FAULT]")
}
