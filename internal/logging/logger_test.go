package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, GetLevel("debug"))
	assert.Equal(t, log.InfoLevel, GetLevel(" INFO "))
	assert.Equal(t, log.ErrorLevel, GetLevel("error"))
	assert.Equal(t, log.WarnLevel, GetLevel(""))
	assert.Equal(t, log.WarnLevel, GetLevel("nonsense"))
}

func TestCombinedWriter(t *testing.T) {
	sb1 := &strings.Builder{}
	sb2 := &strings.Builder{}
	cw := NewCombinedWriter(sb1, &faultyWriter{}, sb2, &faultyWriter{})

	msg := "a message"
	n, err := cw.Write([]byte(msg))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, 2*len(msg), n)
	assert.Equal(t, msg, sb1.String())
	assert.Equal(t, msg, sb2.String())
}

func TestSetupWritesToFileAndStderr(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "fittrack")
	closeLog := Setup(SetupParams{LogFileName: path, LogToStderr: true, LogLevel: "info", Stderr: &stderr})

	log.Info("snapshot saved")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "snapshot saved")
	assert.Contains(t, stderr.String(), "snapshot saved")
}

type faultyWriter struct{}

func (fw *faultyWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
