package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "errLog.log")

	events, err := NewEvents(path)
	require.NoError(t, err)

	events.Errorw("Too Many Requests: slow down", "method", "POST", "url", "/auth")
	require.NoError(t, events.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := string(data)
	require.True(t, strings.Contains(line, `"msg":"Too Many Requests: slow down"`), line)
	require.True(t, strings.Contains(line, `"method":"POST"`), line)
	require.True(t, strings.Contains(line, `"dateTime"`), line)
}
