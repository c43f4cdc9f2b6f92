package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKeepsReservedKeys(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Warn("model.unconfigured", map[string]any{
		"msg":   "overridden?",
		"level": "debug",
		"err":   errors.New("missing key"),
	})

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &payload))
	assert.Equal(t, "model.unconfigured", payload["msg"])
	assert.Equal(t, "warn", payload["level"])
	assert.Equal(t, "missing key", payload["err"])
	assert.NotEmpty(t, payload["ts"])
}
