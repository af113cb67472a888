package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

func consolidated(t *testing.T, overrides plugins.RawArguments) plugins.Config {
	t.Helper()
	raw := plugins.RawArguments{"hex_limit": nil, "base64_limit": nil}
	for _, d := range plugins.All() {
		raw[plugins.ArgName(d.DisableFlag)] = false
	}
	for k, v := range overrides {
		raw[k] = v
	}
	cfg, ok := plugins.Consolidate(raw)
	require.True(t, ok)
	return cfg
}

func TestPrintPlugins(t *testing.T) {
	cfg := consolidated(t, plugins.RawArguments{"base64_limit": 5.5, "no_slack_scan": true})

	var buf bytes.Buffer
	require.NoError(t, PrintPlugins(&buf, cfg))
	out := buf.String()

	assert.Contains(t, out, "HexHighEntropyString")
	assert.Contains(t, out, "hex_limit")
	assert.Contains(t, out, "5.5")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "explicit")
	assert.Contains(t, out, "Disabled: 1")
	assert.True(t, strings.HasSuffix(out, "  SlackDetector\n"))
}

func TestWriteJSON(t *testing.T) {
	cfg := consolidated(t, plugins.RawArguments{"no_base64_string_scan": true})
	s := NewSettings("scan", cfg, plugins.RawArguments{"path": "."})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, s))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "scan", doc["action"])
	assert.Equal(t, []any{"Base64HighEntropyString"}, doc["disabled_plugins"])
	assert.Equal(t, map[string]any{"hex_limit": true}, doc["is_using_default_value"])
	used := doc["plugins_used"].([]any)
	require.Len(t, used, 6)
	assert.Equal(t, map[string]any{"name": "HexHighEntropyString", "hex_limit": 3.0}, used[0])
	assert.Len(t, doc["settings_fingerprint"], 16)
	assert.Equal(t, map[string]any{"path": "."}, doc["options"])
}

func TestNewSettings_NoPluginGroup(t *testing.T) {
	s := NewSettings("audit", plugins.Config{}, plugins.RawArguments{"diff": false})
	assert.Empty(t, s.PluginsUsed)
	assert.NotNil(t, s.UsingDefaultValue)
	assert.Empty(t, s.DisabledPlugins)
	assert.NotNil(t, s.DisabledPlugins)
}
