package core

import (
	"encoding/json"
	"io"
)

// MarshalPluginsUsed pretty-prints cfg in the baseline "plugins_used" shape.
func MarshalPluginsUsed(w io.Writer, cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg.PluginsUsed())
}

// UnmarshalPluginsUsed decodes a "plugins_used" list, useful for ingestion tests.
func UnmarshalPluginsUsed(r io.Reader) ([]map[string]any, error) {
	var used []map[string]any
	if err := json.NewDecoder(r).Decode(&used); err != nil {
		return nil, err
	}
	return used, nil
}
