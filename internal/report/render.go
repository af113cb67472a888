package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

// Settings is the hand-off document describing one invocation: which
// plugins run, with which parameters, and which of those were defaulted.
type Settings struct {
	Action            string           `json:"action,omitempty"`
	PluginsUsed       []map[string]any `json:"plugins_used"`
	UsingDefaultValue map[string]bool  `json:"is_using_default_value"`
	DisabledPlugins   []string         `json:"disabled_plugins"`
	Fingerprint       string           `json:"settings_fingerprint"`
	Options           map[string]any   `json:"options"`
}

// NewSettings assembles the hand-off document. options holds the raw values
// that are not plugin options.
func NewSettings(action string, cfg plugins.Config, options plugins.RawArguments) Settings {
	s := Settings{
		Action:            action,
		PluginsUsed:       cfg.PluginsUsed(),
		UsingDefaultValue: cfg.UsingDefaultValue,
		DisabledPlugins:   []string{},
		Fingerprint:       cfg.Fingerprint(),
		Options:           map[string]any(options),
	}
	// no `null` in JSON
	if s.UsingDefaultValue == nil {
		s.UsingDefaultValue = map[string]bool{}
	}
	if cfg.Plugins != nil {
		s.DisabledPlugins = append(s.DisabledPlugins, plugins.DisabledPlugins(cfg)...)
	}
	return s
}

// WriteJSON emits s as indented JSON.
func WriteJSON(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// PrintPlugins renders the active plugins as a table, one row per
// parameter, followed by the disabled plugins.
func PrintPlugins(w io.Writer, cfg plugins.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Plugin", "Parameter", "Value", "Source")
	for _, p := range cfg.Plugins {
		if len(p.Params) == 0 {
			if err := table.Append([]string{p.Classname, "-", "-", "-"}); err != nil {
				return err
			}
			continue
		}
		keys := make([]string, 0, len(p.Params))
		for k := range p.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			source := "explicit"
			if cfg.UsingDefaultValue[k] {
				source = "default"
			}
			row := []string{p.Classname, k, formatValue(p.Params[k]), source}
			if err := table.Append(row); err != nil {
				return err
			}
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if disabled := plugins.DisabledPlugins(cfg); len(disabled) > 0 {
		fmt.Fprintf(w, "Disabled: %d\n", len(disabled))
		for _, name := range disabled {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "unset"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
