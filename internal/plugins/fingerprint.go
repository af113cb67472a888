package plugins

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// PluginsUsed renders cfg the way baselines record it: one entry per active
// plugin with a "name" key plus its non-nil parameters.
func (c Config) PluginsUsed() []map[string]any {
	out := make([]map[string]any, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		entry := map[string]any{"name": p.Classname}
		for k, v := range p.Params {
			if v != nil {
				entry[k] = v
			}
		}
		out = append(out, entry)
	}
	return out
}

// Fingerprint is a stable digest of the active plugins and their parameter
// values. Whether a value came from a default does not affect it.
func (c Config) Fingerprint() string {
	var b strings.Builder
	for _, p := range c.Plugins {
		b.WriteString(p.Classname)
		keys := make([]string, 0, len(p.Params))
		for k := range p.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(';')
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(formatParam(p.Params[k]))
		}
		b.WriteByte('\n')
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}

func formatParam(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}
