package plugins

import (
	"fmt"
	"reflect"
)

// RawArguments is the flat result of parsing command-line flags, keyed by
// ArgName identifiers. A present key holding nil was declared by the grammar
// but not supplied by the user.
type RawArguments map[string]any

// Params maps related-arg identifiers to their consolidated values.
type Params map[string]any

// PluginConfig is one active plugin and its parameters.
type PluginConfig struct {
	Classname string
	Params    Params
}

// ActivePlugins keeps plugins in catalog order.
type ActivePlugins []PluginConfig

func (a ActivePlugins) Get(classname string) (Params, bool) {
	for _, p := range a {
		if p.Classname == classname {
			return p.Params, true
		}
	}
	return nil, false
}

func (a ActivePlugins) Has(classname string) bool {
	_, ok := a.Get(classname)
	return ok
}

func (a ActivePlugins) Names() []string {
	out := make([]string, 0, len(a))
	for _, p := range a {
		out = append(out, p.Classname)
	}
	return out
}

// Config is the consolidated plugin configuration. UsingDefaultValue is true
// for every parameter whose value was filled in from its descriptor default
// rather than supplied on the command line.
type Config struct {
	Plugins           ActivePlugins
	UsingDefaultValue map[string]bool
}

// canaryFlag is only declared alongside the plugin option group, so its
// absence means there is nothing to consolidate.
const canaryFlag = "--hex-limit"

// Consolidate groups the plugin-related values in raw by plugin. It reports
// false, with a zero Config, when raw was produced by a grammar without the
// plugin option group. raw is not modified.
//
// A related arg falls back to its default only when its raw value is nil and
// the default itself is truthy: an explicit zero stays zero, and a zero
// default is never applied.
func Consolidate(raw RawArguments) (Config, bool) {
	if _, ok := raw[ArgName(canaryFlag)]; !ok {
		return Config{}, false
	}

	cfg := Config{
		Plugins:           ActivePlugins{},
		UsingDefaultValue: map[string]bool{},
	}
	for _, d := range all {
		if truthy(raw[ArgName(d.DisableFlag)]) {
			continue
		}

		params := Params{}
		for _, ra := range d.RelatedArgs {
			if ra.Flag == "" {
				panic(fmt.Sprintf("plugins: %s has a related arg without a flag", d.Classname))
			}
			id := ArgName(ra.Flag)
			v := raw[id]
			if v == nil && truthy(ra.Default) {
				v = ra.Default
				cfg.UsingDefaultValue[id] = true
			}
			params[id] = v
		}
		cfg.Plugins = append(cfg.Plugins, PluginConfig{Classname: d.Classname, Params: params})
	}
	return cfg, true
}

// Remaining returns a copy of raw without the identifiers consumed by
// Consolidate. Every disable flag is consumed; related args are consumed only
// for plugins that stayed active.
func Remaining(raw RawArguments) RawArguments {
	out := make(RawArguments, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	if _, ok := raw[ArgName(canaryFlag)]; !ok {
		return out
	}
	for _, d := range all {
		id := ArgName(d.DisableFlag)
		disabled := truthy(raw[id])
		delete(out, id)
		if disabled {
			continue
		}
		for _, ra := range d.RelatedArgs {
			delete(out, ArgName(ra.Flag))
		}
	}
	return out
}

// DisabledPlugins lists catalog classnames missing from cfg, in catalog order.
func DisabledPlugins(cfg Config) []string {
	var out []string
	for _, d := range all {
		if !cfg.Plugins.Has(d.Classname) {
			out = append(out, d.Classname)
		}
	}
	return out
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
