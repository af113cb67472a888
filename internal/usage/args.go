package usage

import "github.com/redactyl/detect-secrets/internal/plugins"

// Args is the result of a successful parse.
type Args struct {
	// Action is "scan" or "audit" in console mode and empty for the hook.
	Action  string
	Verbose int

	// Raw holds every collected value, plugin flags included.
	Raw plugins.RawArguments

	// Consolidated is false when the grammar had no plugin option group, in
	// which case Plugins and UsingDefaultValue are nil.
	Consolidated      bool
	Plugins           plugins.ActivePlugins
	UsingDefaultValue map[string]bool
}

// Settings returns the consolidated plugin configuration.
func (a *Args) Settings() plugins.Config {
	return plugins.Config{Plugins: a.Plugins, UsingDefaultValue: a.UsingDefaultValue}
}

// Remaining returns the raw values that are not plugin options.
func (a *Args) Remaining() plugins.RawArguments {
	return plugins.Remaining(a.Raw)
}

// String returns a string value and whether it was supplied.
func (a *Args) String(id string) (string, bool) {
	s, ok := a.Raw[id].(string)
	return s, ok
}

func (a *Args) Bool(id string) bool {
	b, _ := a.Raw[id].(bool)
	return b
}

func (a *Args) Strings(id string) []string {
	s, _ := a.Raw[id].([]string)
	return s
}
