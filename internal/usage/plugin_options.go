package usage

import (
	"github.com/spf13/pflag"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

const (
	// annotationGroup tags flags that belong to the plugin option group.
	annotationGroup = "detect-secrets/group"
	groupPlugins    = "plugins"

	pluginsDescription = "Configure settings for each secret scanning ruleset. " +
		"By default, all plugins are enabled unless explicitly disabled."

	highEntropyHelp = "Sets the entropy limit for high entropy strings. Value must be between 0.0 and 8.0, "
)

// pluginFlagSet builds a fresh plugin option group: the entropy limits
// followed by one disable flag per catalog entry.
func pluginFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(groupPlugins, pflag.ContinueOnError)

	for _, limit := range []struct{ name, usage string }{
		{"base64-limit", highEntropyHelp + "defaults to 4.5."},
		{"hex-limit", highEntropyHelp + "defaults to 3.0."},
	} {
		f := fs.VarPF(&limitValue{}, limit.name, "", limit.usage)
		f.NoOptDefVal = limitDefault
	}

	for _, d := range plugins.All() {
		fs.Bool(plugins.FlagName(d.DisableFlag), false, d.DisableHelp)
	}

	fs.VisitAll(func(f *pflag.Flag) {
		_ = fs.SetAnnotation(f.Name, annotationGroup, []string{groupPlugins})
	})
	return fs
}

func isPluginFlag(f *pflag.Flag) bool {
	g := f.Annotations[annotationGroup]
	return len(g) > 0 && g[0] == groupPlugins
}
