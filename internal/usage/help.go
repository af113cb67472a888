package usage

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// usageFunc renders cobra's usage layout, with the plugin option group
// split out under its own heading.
func usageFunc(c *cobra.Command) error {
	var b strings.Builder

	b.WriteString("Usage:\n")
	if c.Runnable() {
		fmt.Fprintf(&b, "  %s\n", c.UseLine())
	}
	if c.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "  %s [command]\n", c.CommandPath())
		b.WriteString("\nAvailable Commands:\n")
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(&b, "  %s %s\n", rpad(sub.Name(), sub.NamePadding()), sub.Short)
			}
		}
	}

	local, group := splitFlags(c.LocalFlags())
	if local.HasAvailableFlags() {
		b.WriteString("\nFlags:\n")
		b.WriteString(local.FlagUsages())
	}
	if c.HasAvailableInheritedFlags() {
		b.WriteString("\nGlobal Flags:\n")
		b.WriteString(c.InheritedFlags().FlagUsages())
	}
	if group.HasAvailableFlags() {
		fmt.Fprintf(&b, "\n%s:\n  %s\n\n", groupPlugins, pluginsDescription)
		b.WriteString(group.FlagUsages())
	}
	if c.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "\nUse \"%s [command] --help\" for more information about a command.\n", c.CommandPath())
	}

	_, err := fmt.Fprint(c.OutOrStderr(), b.String())
	return err
}

func splitFlags(fs *pflag.FlagSet) (local, group *pflag.FlagSet) {
	local = pflag.NewFlagSet("local", pflag.ContinueOnError)
	group = pflag.NewFlagSet(groupPlugins, pflag.ContinueOnError)
	fs.VisitAll(func(f *pflag.Flag) {
		if isPluginFlag(f) {
			group.AddFlag(f)
			return
		}
		local.AddFlag(f)
	})
	// keep declaration order, which is the catalog order for disable flags
	local.SortFlags = false
	group.SortFlags = false
	return local, group
}

func rpad(s string, n int) string {
	return fmt.Sprintf("%-*s", n, s)
}
