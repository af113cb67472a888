package usage

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

// collect flattens the flags and positionals of the command that ran into
// raw arguments keyed by identifier.
func collect(cmd *cobra.Command, positionals []string) plugins.RawArguments {
	raw := plugins.RawArguments{}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "version" {
			return
		}
		raw[identifier(f)] = rawValue(f)
	})

	switch {
	case !cmd.HasParent():
		raw["filenames"] = append([]string{}, positionals...)
	case cmd.Name() == "scan":
		path := "."
		if len(positionals) > 0 {
			path = positionals[0]
		}
		raw["path"] = path
	case cmd.Name() == "audit":
		raw["filename"] = append([]string{}, positionals...)
	}
	return raw
}

func identifier(f *pflag.Flag) string {
	if dest := f.Annotations[annotationDest]; len(dest) > 0 {
		return dest[0]
	}
	return plugins.ArgName(f.Name)
}

func rawValue(f *pflag.Flag) any {
	if rv, ok := f.Value.(rawValuer); ok {
		return rv.Raw()
	}
	s := f.Value.String()
	switch f.Value.Type() {
	case "bool":
		b, _ := strconv.ParseBool(s)
		return b
	case "count", "int":
		n, _ := strconv.Atoi(s)
		return n
	}
	return s
}
