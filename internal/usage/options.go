package usage

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// annotationDest overrides the identifier a flag's value is collected under.
const annotationDest = "detect-secrets/dest"

func addExcludeLines(fs *pflag.FlagSet) {
	fs.Var(&optionalString{}, "exclude-lines", "Pass in regex to specify lines to ignore during scan.")
}

func addUseAllPlugins(fs *pflag.FlagSet) {
	fs.Bool("use-all-plugins", false, "Use all available plugins to scan files.")
}

func (b *ParserBuilder) newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a codebase and output a snapshot of currently identified secrets",
		Long: "Scans the entire codebase and outputs a snapshot of currently identified secrets.\n" +
			"path defaults to the current directory.",
		Args: unlessVersion(func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("accepts at most one path, received %d", len(args))
			}
			return nil
		}),
		RunE: b.capture,
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	addExcludeLines(fs)
	fs.Var(&optionalString{}, "exclude-files", "Pass in regex to specify ignored paths during initialization scan.")
	fs.Var(&optionalString{}, "update", "Update existing baseline by importing settings from it.")
	_ = fs.SetAnnotation("update", annotationDest, []string{"import_filename"})
	_ = cobra.MarkFlagFilename(fs, "update")
	addUseAllPlugins(fs)
	fs.Bool("all-files", false, "Scan all files recursively (as compared to only scanning git tracked files).")

	adhoc := fs.VarPF(&adhocString{}, "string", "", "Scans an individual string, and displays configured plugins' verdict.")
	adhoc.NoOptDefVal = stringFromElsewhere

	fs.AddFlagSet(pluginFlagSet())
	return cmd
}

func (b *ParserBuilder) newAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit filename...",
		Short: "Audit baseline files",
		Long:  "Audit a given baseline file to distinguish the difference between false and true positives.",
		Args: unlessVersion(func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires at least one baseline filename")
			}
			if diff, _ := cmd.Flags().GetBool("diff"); diff && len(args) != 2 {
				return fmt.Errorf("--diff requires exactly two baseline files, received %d", len(args))
			}
			return nil
		}),
		RunE: b.capture,
	}
	cmd.Flags().Bool("diff", false, "Allows the comparison of two baseline files, in order to "+
		"effectively distinguish the difference between various plugin configurations.")
	return cmd
}
