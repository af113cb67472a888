package usage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

type mode int

const (
	modeUnset mode = iota
	modePreCommit
	modeConsole
)

// ParserBuilder declares the grammar of one entry point. Build it with
// NewParserBuilder, add either the pre-commit or the console arguments, then
// call ParseArgs once.
type ParserBuilder struct {
	root     *cobra.Command
	mode     mode
	version  string
	defaults map[string]string

	// set by the leaf command that ran
	ran          *cobra.Command
	positionals  []string
	versionShown bool
}

// NewParserBuilder declares the arguments shared by every invocation:
// a repeatable -v/--verbose counter and --version. Both are persistent, so
// --version is honoured before or after a subcommand name.
func NewParserBuilder(version string) *ParserBuilder {
	b := &ParserBuilder{version: version}
	b.root = &cobra.Command{
		Use:           "detect-secrets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	b.root.CompletionOptions.DisableDefaultCmd = true
	// only scan and audit select a grammar
	b.root.SetHelpCommand(&cobra.Command{Hidden: true})
	b.root.SetUsageFunc(usageFunc)

	b.root.Flags().SortFlags = false
	b.root.PersistentFlags().SortFlags = false
	b.root.PersistentFlags().CountP("verbose", "v", "Verbose mode.")
	b.root.PersistentFlags().Bool("version", false, "Display version information.")
	return b
}

// SetProgram changes the program name shown in usage output.
func (b *ParserBuilder) SetProgram(name string) *ParserBuilder {
	b.root.Use = name
	return b
}

// SetOutput redirects usage, help and version output.
func (b *ParserBuilder) SetOutput(out, errOut io.Writer) *ParserBuilder {
	b.root.SetOut(out)
	b.root.SetErr(errOut)
	return b
}

// SetDefaults supplies values, keyed by flag name, for flags the user did
// not set. Plugin flags are never filled in this way, so consolidation can
// still tell defaults from explicit values.
func (b *ParserBuilder) SetDefaults(defaults map[string]string) *ParserBuilder {
	b.defaults = defaults
	return b
}

// AddPreCommitArguments declares the hook grammar: filenames, --baseline,
// --exclude-lines, --use-all-plugins and the plugin option group.
func (b *ParserBuilder) AddPreCommitArguments() *ParserBuilder {
	b.setMode(modePreCommit)
	b.root.Use += " [filenames...]"
	b.root.Args = cobra.ArbitraryArgs
	b.root.RunE = b.capture

	fs := b.root.Flags()
	fs.String("baseline", "", "Sets a baseline for explicitly ignored secrets, generated by `scan`.")
	_ = cobra.MarkFlagFilename(fs, "baseline")
	addExcludeLines(fs)
	addUseAllPlugins(fs)
	fs.AddFlagSet(pluginFlagSet())
	return b
}

// AddConsoleUseArguments declares the scan and audit subcommands, one of
// which is required.
func (b *ParserBuilder) AddConsoleUseArguments() *ParserBuilder {
	b.setMode(modeConsole)
	b.root.RunE = func(cmd *cobra.Command, _ []string) error {
		if b.showVersion(cmd) {
			return nil
		}
		return errors.New("a subcommand is required: scan or audit")
	}
	b.root.AddCommand(b.newScanCommand(), b.newAuditCommand())
	return b
}

func (b *ParserBuilder) setMode(m mode) {
	if b.mode != modeUnset {
		panic("usage: pre-commit and console arguments cannot be combined")
	}
	b.mode = m
}

// ParseArgs parses argv against the declared grammar and consolidates the
// plugin options. Grammar violations are returned as *UsageError.
func (b *ParserBuilder) ParseArgs(ctx context.Context, argv []string) (*Args, error) {
	if b.mode == modeUnset {
		return nil, errors.New("usage: no arguments declared")
	}
	if argv == nil {
		// cobra falls back to os.Args on nil
		argv = []string{}
	}
	b.root.SetArgs(joinOptionalValues(argv, flagArities(b.root)))

	cmd, err := b.root.ExecuteContextC(ctx)
	if err != nil {
		if cmd == nil {
			cmd = b.root
		}
		return nil, &UsageError{Command: cmd.CommandPath(), Usage: cmd.UsageString(), Err: err}
	}
	if b.versionShown {
		return nil, ErrVersionShown
	}
	if b.ran == nil {
		return nil, ErrHelpShown
	}

	args := &Args{Raw: collect(b.ran, b.positionals)}
	if b.mode == modeConsole {
		args.Action = b.ran.Name()
		args.Raw["action"] = args.Action
	}
	args.Verbose, _ = args.Raw["verbose"].(int)
	if cfg, ok := plugins.Consolidate(args.Raw); ok {
		args.Consolidated = true
		args.Plugins = cfg.Plugins
		args.UsingDefaultValue = cfg.UsingDefaultValue
	}
	return args, nil
}

// capture records the command that ran; the work itself belongs to the
// caller of ParseArgs.
func (b *ParserBuilder) capture(cmd *cobra.Command, args []string) error {
	if b.showVersion(cmd) {
		return nil
	}
	if err := b.applyDefaults(cmd.Flags()); err != nil {
		return err
	}
	b.ran = cmd
	b.positionals = args
	return nil
}

func (b *ParserBuilder) applyDefaults(fs *pflag.FlagSet) error {
	for name, v := range b.defaults {
		f := fs.Lookup(name)
		if f == nil || f.Changed || isPluginFlag(f) {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("default for --%s: %w", name, err)
		}
	}
	return nil
}

// showVersion prints the version when --version was given anywhere on the
// command line. Nothing is collected or consolidated after it.
func (b *ParserBuilder) showVersion(cmd *cobra.Command) bool {
	if v, _ := cmd.Flags().GetBool("version"); !v {
		return false
	}
	fmt.Fprintln(cmd.OutOrStdout(), b.version)
	b.versionShown = true
	return true
}

// unlessVersion skips positional validation when --version was given, so
// "audit --version" prints the version instead of asking for filenames.
func unlessVersion(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			return nil
		}
		return validate(cmd, args)
	}
}
