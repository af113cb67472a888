package core

import (
	"context"

	"github.com/redactyl/detect-secrets/internal/plugins"
	"github.com/redactyl/detect-secrets/internal/usage"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Descriptor    = plugins.Descriptor
	RelatedArg    = plugins.RelatedArg
	RawArguments  = plugins.RawArguments
	Config        = plugins.Config
	ActivePlugins = plugins.ActivePlugins
	Args          = usage.Args
	UsageError    = usage.UsageError
)

var (
	ErrVersionShown = usage.ErrVersionShown
	ErrHelpShown    = usage.ErrHelpShown
)

// Plugins returns the known detector plugins in declaration order.
func Plugins() []Descriptor { return plugins.All() }

// Consolidate groups raw, flag-derived values by plugin. See
// plugins.Consolidate for the defaulting rules.
func Consolidate(raw RawArguments) (Config, bool) { return plugins.Consolidate(raw) }

// ParseScanArgs parses argv with the console grammar (scan and audit).
func ParseScanArgs(ctx context.Context, version string, argv []string) (*Args, error) {
	return usage.NewParserBuilder(version).AddConsoleUseArguments().ParseArgs(ctx, argv)
}

// ParseHookArgs parses argv with the pre-commit hook grammar.
func ParseHookArgs(ctx context.Context, version string, argv []string) (*Args, error) {
	return usage.NewParserBuilder(version).SetProgram("detect-secrets-hook").AddPreCommitArguments().ParseArgs(ctx, argv)
}
