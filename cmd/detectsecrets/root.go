package detectsecrets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/redactyl/detect-secrets/internal/config"
	"github.com/redactyl/detect-secrets/internal/logging"
	"github.com/redactyl/detect-secrets/internal/report"
	"github.com/redactyl/detect-secrets/internal/usage"
	"github.com/redactyl/detect-secrets/internal/version"
)

// Version is overridden by release tooling.
var Version = "0.13.1"

// Handler receives a successfully parsed invocation. The scanning engine
// implements it; the default handler prints the resolved settings as JSON.
type Handler interface {
	Handle(ctx context.Context, args *usage.Args, log hclog.Logger) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, args *usage.Args, log hclog.Logger) error

func (f HandlerFunc) Handle(ctx context.Context, args *usage.Args, log hclog.Logger) error {
	return f(ctx, args, log)
}

// Options configures a run. Zero values select os.Stdout, os.Stderr, the
// current directory and the settings-printing handler.
type Options struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Root    string
	Handler Handler
}

// Execute runs the console tool with os.Args and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], Options{}))
}

// ExecuteHook runs the pre-commit hook with os.Args and exits.
func ExecuteHook() {
	os.Exit(RunHook(context.Background(), os.Args[1:], Options{}))
}

// Run parses argv with the console grammar and returns the process exit code.
func Run(ctx context.Context, argv []string, opts Options) int {
	return run(ctx, argv, opts, func(b *usage.ParserBuilder) {
		b.AddConsoleUseArguments()
	})
}

// RunHook parses argv with the pre-commit grammar and returns the process
// exit code.
func RunHook(ctx context.Context, argv []string, opts Options) int {
	return run(ctx, argv, opts, func(b *usage.ParserBuilder) {
		b.SetProgram("detect-secrets-hook").AddPreCommitArguments()
	})
}

func run(ctx context.Context, argv []string, opts Options, declare func(*usage.ParserBuilder)) int {
	opts = opts.withDefaults()

	// Load configs: local > global; CLI flags win over both
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(opts.Root); err == nil {
		lcfg = c
	}
	fc := config.Merge(lcfg, gcfg)

	b := usage.NewParserBuilder(version.Normalize(Version)).
		SetOutput(opts.Stdout, opts.Stderr).
		SetDefaults(fc.FlagDefaults())
	declare(b)

	args, err := b.ParseArgs(ctx, argv)
	if err != nil {
		return exitCode(opts.Stderr, err)
	}

	log := logging.New(opts.Stderr, args.Verbose)
	log.Debug("file config", "defaults", fc.FlagDefaults())
	if args.Consolidated {
		settings := args.Settings()
		log.Info("plugins resolved", "active", len(args.Plugins), "fingerprint", settings.Fingerprint())
		if log.IsInfo() {
			if err := report.PrintPlugins(opts.Stderr, settings); err != nil {
				log.Warn("could not render plugin table", "error", err)
			}
		}
	}
	log.Trace("raw arguments", "raw", args.Raw)

	if err := opts.Handler.Handle(ctx, args, log); err != nil {
		return exitCode(opts.Stderr, err)
	}
	return exitOK
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Root == "" {
		o.Root = "."
	}
	if o.Handler == nil {
		o.Handler = printSettings(o.Stdout)
	}
	return o
}

// printSettings hands the resolved settings over as JSON on w.
func printSettings(w io.Writer) Handler {
	return HandlerFunc(func(_ context.Context, args *usage.Args, _ hclog.Logger) error {
		s := report.NewSettings(args.Action, args.Settings(), args.Remaining())
		if err := report.WriteJSON(w, s); err != nil {
			return fmt.Errorf("write settings: %w", err)
		}
		return nil
	})
}

func exitCode(stderr io.Writer, err error) int {
	if errors.Is(err, usage.ErrVersionShown) || errors.Is(err, usage.ErrHelpShown) {
		return exitOK
	}
	var uerr *usage.UsageError
	if errors.As(err, &uerr) {
		_, _ = fmt.Fprint(stderr, uerr.Usage)
		_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", uerr.Command, uerr.Err)
		return exitUsage
	}
	var xerr *ExitError
	if errors.As(err, &xerr) {
		if xerr.Message != "" {
			_, _ = fmt.Fprintln(stderr, "error:", xerr.Message)
		}
		return xerr.Code
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return exitFailure
}
