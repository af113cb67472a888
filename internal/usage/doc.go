// Package usage declares the command-line grammar of both entry points: the
// pre-commit hook, which takes filenames directly, and the console tool with
// its scan and audit subcommands. Parsing is delegated to cobra; after a
// successful parse the flat flag values are collected into
// plugins.RawArguments and consolidated into a per-plugin configuration.
package usage
