// Package core provides a small, stable facade over the plugin catalog, the
// argument grammar and consolidation, for tools that embed detect-secrets'
// option handling without importing internal packages.
//
// Example:
//
//	args, err := core.ParseScanArgs(ctx, "1.0.0", []string{"scan", "--hex-limit", "2.5"})
//	if err != nil { /* handle */ }
//	_ = core.MarshalPluginsUsed(os.Stdout, args.Settings())
package core
