// Package plugins holds the static registry of known secret detectors and
// the consolidation step that turns flat, flag-derived values into the
// per-plugin configuration handed to the scanning engine.
package plugins
