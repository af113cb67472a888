// Package detectsecrets provides the two command-line entry points: the
// console tool (scan, audit) and the pre-commit hook. Both parse their
// grammar, consolidate the plugin options and hand the result to a Handler.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/detect-secrets/cmd/detectsecrets"
//	func main() { detectsecrets.Execute() }
package detectsecrets
