// Command hook is the detect-secrets-hook pre-commit entry point.
package main

import "github.com/redactyl/detect-secrets/cmd/detectsecrets"

func main() { detectsecrets.ExecuteHook() }
