package core_test

import (
	"context"
	"fmt"

	"github.com/redactyl/detect-secrets/pkg/core"
)

// ExampleConsolidate shows how flat flag values are grouped by plugin.
func ExampleConsolidate() {
	// a missing disable flag counts as false
	raw := core.RawArguments{
		"hex_limit":     nil,
		"base64_limit":  5.0,
		"no_slack_scan": true,
	}

	cfg, _ := core.Consolidate(raw)
	for _, p := range cfg.Plugins {
		fmt.Println(p.Classname, p.Params)
	}
	fmt.Println(cfg.UsingDefaultValue)
	// Output:
	// HexHighEntropyString map[hex_limit:3]
	// Base64HighEntropyString map[base64_limit:5]
	// PrivateKeyDetector map[]
	// BasicAuthDetector map[]
	// KeywordDetector map[]
	// AWSKeyDetector map[]
	// map[hex_limit:true]
}

// ExampleParseScanArgs parses a console invocation.
func ExampleParseScanArgs() {
	args, err := core.ParseScanArgs(context.Background(), "1.0.0", []string{"scan", "src", "--no-keyword-scan"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(args.Action, args.Raw["path"], args.Plugins.Has("KeywordDetector"))
	// Output: scan src false
}
