package plugins

// Entropy limits accepted by the high entropy string plugins.
const (
	LimitMin = 0.0
	LimitMax = 8.0
)

// RelatedArg is a tunable flag owned by a single plugin. Default is nil when
// the flag has no default value.
type RelatedArg struct {
	Flag    string
	Default any
}

// Descriptor describes one detector plugin and the flags that configure it.
type Descriptor struct {
	// Classname identifies the plugin to the scanning engine.
	Classname string
	// DisableFlag turns the plugin off, e.g. `--no-hex-string-scan`.
	DisableFlag string
	DisableHelp string
	// RelatedArgs are bundled under Classname during consolidation. A related
	// arg is never shared between plugins.
	RelatedArgs []RelatedArg
}

var all = []Descriptor{
	{
		Classname:   "HexHighEntropyString",
		DisableFlag: "--no-hex-string-scan",
		DisableHelp: "Disables scanning for hex high entropy strings",
		RelatedArgs: []RelatedArg{{Flag: "--hex-limit", Default: 3.0}},
	},
	{
		Classname:   "Base64HighEntropyString",
		DisableFlag: "--no-base64-string-scan",
		DisableHelp: "Disables scanning for base64 high entropy strings",
		RelatedArgs: []RelatedArg{{Flag: "--base64-limit", Default: 4.5}},
	},
	{
		Classname:   "PrivateKeyDetector",
		DisableFlag: "--no-private-key-scan",
		DisableHelp: "Disables scanning for private keys.",
	},
	{
		Classname:   "BasicAuthDetector",
		DisableFlag: "--no-basic-auth-scan",
		DisableHelp: "Disables scanning for Basic Auth formatted URIs.",
	},
	{
		Classname:   "KeywordDetector",
		DisableFlag: "--no-keyword-scan",
		DisableHelp: "Disables scanning for secret keywords.",
	},
	{
		Classname:   "AWSKeyDetector",
		DisableFlag: "--no-aws-key-scan",
		DisableHelp: "Disables scanning for AWS keys.",
	},
	{
		Classname:   "SlackDetector",
		DisableFlag: "--no-slack-scan",
		DisableHelp: "Disables scanning for Slack tokens.",
	},
}

// All returns the registered plugins in declaration order.
func All() []Descriptor {
	out := make([]Descriptor, len(all))
	for i, d := range all {
		d.RelatedArgs = append([]RelatedArg(nil), d.RelatedArgs...)
		out[i] = d
	}
	return out
}

func Lookup(classname string) (Descriptor, bool) {
	for _, d := range All() {
		if d.Classname == classname {
			return d, true
		}
	}
	return Descriptor{}, false
}
