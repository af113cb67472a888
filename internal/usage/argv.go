package usage

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeNumber matches tokens that are values rather than flags, e.g. the
// -0.5 in "--hex-limit -0.5".
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// flagArity says how a long flag consumes the token after it.
type flagArity int

const (
	arityNone     flagArity = iota // bool and count flags
	arityOptional                  // --string, --hex-limit, --base64-limit
	arityRequired
)

// flagArities indexes every long flag declared on root and its
// subcommands by arity.
func flagArities(root *cobra.Command) map[string]flagArity {
	out := map[string]flagArity{}
	index := func(f *pflag.Flag) {
		switch {
		case f.NoOptDefVal == "":
			out[f.Name] = arityRequired
		case takesOptionalValue(f):
			out[f.Name] = arityOptional
		default:
			out[f.Name] = arityNone
		}
	}
	root.PersistentFlags().VisitAll(index)
	root.Flags().VisitAll(index)
	for _, sub := range root.Commands() {
		sub.Flags().VisitAll(index)
	}
	return out
}

func takesOptionalValue(f *pflag.Flag) bool {
	_, ok := f.Value.(rawValuer)
	return ok && f.NoOptDefVal != ""
}

// joinOptionalValues rewrites "--flag VALUE" into "--flag=VALUE" for flags
// whose value is optional. pflag never lets such a flag consume the next
// token, so without this "scan --string AKIA..." would read AKIA... as the
// scan path. A following token is taken as the value unless it looks like
// a flag. Nothing after a "--" terminator is touched.
func joinOptionalValues(argv []string, flags map[string]flagArity) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if tok == "--" {
			return append(out, argv[i:]...)
		}
		name, ok := strings.CutPrefix(tok, "--")
		if !ok || strings.Contains(name, "=") || i+1 >= len(argv) {
			out = append(out, tok)
			continue
		}
		switch flags[name] {
		case arityRequired:
			// the next token is this flag's value, whatever it looks like
			out = append(out, tok, argv[i+1])
			i++
		case arityOptional:
			if next := argv[i+1]; isValueToken(next) {
				out = append(out, tok+"="+next)
				i++
				continue
			}
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}
	return out
}

func isValueToken(s string) bool {
	return !strings.HasPrefix(s, "-") || s == "-" || negativeNumber.MatchString(s)
}
