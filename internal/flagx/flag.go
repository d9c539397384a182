// Package flagx picks individual flags out of a shared command line so that
// each config source can parse only what it owns.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps the allowed flags (and their values) from args and drops
// everything else. Both "-f value" and "-f=value" forms are understood; a
// following token that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag returns the JSON config path given with -c or -config, or "".
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "config", "c", "path to JSON config file")
}

// EnvFileFlag returns the dotenv path given with -e or -env, or "".
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env", "e", "path to .env file")
}

func stringFlag(args []string, long, short, usage string) string {
	var value string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.StringVar(&value, long, "", usage)
	fs.StringVar(&value, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return value
}
