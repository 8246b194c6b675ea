// Package flagx lets several independent flag sets share one command line.
//
// Each consumer (the JSON config locator, the config flag parser) picks out
// only the flags it owns with FilterArgs and parses them with its own
// flag.FlagSet, so unknown flags belonging to another consumer never cause
// a parse error.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belong to the named flags.
//
// valued flags take an argument, given either as "-d path" or "-d=path".
// The token after a valued flag is only taken as its value when it does not
// itself start with "-". switches are boolean flags: "-u" is kept alone and
// never consumes the next token, "-u=false" is kept whole.
//
// The result is never nil and keeps the original order.
func FilterArgs(args []string, valued []string, switches ...string) []string {
	kind := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		kind[f] = true
	}
	for _, f := range switches {
		kind[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := kind[name]; known {
				out = append(out, arg)
			}
			continue
		}

		takesValue, known := kind[arg]
		if !known {
			continue
		}
		out = append(out, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// JSONConfigFlag returns the config file path given with -c or -config in
// args, or "" when neither is present. The last occurrence wins.
func JSONConfigFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
