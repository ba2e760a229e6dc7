// Package flagx lets several packages parse their own subset of os.Args
// without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Spec lists the flags a caller understands. Valued flags may take their
// value from the next argument; Switches are boolean and never do.
type Spec struct {
	Valued   []string
	Switches []string
}

// FilterArgs returns the subset of args that belong to spec, in their
// original order.
//
// Supported forms:
//
//	-c conf.json     valued flag, value as the next argument
//	-c=conf.json     any flag with an inline value
//	-p               switch
//
// A valued flag followed by something that looks like a flag keeps no value.
// Everything not named in spec is dropped.
func FilterArgs(args []string, spec Spec) []string {
	valued := toSet(spec.Valued)
	switches := toSet(spec.Switches)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := valued[name]; known {
				filtered = append(filtered, arg)
			} else if _, known := switches[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := switches[arg]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := valued[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// ConfigFileFlag returns the config file path given with -c or -config, or ""
// when neither is present. When both are given the last one wins.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], Spec{Valued: []string{"-c", "-config"}})

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
