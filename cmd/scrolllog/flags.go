package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// cliArgs holds parsed command-line flags; everything after the flags is a
// command to run under a pty.
type cliArgs struct {
	cfgPath   string
	overrides stringSlice
	files     stringSlice
	// maxEntries < 0 means the flag was not given.
	maxEntries int
	fromEnd    bool
	noSelect   bool
	noFollow   bool
	wrap       bool
	logLevel   string
	// writeConfig saves the effective config and exits.
	writeConfig bool
	command     []string
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet("scrolllog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := cliArgs{}

	fs.StringVar(&out.cfgPath, "config", "", "Path to config file (default ~/.scrolllog/config.toml)")
	fs.Var(&out.overrides, "c", "Override config value key=value (repeatable)")
	fs.Var(&out.files, "file", "Follow a file (repeatable)")
	fs.Var(&out.files, "f", "Alias for --file")
	fs.IntVar(&out.maxEntries, "max", -1, "Maximum entries kept; 0 means unbounded")
	fs.BoolVar(&out.fromEnd, "from-end", false, "Skip existing file content, show only new lines")
	fs.BoolVar(&out.noSelect, "no-select", false, "Disable the selection highlight")
	fs.BoolVar(&out.noFollow, "no-follow", false, "Do not keep the newest entry selected")
	fs.BoolVar(&out.wrap, "wrap", false, "Wrap long lines instead of truncating them")
	fs.StringVar(&out.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	fs.BoolVar(&out.writeConfig, "write-config", false, "Write the effective config to the config path and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: scrolllog [flags] [--] [command [args...]]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	out.command = fs.Args()
	if len(out.command) > 0 && len(out.files) > 0 {
		return cliArgs{}, errors.New("-file and a command are mutually exclusive")
	}
	return out, nil
}

// allOverrides turns dedicated flags into key=value overrides applied after -c.
func (a cliArgs) allOverrides() []string {
	all := append([]string{}, a.overrides...)
	if a.maxEntries >= 0 {
		all = append(all, fmt.Sprintf("max_entries=%d", a.maxEntries))
	}
	if a.noSelect {
		all = append(all, "selectable=false")
	}
	if a.noFollow {
		all = append(all, "follow=false")
	}
	if a.wrap {
		all = append(all, "wrap=true")
	}
	if a.logLevel != "" {
		all = append(all, "log_level="+a.logLevel)
	}
	return all
}
