// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type CLIOpts struct {
	doLog      bool
	configDir  string
	window     string
	properties string
	list       string
}

func parseCLIOpts(args []string) (CLIOpts, error) {
	var opt CLIOpts
	fs := flag.NewFlagSet("xwinprop", flag.ContinueOnError)
	fs.BoolVar(&opt.doLog, "log", false, "Print debugging output to stdout")
	fs.StringVar(&opt.configDir, "c", "", "Read config.toml from this directory instead of $XDG_CONFIG_HOME/xwinprop")
	fs.StringVar(&opt.window, "w", "", "Only print properties of this window id (decimal or 0x hex)")
	fs.StringVar(&opt.properties, "p", "", "Comma separated properties to print for each window")
	fs.StringVar(&opt.list, "l", "", "Root window property listing the windows to print")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	return opt, nil
}

// apply lets command line flags override the config file.
func (opt CLIOpts) apply(conf *config) {
	if opt.list != "" {
		conf.ListProperty = opt.list
	}
	if opt.properties != "" {
		conf.NameProperties = splitProperties(opt.properties)
	}
}

func splitProperties(s string) []string {
	var props []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			props = append(props, p)
		}
	}
	return props
}

func parseWindowID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return uint32(id), nil
}
