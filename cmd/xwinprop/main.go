// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/xgbutil"
	"go.uber.org/zap"

	"xwinprop"
)

var log = zap.NewNop().Sugar()

var version = "unknown" // will be changed by build

func main() {
	opt, err := parseCLIOpts(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger, err := newLogger(opt.doLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't create logger: %v\n", err)
		os.Exit(1)
	}
	log = logger.Sugar()
	xwinprop.SetLogger(logger)
	log.Infof("Application starting. Version: %s", version)

	dir := opt.configDir
	if dir == "" {
		dir = configDir()
	}
	if err := initializeConfigIfNot(dir); err != nil {
		fatalf("Couldn't initialize config: %v", err)
	}
	conf, err := readConfig(dir)
	if err != nil {
		fatalf("Couldn't read config file: %v", err)
	}
	opt.apply(conf)

	xu, err := xgbutil.NewConn()
	if err != nil {
		fatalf("Couldn't connect to X server: %v", err)
	}
	defer xu.Conn().Close()
	log.Infof("Connected to X server, root window 0x%x", xu.RootWin())

	client, err := newClient(xwinprop.NewXConn(xu.Conn()), logger, conf)
	if err != nil {
		fatalf("Couldn't set up property client: %v", err)
	}

	windows, err := targetWindows(client, opt.window, conf.ListProperty)
	if err != nil {
		fatalf("Couldn't list windows: %v", err)
	}
	printWindows(os.Stdout, windows, conf.NameProperties)
	logger.Sync()
}

func newLogger(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}

func newClient(conn xwinprop.Conn, logger *zap.Logger, conf *config) (*xwinprop.Client, error) {
	client, err := xwinprop.New(conn,
		xwinprop.WithLogger(logger),
		xwinprop.WithSizeHint(conf.SizeHint),
		xwinprop.WithAtomCache(conf.AtomCacheSize))
	if err != nil {
		return nil, err
	}
	if conf.Latin1Strings {
		err := client.Registry().RegisterByType("STRING", xwinprop.Latin1Text{}, xwinprop.AllowOverwrite())
		if err != nil {
			return nil, err
		}
	}
	return client, nil
}

// targetWindows returns the window named on the command line, or the
// windows listed in the root window's list property.
func targetWindows(client *xwinprop.Client, window, listProperty string) ([]*xwinprop.Window, error) {
	if window != "" {
		id, err := parseWindowID(window)
		if err != nil {
			return nil, err
		}
		return []*xwinprop.Window{client.FromID(id)}, nil
	}

	v, err := client.Root().GetProperty(listProperty)
	if err != nil {
		return nil, err
	}
	windows, ok := v.([]*xwinprop.Window)
	if !ok {
		return nil, fmt.Errorf("%s is a %T, not a window list", listProperty, v)
	}
	log.Infof("Found %d windows in %s", len(windows), listProperty)
	return windows, nil
}

func printWindows(w io.Writer, windows []*xwinprop.Window, props []string) {
	for _, wnd := range windows {
		fields := make([]string, 0, len(props))
		for _, p := range props {
			fields = append(fields, fmt.Sprintf("%s=%s", p, formatProperty(wnd, p)))
		}
		fmt.Fprintf(w, "%s\t%s\n", wnd, strings.Join(fields, "\t"))
	}
}

func formatProperty(wnd *xwinprop.Window, name string) string {
	v, err := wnd.GetProperty(name)
	switch {
	case errors.Is(err, xwinprop.ErrPropertyNotFound), errors.Is(err, xwinprop.ErrNoAtomForName):
		return "<not set>"
	case err != nil:
		log.Warnf("Couldn't read %s of %s: %v", name, wnd, err)
		return "<error>"
	}
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []*xwinprop.Window:
		ids := make([]string, len(v))
		for i, child := range v {
			ids[i] = child.String()
		}
		return strings.Join(ids, ",")
	default:
		return fmt.Sprint(v)
	}
}

func fatalf(format string, args ...any) {
	log.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	log.Sync()
	os.Exit(1)
}
