// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"xwinprop"
)

type config struct {
	SizeHint       uint32
	AtomCacheSize  int
	ListProperty   string
	NameProperties []string
	Latin1Strings  bool
}

const configFile = "config.toml"

func defaultConfig() config {
	return config{
		SizeHint:       xwinprop.DefaultSizeHint,
		AtomCacheSize:  0,
		ListProperty:   "_NET_CLIENT_LIST",
		NameProperties: []string{"_NET_WM_NAME"},
		Latin1Strings:  false,
	}
}

func initializeConfigIfNot(dir string) error {
	log.Debugf("Checking if config needs to be initialized")

	ok, err := exists(dir)
	if err != nil {
		return err
	}
	if !ok {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	tomlfile := filepath.Join(dir, configFile)
	ok, err = exists(tomlfile)
	if err != nil {
		return err
	}
	if !ok {
		log.Infof("Initializing config at %s", tomlfile)
		conf := defaultConfig()
		return writeConfig(dir, &conf)
	}
	return nil
}

// readConfig starts from the defaults so keys missing from an older file
// keep a usable value.
func readConfig(dir string) (*config, error) {
	f := filepath.Join(dir, configFile)
	conf := defaultConfig()
	if _, err := toml.DecodeFile(f, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func writeConfig(dir string, conf *config) error {
	f := filepath.Join(dir, configFile)
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return err
	}
	return os.WriteFile(f, buffer.Bytes(), 0644)
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "xwinprop")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Debugf("Resolved $%s to '%s'", xdg, dir)
			return dir
		}
	}

	log.Debugf("Couldn't resolve $%s falling back to '%s'", xdg, fallback)
	return fallback
}
