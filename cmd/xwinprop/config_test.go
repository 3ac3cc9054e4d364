// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInitializeConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xwinprop")

	if err := initializeConfigIfNot(dir); err != nil {
		t.Fatal(err)
	}
	conf, err := readConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := defaultConfig(); !reflect.DeepEqual(*conf, want) {
		t.Errorf("got %+v, want %+v", *conf, want)
	}

	conf.SizeHint = 8
	conf.NameProperties = []string{"WM_NAME", "WM_CLASS"}
	if err := writeConfig(dir, conf); err != nil {
		t.Fatal(err)
	}
	// an existing file is left alone
	if err := initializeConfigIfNot(dir); err != nil {
		t.Fatal(err)
	}
	got, err := readConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, conf) {
		t.Errorf("got %+v, want %+v", got, conf)
	}
}

func TestReadConfig_PartialFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("AtomCacheSize = 64\n"), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := readConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if conf.AtomCacheSize != 64 {
		t.Errorf("AtomCacheSize = %d", conf.AtomCacheSize)
	}
	if conf.ListProperty != "_NET_CLIENT_LIST" || conf.SizeHint != 100 {
		t.Errorf("defaults lost: %+v", conf)
	}
}

func TestReadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("SizeHint = \"big\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(dir); err == nil {
		t.Error("expected a decode error")
	}
}

func TestXdgOrFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XWINPROP_TEST_DIR", dir)
	if got := xdgOrFallback("XWINPROP_TEST_DIR", "/fallback"); got != dir {
		t.Errorf("got %q", got)
	}
	t.Setenv("XWINPROP_TEST_DIR", filepath.Join(dir, "missing"))
	if got := xdgOrFallback("XWINPROP_TEST_DIR", "/fallback"); got != "/fallback" {
		t.Errorf("got %q", got)
	}
}
