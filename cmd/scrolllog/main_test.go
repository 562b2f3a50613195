package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrolllog/internal/config"
)

func TestRunExitCodes(t *testing.T) {
	t.Setenv("SCROLLLOG_MAX_ENTRIES", "")
	badConfig := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(badConfig, []byte("max_entries = [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cases := []struct {
		name   string
		args   []string
		want   int
		stderr string
	}{
		{name: "help", args: []string{"-h"}, want: 0},
		{name: "unknown flag", args: []string{"-nope"}, want: 2, stderr: "scrolllog:"},
		{name: "file and command", args: []string{"-f", "a.log", "--", "ls"}, want: 2, stderr: "mutually exclusive"},
		{name: "broken config", args: []string{"-config", badConfig}, want: 1, stderr: "load config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tc.args, &stdout, &stderr); got != tc.want {
				t.Fatalf("run(%v) = %d, want %d (stderr %q)", tc.args, got, tc.want, stderr.String())
			}
			if tc.stderr != "" && !strings.Contains(stderr.String(), tc.stderr) {
				t.Fatalf("stderr = %q, want %q", stderr.String(), tc.stderr)
			}
		})
	}
}

func TestRunWriteConfig(t *testing.T) {
	t.Setenv("SCROLLLOG_MAX_ENTRIES", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", path, "-max", "42", "-wrap", "-write-config"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run = %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "wrote "+path) {
		t.Fatalf("stdout = %q", stdout.String())
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxEntries != 42 || !cfg.Wrap {
		t.Fatalf("saved config = %+v", cfg)
	}
}
