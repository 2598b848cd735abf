package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "apply") {
		t.Errorf("help output missing apply subcommand:\n%s", stdout.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("run(bogus) = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), `unknown command "bogus"`) {
		t.Errorf("stderr = %q, want unknown command message", stderr.String())
	}
}

func TestRun_InvalidColorFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"list", "--color", "sometimes"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "invalid --color") {
		t.Errorf("stderr = %q, want invalid --color message", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run(version) = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "schemactl dev") {
		t.Errorf("version output = %q", stdout.String())
	}
}
