package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEvidence(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "evidence.tsv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunText(t *testing.T) {
	p := writeEvidence(t, "100\tA\tAA\t45\t.\n101\tA\tAC\t12\t.\n102\tA\t.\n")
	var out, errb bytes.Buffer

	code := Run([]string{"--window", "1", p}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errb.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "pos\tref") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "PASS") {
		t.Errorf("site 100 should pass: %q", lines[1])
	}
	if !strings.Contains(lines[2], "LowGQX") {
		t.Errorf("site 101 should be LowGQX-filtered: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "102\tA\t0\t0\ttrue\tPASS") {
		t.Errorf("empty site 102: %q", lines[3])
	}
}

func TestRunJSONL(t *testing.T) {
	p := writeEvidence(t, "10\tC\tCC\n")
	var out, errb bytes.Buffer
	code := Run([]string{"-o", "jsonl", "--min-gqx", "0", p}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errb.String())
	}
	if got := strings.TrimSpace(out.String()); !strings.HasPrefix(got, `{"pos":10,`) {
		t.Fatalf("jsonl output: %q", got)
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"--output", "xml", "x.tsv"}, &out, &errb); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if errb.Len() == 0 {
		t.Error("expected usage diagnostics on stderr")
	}
}

func TestRunMissingFile(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{filepath.Join(t.TempDir(), "nope.tsv")}, &out, &errb); code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}

func TestRunHelp(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"-h"}, &out, &errb); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("help text missing")
	}
}

func TestRunExamples(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"--examples"}, &out, &errb); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errb.String())
	}
	if !strings.Contains(out.String(), "quickstart") {
		t.Fatalf("examples output %q", out.String())
	}
	if !strings.Contains(out.String(), "varanno evidence.tsv") {
		t.Error("sample invocation missing")
	}
}

func TestRunMaxDepthOutOfRange(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"--max-depth", "4294967296", "x.tsv"}, &out, &errb); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run([]string{"--version"}, &out, &errb); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out.String(), "varanno version ") {
		t.Fatalf("version output %q", out.String())
	}
}
