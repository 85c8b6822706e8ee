// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"varanno/internal/app"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEnd(t *testing.T) {
	ev := write(t, filepath.Join(t.TempDir(), "itest.tsv"),
		"100\tA\tAA\t45\t.\n101\tA\tAC\t45\t8.1\n102\tA\t.\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--window", "1",
		"--max-sb", "5",
		ev,
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 sites, got:\n%s", out.String())
	}
	if !strings.Contains(lines[2], "HighSNVSB") {
		t.Errorf("variant site with strand bias should be filtered: %q", lines[2])
	}
}

func TestJSONLMatchesText(t *testing.T) {
	ev := write(t, filepath.Join(t.TempDir(), "par.tsv"),
		"10\tG\tGG\n11\tG\tGT\n")

	run := func(format string) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{"--output", format, ev}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	text := run("text")
	jsonl := run("jsonl")

	if !strings.Contains(text, "10\tG") || !strings.Contains(jsonl, `"pos":10`) {
		t.Fatalf("formats disagree on content:\ntext: %s\njsonl: %s", text, jsonl)
	}
	if strings.Count(jsonl, "\n") != 2 {
		t.Fatalf("jsonl should emit one object per site:\n%s", jsonl)
	}
}
