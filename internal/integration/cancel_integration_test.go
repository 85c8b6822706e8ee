package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"varanno/internal/app"
)

func TestCtrlC_MidStream_Exit130(t *testing.T) {
	// Biggish evidence file to ensure streaming is underway.
	fn := filepath.Join(t.TempDir(), "cancel_big.tsv")
	var sb strings.Builder
	for pos := 1; pos <= 500000; pos++ {
		fmt.Fprintf(&sb, "%d\tA\tAA\n", pos)
	}
	if err := os.WriteFile(fn, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write evidence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
