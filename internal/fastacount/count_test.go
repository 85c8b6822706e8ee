package fastacount

import (
	"context"
	"strings"
	"testing"
)

func TestCountReader(t *testing.T) {
	in := ">chr1 descr\nACGT\nacgtNN\n>chr2\nNNNN\nTT\n"
	got, err := CountReader(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d contigs", len(got))
	}
	if got[0].Name != "chr1" || got[0].Known != 8 || got[0].Total != 10 {
		t.Errorf("chr1 = %+v", got[0])
	}
	if got[1].Name != "chr2" || got[1].Known != 2 || got[1].Total != 6 {
		t.Errorf("chr2 = %+v", got[1])
	}

	known, total := Totals(got)
	if known != 10 || total != 16 {
		t.Errorf("totals = %d/%d, want 10/16", known, total)
	}
}

func TestCountReaderEmpty(t *testing.T) {
	got, err := CountReader(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
