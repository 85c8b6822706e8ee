package evidence

import (
	"context"
	"strings"
	"testing"

	"varanno-core/pileup"
)

func TestForEachRow(t *testing.T) {
	in := "# header comment\n" +
		"100\tA\tAA\t45.0\t0.2\n" +
		"101\tA\tAC\t12\t.\n" +
		"102\tA\t.\n"
	var rows []Row
	err := ForEachRow(context.Background(), strings.NewReader(in), func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Pos != 100 || rows[0].Ref != pileup.BaseA || len(rows[0].Calls) != 2 {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if !rows[0].HasGQX || rows[0].GQX != 45 || !rows[0].HasSB || rows[0].SB != 0.2 {
		t.Fatalf("row 0 quality fields = %+v", rows[0])
	}
	if rows[1].Calls[1].Base != pileup.BaseC || rows[1].HasSB {
		t.Fatalf("row 1 = %+v", rows[1])
	}
	if rows[2].Calls != nil || rows[2].HasGQX {
		t.Fatalf("row 2 should have no calls: %+v", rows[2])
	}
}

func TestForEachRowOrderCheck(t *testing.T) {
	in := "100\tA\tAA\n100\tA\tAC\n"
	err := ForEachRow(context.Background(), strings.NewReader(in), func(Row) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "not ascending") {
		t.Fatalf("expected ordering error, got %v", err)
	}
}

func TestForEachRowBadField(t *testing.T) {
	for _, in := range []string{
		"abc\tA\tAA\n",
		"100\tAT\tAA\n",
		"100\tA\tAA\tx\n",
		"100\n",
	} {
		err := ForEachRow(context.Background(), strings.NewReader(in), func(Row) error { return nil })
		if err == nil {
			t.Errorf("input %q: expected parse error", in)
		}
	}
}
