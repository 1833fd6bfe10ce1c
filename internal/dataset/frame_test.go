package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestFrameAppendRow(t *testing.T) {
	t.Parallel()
	f := NewFrame("open", "close")

	if err := f.AppendRow(day(2), "185.64", "185.92"); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := f.AppendRow(day(3), "184.22"); err == nil {
		t.Error("AppendRow should reject a row with the wrong arity")
	}
	if f.NumRows() != 1 || f.NumCols() != 2 {
		t.Errorf("dimensions = %dx%d, want 1x2", f.NumRows(), f.NumCols())
	}
}

func TestFrameEmpty(t *testing.T) {
	t.Parallel()
	var nilFrame *Frame
	if !nilFrame.Empty() {
		t.Error("nil frame should be empty")
	}
	if nilFrame.NumRows() != 0 || nilFrame.NumCols() != 0 {
		t.Error("nil frame should have zero dimensions")
	}

	f := NewFrame("headline")
	if !f.Empty() {
		t.Error("fresh frame should be empty")
	}
	_ = f.AppendRow(day(1), "Markets open higher")
	if f.Empty() {
		t.Error("frame with a row should not be empty")
	}
}

func TestFrameTimeRange(t *testing.T) {
	t.Parallel()

	t.Run("empty frame has no range", func(t *testing.T) {
		t.Parallel()
		if _, _, ok := NewFrame("x").TimeRange(); ok {
			t.Error("empty frame should report no time range")
		}
	})

	t.Run("range spans unordered rows", func(t *testing.T) {
		t.Parallel()
		f := NewFrame("close")
		_ = f.AppendRow(day(15), "185.92")
		_ = f.AppendRow(day(2), "185.64")
		_ = f.AppendRow(day(31), "184.40")

		min, max, ok := f.TimeRange()
		if !ok {
			t.Fatal("expected a time range")
		}
		if !min.Equal(day(2)) {
			t.Errorf("min = %v, want %v", min, day(2))
		}
		if !max.Equal(day(31)) {
			t.Errorf("max = %v, want %v", max, day(31))
		}
	})
}

func TestFrameWriteCSV(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "aapl_news_demo.csv")

	f := NewFrame("headline", "url")
	_ = f.AppendRow(day(5), "Apple announces results", "https://example.com/a")
	_ = f.AppendRow(day(6), "Analysts react", "https://example.com/b")

	if err := f.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d CSV rows, want 3 (header + 2)", len(rows))
	}
	wantHeader := []string{"datetime", "headline", "url"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][1] != "Apple announces results" {
		t.Errorf("row 1 headline = %q", rows[1][1])
	}
}

func TestResultClassification(t *testing.T) {
	t.Parallel()

	t.Run("nil frame is empty", func(t *testing.T) {
		t.Parallel()
		if got := Of(nil); got.Kind != KindEmpty {
			t.Errorf("Of(nil).Kind = %v, want empty", got.Kind)
		}
	})

	t.Run("zero-row frame is empty", func(t *testing.T) {
		t.Parallel()
		if got := Of(NewFrame("x")); got.Kind != KindEmpty {
			t.Errorf("Kind = %v, want empty", got.Kind)
		}
	})

	t.Run("populated frame is tabular with dimensions", func(t *testing.T) {
		t.Parallel()
		f := NewFrame("open", "close")
		_ = f.AppendRow(day(2), "185.64", "185.92")
		res := Of(f)
		if res.Kind != KindTabular {
			t.Fatalf("Kind = %v, want tabular", res.Kind)
		}
		rows, cols, ok := res.Dimensions()
		if !ok || rows != 1 || cols != 2 {
			t.Errorf("Dimensions() = %d, %d, %v; want 1, 2, true", rows, cols, ok)
		}
	})

	t.Run("opaque value", func(t *testing.T) {
		t.Parallel()
		res := OpaqueOf("sentiment: positive")
		if res.Kind != KindOpaque {
			t.Fatalf("Kind = %v, want opaque", res.Kind)
		}
		if _, _, ok := res.Dimensions(); ok {
			t.Error("opaque result should not expose dimensions")
		}
	})

	t.Run("nil opaque value is empty", func(t *testing.T) {
		t.Parallel()
		if got := OpaqueOf(nil); got.Kind != KindEmpty {
			t.Errorf("Kind = %v, want empty", got.Kind)
		}
	})

	t.Run("kind names", func(t *testing.T) {
		t.Parallel()
		for k, want := range map[Kind]string{KindEmpty: "empty", KindTabular: "tabular", KindOpaque: "opaque", Kind(99): "unknown"} {
			if k.String() != want {
				t.Errorf("Kind(%d).String() = %q, want %q", int(k), k.String(), want)
			}
		}
	})
}
