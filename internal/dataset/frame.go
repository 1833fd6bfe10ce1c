package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Frame is a lightweight column-oriented table: a fixed column set, string
// cell values, and an optional per-row timestamp index. It is the shared
// shape for price series and news rows.
type Frame struct {
	// Columns names the value columns, in order.
	Columns []string
	// Index holds the per-row timestamps. Empty when rows are unindexed;
	// otherwise it has exactly one entry per record.
	Index []time.Time
	// Records holds the rows; each row has one cell per column.
	Records [][]string
}

// NewFrame creates an empty frame with the given column set.
//
// Parameters:
//   - columns: The value column names.
//
// Returns:
//   - *Frame: The empty frame.
func NewFrame(columns ...string) *Frame {
	return &Frame{Columns: columns}
}

// AppendRow adds a timestamped row. The number of values must match the
// column set.
//
// Parameters:
//   - ts: The row timestamp (zero value for unindexed data).
//   - values: One cell per column.
//
// Returns:
//   - error: An error if the arity does not match the column set.
func (f *Frame) AppendRow(ts time.Time, values ...string) error {
	if len(values) != len(f.Columns) {
		return fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.Columns))
	}
	f.Index = append(f.Index, ts)
	f.Records = append(f.Records, values)
	return nil
}

// NumRows returns the number of rows. A nil frame has zero rows.
func (f *Frame) NumRows() int {
	if f == nil {
		return 0
	}
	return len(f.Records)
}

// NumCols returns the number of value columns. A nil frame has zero columns.
func (f *Frame) NumCols() int {
	if f == nil {
		return 0
	}
	return len(f.Columns)
}

// Empty reports whether the frame is nil or holds no rows.
func (f *Frame) Empty() bool {
	return f.NumRows() == 0
}

// TimeRange returns the minimum and maximum index timestamps. ok is false
// when the frame is empty or unindexed.
//
// Returns:
//   - min: The earliest timestamp.
//   - max: The latest timestamp.
//   - ok: Whether the frame had an index to inspect.
func (f *Frame) TimeRange() (min, max time.Time, ok bool) {
	if f == nil || len(f.Index) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = f.Index[0], f.Index[0]
	for _, ts := range f.Index[1:] {
		if ts.Before(min) {
			min = ts
		}
		if ts.After(max) {
			max = ts
		}
	}
	return min, max, true
}

// WriteCSV writes the frame to path as CSV, creating parent directories as
// needed. Indexed frames gain a leading "datetime" column in RFC 3339 format.
//
// Parameters:
//   - path: The destination file path.
//
// Returns:
//   - error: An error if the file cannot be written.
func (f *Frame) WriteCSV(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	indexed := len(f.Index) == len(f.Records) && len(f.Index) > 0

	header := f.Columns
	if indexed {
		header = append([]string{"datetime"}, f.Columns...)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range f.Records {
		row := record
		if indexed {
			row = append([]string{f.Index[i].Format(time.RFC3339)}, record...)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}
