package dataset

// Kind classifies a collaborator result so logging can switch exhaustively
// over the shape instead of probing attributes.
type Kind int

const (
	// KindEmpty marks a nil or zero-row result.
	KindEmpty Kind = iota
	// KindTabular marks a result carrying a non-empty Frame.
	KindTabular
	// KindOpaque marks a result of unspecified shape.
	KindOpaque
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTabular:
		return "tabular"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Result is the tagged variant for collaborator outcomes.
// Exactly one of Frame (KindTabular) or Value (KindOpaque) is meaningful;
// KindEmpty carries neither.
type Result struct {
	Kind  Kind
	Frame *Frame
	Value any
}

// Of wraps a frame as a Result, classifying nil or zero-row frames as empty.
//
// Parameters:
//   - frame: The frame, possibly nil.
//
// Returns:
//   - Result: The classified result.
func Of(frame *Frame) Result {
	if frame.Empty() {
		return Result{Kind: KindEmpty}
	}
	return Result{Kind: KindTabular, Frame: frame}
}

// OpaqueOf wraps an arbitrary value as an opaque Result. A nil value is
// classified as empty.
//
// Parameters:
//   - value: The opaque result value.
//
// Returns:
//   - Result: The classified result.
func OpaqueOf(value any) Result {
	if value == nil {
		return Result{Kind: KindEmpty}
	}
	return Result{Kind: KindOpaque, Value: value}
}

// Dimensions returns the row/column counts for tabular results.
//
// Returns:
//   - rows: The row count.
//   - cols: The column count.
//   - ok: Whether the result exposes a tabular shape.
func (r Result) Dimensions() (rows, cols int, ok bool) {
	if r.Kind != KindTabular {
		return 0, 0, false
	}
	return r.Frame.NumRows(), r.Frame.NumCols(), true
}
