package fvptype

// ProgressEvent represents a progress update during unpack or tachie
// operations.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Path is the archive entry or output file currently being processed.
	Path string

	// Done is the number of units completed.
	Done int

	// Total is the total number of units. Zero indicates it is unknown.
	Total int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

const (
	// StageDecoding indicates an entry has been decoded.
	StageDecoding ProgressStage = iota

	// StageCompositing indicates a tachie composite is being built.
	StageCompositing

	// StageWriting indicates an output file has been committed.
	StageWriting
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageDecoding:
		return "decoding"
	case StageCompositing:
		return "compositing"
	case StageWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations.
// Implementations must be safe for concurrent calls.
type ProgressFunc func(ProgressEvent)
