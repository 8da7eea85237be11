package fvp

import "github.com/fvpkit/fvp/internal/fvptype"

// Re-export progress types.
type (
	// ProgressEvent represents a progress update during unpack or tachie
	// operations.
	ProgressEvent = fvptype.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = fvptype.ProgressStage

	// ProgressFunc receives progress updates during operations.
	// Implementations must be safe for concurrent calls.
	ProgressFunc = fvptype.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageDecoding indicates an entry has been decoded.
	StageDecoding = fvptype.StageDecoding

	// StageCompositing indicates a portrait composite is being built.
	StageCompositing = fvptype.StageCompositing

	// StageWriting indicates an entry's output files have been committed.
	StageWriting = fvptype.StageWriting
)
