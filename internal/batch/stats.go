package batch

// ProcessStats contains statistics from a batch processing operation.
type ProcessStats struct {
	// Tasks is the number of tasks that completed without error.
	Tasks int

	// Processed is the number of outputs committed to the sink.
	Processed int

	// Skipped is the number of outputs skipped (ShouldProcess returned false).
	Skipped int

	// TotalBytes is the number of bytes written to committed outputs.
	TotalBytes uint64
}

// add accumulates stats from another ProcessStats into this one.
func (s *ProcessStats) add(other ProcessStats) {
	s.Tasks += other.Tasks
	s.Processed += other.Processed
	s.Skipped += other.Skipped
	s.TotalBytes += other.TotalBytes
}
