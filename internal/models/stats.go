package models

// RunStats accumulates per-run counters for the normalization stage.
// Per-record failures are counted here rather than failing the run.
type RunStats struct {
	// Accepted is the number of raw records that normalized successfully.
	Accepted int
	// MalformedDesignators counts records dropped for an unparsable designator.
	MalformedDesignators int
	// MalformedBoxNumbers counts detachment records dropped for an
	// unparsable box number.
	MalformedBoxNumbers int
	// IncompleteRecords counts records dropped for a missing required field.
	IncompleteRecords int
	// BySource tracks accepted records per origin.
	BySource map[Origin]int
}

// NewRunStats returns a zeroed stats accumulator.
func NewRunStats() *RunStats {
	return &RunStats{
		BySource: make(map[Origin]int),
	}
}

// Dropped returns the total number of records skipped during normalization.
func (s *RunStats) Dropped() int {
	return s.MalformedDesignators + s.MalformedBoxNumbers + s.IncompleteRecords
}

// Seen returns the total number of raw records inspected.
func (s *RunStats) Seen() int {
	return s.Accepted + s.Dropped()
}
