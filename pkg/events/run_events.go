package events

// RecordCountedEvent is published after each record's tokens are counted.
type RecordCountedEvent struct {
	Ordinal int   // 1-based position among successfully counted records
	Tokens  int32 // tokens reported by the counter for this record
}

// Topic returns the event bus topic for record counted events
func (e RecordCountedEvent) Topic() string {
	return "record.counted"
}

// LineSkippedEvent is published when a malformed line is skipped.
type LineSkippedEvent struct {
	Ordinal int    // 1-based position the record would have held
	Reason  string // decode error text
}

// Topic returns the event bus topic for line skipped events
func (e LineSkippedEvent) Topic() string {
	return "line.skipped"
}
