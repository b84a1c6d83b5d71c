package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDay(_ *DayRecord) error       { return nil }
func (n *NoopRecorder) RecordEnding(_ *EndingRecord) error { return nil }
func (n *NoopRecorder) Close() error                       { return nil }
