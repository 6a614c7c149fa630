package state

// NopStore is used in dry-run mode. It always loads an empty state and never
// persists anything, so every posting appears new on each run.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Load() (*TrackerState, error) { return NewTrackerState(), nil }
func (s *NopStore) Save(_ *TrackerState) error   { return nil }
