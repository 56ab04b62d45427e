package persistence

import "time"

const (
	OutcomeOK       = "ok"
	OutcomeDeclined = "declined"
)

// JournalEntry is one mutating operation as it was attempted. Entries are an
// audit trail only and are never used to restore adapter state.
type JournalEntry struct {
	ID        string        `json:"id" yaml:"id"`
	Operation string        `json:"operation" yaml:"operation"`
	Target    string        `json:"target" yaml:"target"`
	Outcome   string        `json:"outcome" yaml:"outcome"`
	Message   string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
}

type Journal interface {
	Init() error // responsible for creating tables etc.
	Record(entry JournalEntry) (JournalEntry, error)
	List(limit int) ([]JournalEntry, error)
	Close() error
}

type DummyJournal struct{}

func NewDummyJournal() DummyJournal {
	return DummyJournal{}
}

func (DummyJournal) Init() error {
	return nil
}

func (DummyJournal) Record(entry JournalEntry) (JournalEntry, error) {
	return entry, nil
}

func (DummyJournal) List(limit int) ([]JournalEntry, error) {
	return []JournalEntry{}, nil
}

func (DummyJournal) Close() error {
	return nil
}
