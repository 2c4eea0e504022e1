package stockpile

// Repository is the narrow load/save contract the ledger consumes. An absent
// collection loads as an empty list, never as an error.
//
// Writes replace a whole collection; there is no multi-collection atomicity
// beneath this contract, which is why Issue orders its two writes the way it
// does.
type Repository interface {
	LoadItems(t StockType) ([]StockItem, error)
	SaveItems(t StockType, items []StockItem) error
	LoadHistory() ([]IssueRecord, error)
	SaveHistory(records []IssueRecord) error
}

// MemoryRepository keeps all three collections in memory. It backs tests and
// makes the read-modify-write cycle of the ledger observable.
type MemoryRepository struct {
	items   map[StockType][]StockItem
	history []IssueRecord

	// FailNextSave makes the next Save call fail, to exercise abort paths.
	FailNextSave error
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[StockType][]StockItem)}
}

func (m *MemoryRepository) LoadItems(t StockType) ([]StockItem, error) {
	items := make([]StockItem, len(m.items[t]))
	copy(items, m.items[t])
	return items, nil
}

func (m *MemoryRepository) SaveItems(t StockType, items []StockItem) error {
	if err := m.failNext(); err != nil {
		return err
	}
	stored := make([]StockItem, len(items))
	copy(stored, items)
	m.items[t] = stored
	return nil
}

func (m *MemoryRepository) LoadHistory() ([]IssueRecord, error) {
	records := make([]IssueRecord, len(m.history))
	copy(records, m.history)
	return records, nil
}

func (m *MemoryRepository) SaveHistory(records []IssueRecord) error {
	if err := m.failNext(); err != nil {
		return err
	}
	stored := make([]IssueRecord, len(records))
	copy(stored, records)
	m.history = stored
	return nil
}

func (m *MemoryRepository) failNext() error {
	if err := m.FailNextSave; err != nil {
		m.FailNextSave = nil
		return err
	}
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
