package store

import (
	"context"
	"sync"

	"github.com/roach88/contacts/internal/contact"
)

// Memory implements [Table] in process memory.
type Memory struct {
	mu   sync.Mutex
	rows map[string]contact.Contact
}

var _ Table = (*Memory)(nil)

// NewMemory creates a table holding cs.
// Later entries replace earlier ones with the same ID.
func NewMemory(cs ...contact.Contact) *Memory {
	rows := make(map[string]contact.Contact, len(cs))
	for _, c := range cs {
		rows[c.ID] = c
	}
	return &Memory{rows: rows}
}

func (m *Memory) ScanAll(ctx context.Context) ([]contact.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	contacts := make([]contact.Contact, 0, len(m.rows))
	for _, c := range m.rows {
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (contact.Contact, bool, error) {
	if err := ctx.Err(); err != nil {
		return contact.Contact{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	return c, ok, nil
}

func (m *Memory) Upsert(ctx context.Context, c contact.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.ID] = c
	return nil
}

func (m *Memory) UpdateByKey(ctx context.Context, c contact.Contact) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[c.ID]; !ok {
		return 0, nil
	}
	m.rows[c.ID] = c
	return 1, nil
}

func (m *Memory) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func (m *Memory) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.rows))
	clear(m.rows)
	return n, nil
}

// Len reports the number of stored rows.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
