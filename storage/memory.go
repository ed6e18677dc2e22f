package storage

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store with the same semantics as the Mongo
// backend. It backs the unit tests and works as a local dev store.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]map[string]Item

	// Fail, when set, is consulted before every operation and lets tests
	// inject infrastructure failures per table.
	Fail func(op, table string) error
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string]map[string]Item)}
}

func (m *Memory) failure(op, table string) error {
	if m.Fail == nil {
		return nil
	}
	return m.Fail(op, table)
}

func (m *Memory) GetItem(_ context.Context, table string, key Key) (Item, error) {
	if err := m.failure("get", table); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.tables[table] {
		if s, ok := item[key.Name].(string); ok && s == key.Value {
			return copyItem(item), nil
		}
	}
	return nil, nil
}

func (m *Memory) PutItem(_ context.Context, table string, item Item) error {
	if err := m.failure("put", table); err != nil {
		return err
	}
	pk := primaryKeyField(table)
	id, _ := item[pk].(string)
	if id == "" {
		return fmt.Errorf("put %s: item missing primary key %s", table, pk)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tables[table] == nil {
		m.tables[table] = make(map[string]Item)
	}
	m.tables[table][id] = copyItem(item)
	return nil
}

func (m *Memory) UpdateItem(_ context.Context, table string, key Key, updates Item) error {
	if err := m.failure("update", table); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, item := range m.tables[table] {
		if s, ok := item[key.Name].(string); ok && s == key.Value {
			merged := copyItem(item)
			for k, v := range updates {
				merged[k] = v
			}
			m.tables[table][id] = merged
			return nil
		}
	}
	return fmt.Errorf("update %s %s=%s: no such item", table, key.Name, key.Value)
}

func (m *Memory) QueryByIndex(_ context.Context, table, _ string, keyName, keyValue string) ([]Item, error) {
	if err := m.failure("query", table); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []Item{}
	for _, item := range m.tables[table] {
		if s, ok := item[keyName].(string); ok && s == keyValue {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

func (m *Memory) ScanAll(_ context.Context, table string) ([]Item, error) {
	if err := m.failure("scan", table); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []Item{}
	for _, item := range m.tables[table] {
		items = append(items, copyItem(item))
	}
	return items, nil
}

// Count reports the number of items in a table.
func (m *Memory) Count(table string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[table])
}

func copyItem(item Item) Item {
	out := make(Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
