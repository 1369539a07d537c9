package store

// Memory is an in-memory preference store used by tests. It satisfies the
// same contract as Store.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Remove deletes the value stored under key
func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys
func (m *Memory) Len() int {
	return len(m.values)
}
