package profile

import "context"

// Store is the durable home of the single user record. Load returns
// (nil, nil) when no profile has been created yet. Save replaces the
// whole record.
type Store interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, user *User) error
}

// MemoryStore keeps the user record in memory. Used in tests and when
// running without a database.
type MemoryStore struct {
	user *User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (*User, error) {
	return m.user, nil
}

func (m *MemoryStore) Save(ctx context.Context, user *User) error {
	m.user = user
	return nil
}
