package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Repository persists UserMemory by user id. Get returns a fresh empty
// memory when the user has none yet.
type Repository interface {
	Get(ctx context.Context, userID string) (*UserMemory, error)
	Save(ctx context.Context, m *UserMemory) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Get(ctx context.Context, userID string) (*UserMemory, error) {
	query := `SELECT memory FROM user_memories WHERE user_id = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return NewUserMemory(userID), nil
	}
	if err != nil {
		return nil, err
	}

	m := NewUserMemory(userID)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user memory: %w", err)
		}
	}
	m.UserID = userID
	return m, nil
}

func (r *postgresRepo) Save(ctx context.Context, m *UserMemory) error {
	m.UpdatedAt = time.Now()
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_memories (user_id, memory, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			memory = $2,
			updated_at = $3
	`
	_, err = r.db.ExecContext(ctx, query, m.UserID, raw, m.UpdatedAt)
	return err
}

// memoryRepo keeps everything in-process; used in tests and when the
// server runs without a database.
type memoryRepo struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryRepository() Repository {
	return &memoryRepo{items: map[string][]byte{}}
}

func (r *memoryRepo) Get(_ context.Context, userID string) (*UserMemory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.items[userID]
	if !ok {
		return NewUserMemory(userID), nil
	}
	m := NewUserMemory(userID)
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memoryRepo) Save(_ context.Context, m *UserMemory) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[m.UserID] = raw
	return nil
}
