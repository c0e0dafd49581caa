package repository

import (
	"sync"
	"time"

	"github.com/velora/content-studio/internal/model"
)

// UserStore is the append-only, process-lifetime user record store.  Records
// are never updated or deleted and ids are assigned sequentially starting at
// 1.  Email matching is exact and case-sensitive.
//
// The duplicate-email check and the insert run under a single lock so that
// two concurrent registrations with the same email can never both succeed.
// Password hashing happens in the caller, before the lock is taken, so slow
// bcrypt work never serializes unrelated requests.
type UserStore struct {
	mu      sync.RWMutex
	users   []model.User
	byEmail map[string]int // email -> index into users
	nextID  uint64
}

// NewUserStore returns an empty store.  Each test can own an isolated
// instance instead of sharing process state.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

// Create appends a new user record and returns it.  passwordHash must
// already be hashed.  Returns ErrEmailExists when the email is taken.
func (s *UserStore) Create(fullName, email, passwordHash string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return model.User{}, ErrEmailExists
	}
	u := model.User{
		ID:           s.nextID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.users = append(s.users, u)
	s.byEmail[email] = len(s.users) - 1
	return u, nil
}

// GetByEmail fetches a user by exact email match.
func (s *UserStore) GetByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byEmail[email]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return s.users[i], nil
}

// GetByID fetches a user by id.
func (s *UserStore) GetByID(id uint64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 1 || id > uint64(len(s.users)) {
		return model.User{}, ErrNotFound
	}
	// ids are assigned sequentially from 1, so the record lives at id-1
	return s.users[id-1], nil
}

// Count reports the number of stored records.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
