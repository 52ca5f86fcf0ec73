package repository

import (
	"auction-marketplace/internal/auction"
	"auction-marketplace/internal/auctionerrors"
	"fmt"
	"sync"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-marketplace/internal/repository CatalogStore

// CatalogStore defines the storage interface for users, active items and settled items
type CatalogStore interface {
	AddUser(user *auction.User) error
	GetUser(username string) (*auction.User, error)
	AddItem(item *auction.Item) error
	ActiveItems() []*auction.Item
	ActiveItem(index int) (*auction.Item, error)
	Archive(itemIDs ...string) int
	History() []*auction.Item
}

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogStore
type MemoryRepo struct {
	mu      sync.RWMutex
	users   map[string]*auction.User // key: username -> value: user
	active  []*auction.Item          // open or unsettled items, in listing order
	history []*auction.Item          // settled items, in settlement order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users: make(map[string]*auction.User),
	}
}

// AddUser registers a user under its username
func (r *MemoryRepo) AddUser(user *auction.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username()]; exists {
		return fmt.Errorf("add user %s: %w", user.Username(), auctionerrors.ErrDuplicateUser)
	}
	r.users[user.Username()] = user
	return nil
}

// GetUser returns the user registered under username (case-sensitive)
func (r *MemoryRepo) GetUser(username string) (*auction.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// AddItem appends an item to the active list
func (r *MemoryRepo) AddItem(item *auction.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.active {
		if existing.ID() == item.ID() {
			return fmt.Errorf("add item %s: %w - duplicate item ID", item.ID(), auctionerrors.ErrInvalidItem)
		}
	}
	r.active = append(r.active, item)
	return nil
}

// ActiveItems returns a copy of the active item list
func (r *MemoryRepo) ActiveItems() []*auction.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*auction.Item(nil), r.active...)
}

// ActiveItem returns the active item at the 0-based index
func (r *MemoryRepo) ActiveItem(index int) (*auction.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.active) {
		return nil, fmt.Errorf("get active item %d of %d: %w", index, len(r.active), auctionerrors.ErrIndexOutOfRange)
	}
	return r.active[index], nil
}

// Archive moves the given active items to history, preserving the relative
// order of the remaining active items. Unknown IDs are ignored. Returns the
// number of items moved.
func (r *MemoryRepo) Archive(itemIDs ...string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(itemIDs) == 0 {
		return 0
	}

	settle := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		settle[id] = struct{}{}
	}

	remaining := r.active[:0]
	moved := 0
	for _, item := range r.active {
		if _, ok := settle[item.ID()]; ok {
			r.history = append(r.history, item)
			moved++
			continue
		}
		remaining = append(remaining, item)
	}
	// clear the tail so archived items are not retained by the backing array
	for i := len(remaining); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = remaining
	return moved
}

// History returns a copy of the settled item list
func (r *MemoryRepo) History() []*auction.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*auction.Item(nil), r.history...)
}
