package memory

import (
	"sync"

	"github.com/devikapo/budget-server/internal/domain"
)

// ItemRepository is the in-memory implementation of domain.ItemRepository.
// Insertion order is preserved so merged feeds stay deterministic.
type ItemRepository struct {
	mu    sync.RWMutex
	items []*domain.Item
}

// NewItemRepository creates an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// Add stores a linked item. Relinking the same item replaces the previous
// entry in place so its credentials stay current.
func (r *ItemRepository) Add(item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ItemID == item.ItemID {
			r.items[i] = cloneItem(item)
			return nil
		}
	}
	r.items = append(r.items, cloneItem(item))
	return nil
}

// Get returns the item with the given id.
func (r *ItemRepository) Get(itemID string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ItemID == itemID {
			return cloneItem(item), nil
		}
	}
	return nil, domain.ErrItemNotFound
}

// Remove deletes the item with the given id.
func (r *ItemRepository) Remove(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ItemID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

// List returns a snapshot of all linked items in insertion order.
func (r *ItemRepository) List() []*domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Item, len(r.items))
	for i, item := range r.items {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneItem(item *domain.Item) *domain.Item {
	out := &domain.Item{
		ItemID:      item.ItemID,
		AccessToken: item.AccessToken,
	}
	if item.InstitutionID != nil {
		id := *item.InstitutionID
		out.InstitutionID = &id
	}
	if item.InstitutionName != nil {
		name := *item.InstitutionName
		out.InstitutionName = &name
	}
	return out
}
