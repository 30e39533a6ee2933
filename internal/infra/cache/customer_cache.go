package cache

import (
	"sync"

	"solar-dispatch/internal/domain/customer"

	"github.com/google/uuid"
)

// CustomerCache holds the latest known snapshot of every customer. Snapshots
// are immutable, so readers get shared pointers without copying.
type CustomerCache struct {
	mu     sync.RWMutex
	loaded bool
	byID   map[uuid.UUID]*customer.Customer
	order  []uuid.UUID
}

func NewCustomerCache() *CustomerCache {
	return &CustomerCache{byID: make(map[uuid.UUID]*customer.Customer)}
}

// Loaded reports whether ReplaceAll has run at least once.
func (c *CustomerCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *CustomerCache) All() []*customer.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*customer.Customer, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *CustomerCache) Get(id uuid.UUID) (*customer.Customer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.byID[id]
	return v, ok
}

func (c *CustomerCache) Put(v *customer.Customer) {
	if v == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(v)
}

func (c *CustomerCache) ReplaceAll(cs []*customer.Customer) {
	byID := make(map[uuid.UUID]*customer.Customer, len(cs))
	order := make([]uuid.UUID, 0, len(cs))
	for _, v := range cs {
		if v == nil {
			continue
		}
		if _, dup := byID[v.ID()]; !dup {
			order = append(order, v.ID())
		}
		byID[v.ID()] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = byID
	c.order = order
	c.loaded = true
}

// Restore swaps previous back in only while expected is still cached, so a
// later write that already replaced expected wins over the rollback.
func (c *CustomerCache) Restore(id uuid.UUID, expected, previous *customer.Customer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.byID[id] != expected {
		return false
	}
	if previous == nil {
		delete(c.byID, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return true
	}
	c.put(previous)
	return true
}

func (c *CustomerCache) put(v *customer.Customer) {
	if _, ok := c.byID[v.ID()]; !ok {
		c.order = append(c.order, v.ID())
	}
	c.byID[v.ID()] = v
}
