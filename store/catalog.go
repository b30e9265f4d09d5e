package store

import (
	"sync"

	"github.com/anashany189-droid/ShareEstate1/models"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

// Catalog holds the investable properties for the session. Properties are
// created at seed time and never deleted; only FundedAmount and the derived
// Status move, and only through ApplyFunding.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.Property
}

func NewCatalog(properties []models.Property) *Catalog {
	c := &Catalog{byID: make(map[string]*models.Property, len(properties))}
	for i := range properties {
		p := properties[i]
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = &p
	}
	return c
}

// List returns all properties in insertion order.
func (c *Catalog) List() []models.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Property, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// FindByID looks a property up by id. Absence is not an error; callers
// decide what a miss means.
func (c *Catalog) FindByID(id string) (models.Property, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	if !ok {
		return models.Property{}, false
	}
	return *p, true
}

// ApplyFunding increases the property's funded amount and recomputes the
// derived status: once FundedAmount reaches TotalPrice the property is
// Completed. Returns ErrNotFound when the id does not resolve.
func (c *Catalog) ApplyFunding(id string, amount float64) (models.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.byID[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	p.FundedAmount = utils.RoundFloat(p.FundedAmount+amount, 2)
	if p.Status == models.StatusFunding && p.FundedAmount >= p.TotalPrice {
		p.Status = models.StatusCompleted
	}
	return *p, nil
}
