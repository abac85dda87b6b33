package catalog

import (
	"fmt"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/validation"
)

// Catalog is a read-only pool of item definitions in authored order
type Catalog struct {
	items []domain.ItemDefinition
	byID  map[string]int
}

// New validates the definitions and builds a catalog over a private copy of them
func New(items []domain.ItemDefinition) (*Catalog, error) {
	v := validation.NewStructValidator()

	c := &Catalog{
		items: make([]domain.ItemDefinition, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for i, item := range items {
		if err := v.ValidateStruct(item); err != nil {
			if item.ID == "" {
				return nil, fmt.Errorf(ErrFmtItemAtIndex, domain.ErrInvalidConfig, i, validation.Summarize(err))
			}
			return nil, fmt.Errorf(ErrFmtItemInvalid, domain.ErrInvalidConfig, item.ID, validation.Summarize(err))
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, domain.ErrDuplicateItemID, item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// Items returns a copy of every definition in authored order
func (c *Catalog) Items() []domain.ItemDefinition {
	return append([]domain.ItemDefinition(nil), c.items...)
}

// Get looks up a definition by id
func (c *Catalog) Get(id string) (domain.ItemDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ItemDefinition{}, false
	}
	return c.items[i], true
}

// EligibleFor returns the items whose availability window contains zone, in authored order.
// Bomb-typed definitions are excluded; bombs are placed by slice count, not drawn.
func (c *Catalog) EligibleFor(zone int) []domain.ItemDefinition {
	var out []domain.ItemDefinition
	for _, item := range c.items {
		if item.Type == domain.ItemTypeBomb {
			continue
		}
		if item.AvailableIn(zone) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.items)
}
