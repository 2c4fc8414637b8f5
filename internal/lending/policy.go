package lending

import (
	"fmt"
	"library/internal/config"
	"library/pkg/domain"
	"maps"
	"math"

	"github.com/go-playground/validator/v10"
)

// Policy holds the numeric limits of the lending rules. It is built once at
// startup and treated as read-only afterwards.
type Policy struct {
	// MaxItemCountInOrder is the maximum number of items in a single order.
	MaxItemCountInOrder int `validate:"min=1"`
	// MaxBorrowedItemCount is the maximum number of items a user may hold.
	MaxBorrowedItemCount int `validate:"min=1"`
	// CategoryCaps limits how many items of a category a user may hold.
	// Categories without an entry are uncapped.
	CategoryCaps map[domain.ItemCategory]int `validate:"dive,min=0"`
	// MaxDaysBorrowed is the number of calendar days a loan may last before it
	// is overdue.
	MaxDaysBorrowed int `validate:"min=0"`
}

// NewPolicy builds a validated Policy from the application config.
func NewPolicy(cfg *config.Config) (Policy, error) {
	caps := make(map[domain.ItemCategory]int, len(cfg.Policy.CategoryCaps))
	for category, limit := range cfg.Policy.CategoryCaps {
		caps[domain.ItemCategory(category)] = limit
	}

	p := Policy{
		MaxItemCountInOrder:  cfg.Policy.MaxItemCountInOrder,
		MaxBorrowedItemCount: cfg.Policy.MaxBorrowedItemCount,
		CategoryCaps:         caps,
		MaxDaysBorrowed:      cfg.Policy.MaxDaysBorrowed,
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate checks that all limits are within range.
func (p Policy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid lending policy: %w", err)
	}

	return nil
}

// CategoryCap returns the holding cap of the category, or math.MaxInt when
// the category is uncapped.
func (p Policy) CategoryCap(category domain.ItemCategory) int {
	if limit, ok := p.CategoryCaps[category]; ok {
		return limit
	}

	return math.MaxInt
}

// clone returns a copy of p that shares no state with it.
func (p Policy) clone() Policy {
	p.CategoryCaps = maps.Clone(p.CategoryCaps)

	return p
}
