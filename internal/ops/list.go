package ops

import (
	"context"

	"github.com/hpungsan/tabstash/internal/store"
	"github.com/hpungsan/tabstash/internal/tab"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Limit  int // default: 20, max: 100
	Offset int // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []tab.Tab  `json:"items"`
	Pagination Pagination `json:"pagination"`
	Sort       string     `json:"sort"`
}

// List returns a page of the collection, front = newest.
func List(ctx context.Context, st *store.Store, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	offset := max(input.Offset, 0)

	tabs, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	total := len(tabs)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	items := tabs[offset:end]
	if items == nil {
		items = []tab.Tab{}
	}

	return &ListOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
			Total:   total,
		},
		Sort: "captured_at_desc",
	}, nil
}
