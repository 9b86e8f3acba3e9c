package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/store"
)

// RemoveInput contains parameters for the Remove operation.
type RemoveInput struct {
	ID string
}

// RemoveOutput contains the result of the Remove operation.
type RemoveOutput struct {
	ID string `json:"id"`
}

// Remove discards a tab by identifier. An unknown id is a no-op.
func Remove(ctx context.Context, st *store.Store, input RemoveInput) (*RemoveOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	if err := st.Remove(ctx, id); err != nil {
		return nil, err
	}

	return &RemoveOutput{ID: id}, nil
}

// OpenInput contains parameters for the Open operation.
type OpenInput struct {
	ID string
}

// OpenOutput contains the result of the Open operation.
type OpenOutput struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Open resolves a tab's URL for opening and removes the item: revisiting
// a saved tab consumes it.
func Open(ctx context.Context, st *store.Store, input OpenInput) (*OpenOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	item, err := st.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := st.Remove(ctx, id); err != nil {
		return nil, err
	}

	return &OpenOutput{ID: id, URL: item.URL}, nil
}
