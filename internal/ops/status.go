package ops

import (
	"context"

	"github.com/hpungsan/tabstash/internal/store"
)

// StatusOutput describes the current tier and capacity.
type StatusOutput struct {
	Count int  `json:"count"`
	Pro   bool `json:"pro"`
	Limit int  `json:"limit"`
	// Remaining is the free-tier headroom; -1 means unlimited (Pro).
	Remaining int `json:"remaining"`
}

// Status reports the collection size and tier entitlement.
func Status(ctx context.Context, st *store.Store) (*StatusOutput, error) {
	tabs, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	pro, err := st.ProStatus(ctx)
	if err != nil {
		return nil, err
	}

	remaining := -1
	if !pro {
		remaining = st.FreeLimit() - len(tabs)
		if remaining < 0 {
			remaining = 0
		}
	}

	return &StatusOutput{
		Count:     len(tabs),
		Pro:       pro,
		Limit:     st.FreeLimit(),
		Remaining: remaining,
	}, nil
}

// SetProInput contains parameters for the SetPro operation.
type SetProInput struct {
	Enabled bool
}

// SetProOutput contains the result of the SetPro operation.
type SetProOutput struct {
	Pro bool `json:"pro"`
}

// SetPro toggles the unlimited-capacity entitlement.
func SetPro(ctx context.Context, st *store.Store, input SetProInput) (*SetProOutput, error) {
	if err := st.SetProStatus(ctx, input.Enabled); err != nil {
		return nil, err
	}
	return &SetProOutput{Pro: input.Enabled}, nil
}
