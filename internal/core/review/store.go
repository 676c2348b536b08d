package review

import "context"

// Provider serves pages of reviews.
type Provider interface {
	// Page returns the records in [offset, offset+limit) along with the total
	// count the backing source reports. Transport and decode failures are
	// returned as errors.
	Page(ctx context.Context, offset, limit int) (Page, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, offset, limit int) (Page, error)

// Page calls f.
func (f ProviderFunc) Page(ctx context.Context, offset, limit int) (Page, error) {
	return f(ctx, offset, limit)
}
