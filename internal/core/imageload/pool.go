package imageload

import "context"

// fetchPool bounds how many fetches run at once.
type fetchPool struct {
	sem chan struct{}
}

func newFetchPool(size int) *fetchPool {
	if size <= 0 {
		size = DefaultWorkers
	}
	return &fetchPool{sem: make(chan struct{}, size)}
}

// run executes fn once a slot is free. It returns ctx.Err() without running
// fn if ctx is done first.
func (p *fetchPool) run(ctx context.Context, fn func()) error {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
		fn()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
