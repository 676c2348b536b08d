package review

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// FileProvider serves pages from a JSON payload file on disk. The file is
// read on first use and kept in memory afterwards.
type FileProvider struct {
	path    string
	latency time.Duration

	once sync.Once
	page Page
	err  error
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider for the payload at path. A non-zero
// latency delays every page to mimic a remote source.
func NewFileProvider(path string, latency time.Duration) *FileProvider {
	return &FileProvider{path: path, latency: latency}
}

// Page returns the requested window of the file's items.
func (p *FileProvider) Page(ctx context.Context, offset, limit int) (Page, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return Page{}, p.err
	}

	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return Page{}, ctx.Err()
		}
	}

	count := p.page.Count
	if count == 0 {
		count = len(p.page.Items)
	}

	return Page{
		Items: Window(p.page.Items, offset, limit),
		Count: count,
	}, nil
}

// All returns every record in the file.
func (p *FileProvider) All() ([]Record, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return nil, p.err
	}
	return p.page.Items, nil
}

func (p *FileProvider) load() {
	data, err := os.ReadFile(p.path)
	if err != nil {
		p.err = fmt.Errorf("read reviews file: %w", err)
		return
	}

	page, err := DecodePage(data)
	if err != nil {
		p.err = fmt.Errorf("decode reviews file: %w", err)
		return
	}
	p.page = page
}
