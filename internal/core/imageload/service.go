// Package imageload resolves image URLs to decoded images, fronting the
// network with an in-memory cache and delivering results on the owning
// goroutine through a mainloop.Dispatcher.
package imageload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/url"
	"sync"

	// decoders available to image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/hay-kot/reviewdeck/pkg/mainloop"
)

// DefaultWorkers is the default number of concurrent fetches.
const DefaultWorkers = 4

// Completion receives the loaded image, or nil when loading failed.
type Completion func(img image.Image)

// Options tunes a Service.
type Options struct {
	// Workers bounds concurrent fetches. Zero uses DefaultWorkers.
	Workers int
	// Coalesce shares one fetch between identical in-flight URLs. Every
	// caller still receives its own completion.
	Coalesce bool
}

// Service loads images. Completions for fetched images are delivered
// through the dispatcher; malformed URLs and cache hits complete
// synchronously on the calling goroutine. Each LoadImage call completes
// exactly once. Failed loads are not cached and not retried.
type Service struct {
	ctx        context.Context
	cache      *Cache
	fetcher    Fetcher
	dispatcher mainloop.Dispatcher
	pool       *fetchPool
	group      *singleflight.Group
	log        zerolog.Logger

	wg sync.WaitGroup
}

// NewService creates a service. All fetches run under ctx; there is no
// per-request cancellation.
func NewService(ctx context.Context, cache *Cache, fetcher Fetcher, dispatcher mainloop.Dispatcher, logger zerolog.Logger, opts Options) *Service {
	s := &Service{
		ctx:        ctx,
		cache:      cache,
		fetcher:    fetcher,
		dispatcher: dispatcher,
		pool:       newFetchPool(opts.Workers),
		log:        logger,
	}
	if opts.Coalesce {
		s.group = &singleflight.Group{}
	}
	return s
}

// Cache returns the backing cache.
func (s *Service) Cache() *Cache {
	return s.cache
}

// LoadImage resolves rawURL and calls onComplete with the result.
func (s *Service) LoadImage(rawURL string, onComplete Completion) {
	if !ValidURL(rawURL) {
		s.log.Debug().Str("url", rawURL).Msg("malformed image url")
		onComplete(nil)
		return
	}

	if img, ok := s.cache.Get(rawURL); ok {
		onComplete(img)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var img image.Image
		err := s.pool.run(s.ctx, func() {
			img = s.fetch(rawURL)
		})
		if err != nil {
			s.log.Debug().Err(err).Str("url", rawURL).Msg("image fetch not started")
		}

		s.dispatcher.Dispatch(func() { onComplete(img) })
	}()
}

// Wait blocks until every in-flight load has handed its completion to the
// dispatcher.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) fetch(rawURL string) image.Image {
	if s.group == nil {
		img, _ := s.fetchAndStore(rawURL)
		return img
	}

	v, _, _ := s.group.Do(rawURL, func() (any, error) {
		return s.fetchAndStore(rawURL)
	})
	img, _ := v.(image.Image)
	return img
}

func (s *Service) fetchAndStore(rawURL string) (image.Image, error) {
	data, err := s.fetcher.Fetch(s.ctx, rawURL)
	if err != nil {
		s.log.Debug().Err(err).Str("url", rawURL).Msg("image fetch failed")
		return nil, err
	}

	img, err := Decode(data)
	if err != nil {
		s.log.Debug().Err(err).Str("url", rawURL).Msg("image decode failed")
		return nil, err
	}

	s.cache.Set(rawURL, img)
	s.log.Debug().Str("url", rawURL).Int("bytes", len(data)).Msg("image cached")
	return img, nil
}

// Decode decodes image bytes in any registered format.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode image: empty data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ValidURL reports whether raw is an absolute http(s) URL with a host.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
