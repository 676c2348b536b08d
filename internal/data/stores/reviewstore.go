// Package stores implements review sources backed by the SQLite database.
package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/internal/data/db"
)

// ErrBusy is returned when the database stays locked for the busy timeout.
var ErrBusy = errors.New("database is busy")

// ReviewStore serves pages of imported reviews in insertion order.
type ReviewStore struct {
	db *db.DB
}

var _ review.Provider = (*ReviewStore)(nil)

// NewReviewStore creates a store over database.
func NewReviewStore(database *db.DB) *ReviewStore {
	return &ReviewStore{db: database}
}

// Count returns the number of stored reviews.
func (s *ReviewStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", wrapBusy(err))
	}
	return n, nil
}

// Page implements review.Provider.
func (s *ReviewStore) Page(ctx context.Context, offset, limit int) (review.Page, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return review.Page{}, err
	}

	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, text, created, first_name, last_name, rating, avatar_url
		FROM reviews
		ORDER BY id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return review.Page{}, fmt.Errorf("failed to list reviews: %w", wrapBusy(err))
	}
	defer func() { _ = rows.Close() }()

	var (
		ids     []int64
		records []review.Record
	)
	for rows.Next() {
		var (
			id  int64
			rec review.Record
		)
		if err := rows.Scan(&id, &rec.Text, &rec.Created, &rec.FirstName, &rec.LastName, &rec.Rating, &rec.AvatarURL); err != nil {
			return review.Page{}, fmt.Errorf("failed to scan review: %w", err)
		}
		ids = append(ids, id)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return review.Page{}, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	photos, err := s.photos(ctx, ids)
	if err != nil {
		return review.Page{}, err
	}
	for i, id := range ids {
		records[i].PhotoURLs = photos[id]
	}

	if records == nil {
		records = []review.Record{}
	}
	return review.Page{Items: records, Count: count}, nil
}

func (s *ReviewStore) photos(ctx context.Context, ids []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Conn().QueryContext(ctx,
		`SELECT review_id, url FROM review_photos WHERE review_id IN (`+placeholders+`) ORDER BY review_id, position`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", wrapBusy(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id  int64
			url string
		)
		if err := rows.Scan(&id, &url); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		out[id] = append(out[id], url)
	}
	return out, rows.Err()
}

// Import appends records in a single transaction and returns how many were
// written.
func (s *ReviewStore) Import(ctx context.Context, records []review.Record) (int, error) {
	now := time.Now().Unix()

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for i, rec := range records {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO reviews (text, created, first_name, last_name, rating, avatar_url, imported_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.Text, rec.Created, rec.FirstName, rec.LastName, rec.Rating, rec.AvatarURL, now)
			if err != nil {
				return fmt.Errorf("failed to insert review %d: %w", i, wrapBusy(err))
			}

			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read review id: %w", err)
			}

			for pos, url := range rec.PhotoURLs {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO review_photos (review_id, position, url) VALUES (?, ?, ?)`,
					id, pos, url); err != nil {
					return fmt.Errorf("failed to insert photo for review %d: %w", i, wrapBusy(err))
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// Clear deletes every stored review.
func (s *ReviewStore) Clear(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM review_photos`); err != nil {
			return fmt.Errorf("failed to clear photos: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
			return fmt.Errorf("failed to clear reviews: %w", err)
		}
		return nil
	})
}

func wrapBusy(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_BUSY {
		return fmt.Errorf("%w: %w", ErrBusy, err)
	}
	return err
}
