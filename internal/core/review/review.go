// Package review defines the user review records consumed by the feed and
// the providers that serve them one page at a time.
package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPage is returned when a page payload cannot be decoded.
var ErrInvalidPage = errors.New("invalid review page")

// Record is a single decoded review. Records are never mutated after decoding.
type Record struct {
	Text      string   `json:"text"`
	Created   string   `json:"created"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Rating    int      `json:"rating"`
	AvatarURL string   `json:"avatar_url"`
	PhotoURLs []string `json:"photo_urls"`
}

// AuthorName joins first and last name.
func (r Record) AuthorName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Page is one window of reviews plus the total number the server reports.
type Page struct {
	Items []Record `json:"items"`
	Count int      `json:"count"`
}

// DecodePage decodes a transport payload into a Page.
func DecodePage(data []byte) (Page, error) {
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return Page{}, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	if page.Count < 0 {
		return Page{}, fmt.Errorf("%w: negative count %d", ErrInvalidPage, page.Count)
	}
	return page, nil
}

// Window returns the slice [offset, offset+limit) of items, clamped to the
// bounds of the slice.
func Window(items []Record, offset, limit int) []Record {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit <= 0 {
		return []Record{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
