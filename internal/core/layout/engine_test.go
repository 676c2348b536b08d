package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/reviewdeck/internal/core/content"
)

// fakeMeasurer reports a fixed number of full lines per text and counts calls.
type fakeMeasurer struct {
	lines map[string]int
	calls int
}

func (f *fakeMeasurer) Measure(t content.StyledText, maxWidth, maxLines int) Size {
	f.calls++
	if t.IsEmpty() {
		return Size{}
	}
	h, ok := f.lines[t.Text]
	if !ok {
		h = 1
	}
	if maxLines > 0 {
		h = min(h, maxLines)
	}
	return Size{W: min(len(t.Text), maxWidth), H: h}
}

func newItem(body string, photos int) *content.ItemContent {
	urls := make([]string, photos)
	for i := range urls {
		urls[i] = "https://example.com/p.jpg"
	}
	return &content.ItemContent{
		Body:      content.Plain(body),
		CreatedAt: content.Plain("1 May"),
		Author:    content.Plain("Ada Lovelace"),
		Rating:    content.Rating{Value: 4},
		PhotoURLs: urls,
		MaxLines:  content.DefaultMaxLines,
	}
}

func TestEngine_GeometryWithoutPhotos(t *testing.T) {
	e := New(&fakeMeasurer{}, DefaultMetrics())

	res := e.ComputeLayout(newItem("hello", 0), 80)

	assert.Equal(t, Rect{X: 2, Y: 1, W: 6, H: 3}, res.Avatar)
	assert.Equal(t, Rect{X: 10, Y: 1, W: 12, H: 1}, res.AuthorName)
	assert.Equal(t, Rect{X: 10, Y: 2, W: 5, H: 1}, res.Rating)
	assert.Empty(t, res.Photos)
	assert.Equal(t, Rect{X: 10, Y: 3, W: 5, H: 1}, res.Body)
	assert.False(t, res.HasShowMore)
	assert.True(t, res.ShowMore.IsZero())
	assert.Equal(t, Rect{X: 10, Y: 5, W: 5, H: 1}, res.CreatedAt)
	assert.Equal(t, 7, res.Height)
}

func TestEngine_GeometryWithPhotos(t *testing.T) {
	e := New(&fakeMeasurer{}, DefaultMetrics())

	res := e.ComputeLayout(newItem("hello", 2), 80)

	require.Len(t, res.Photos, 2)
	assert.Equal(t, Rect{X: 10, Y: 4, W: 8, H: 4}, res.Photos[0])
	assert.Equal(t, Rect{X: 19, Y: 4, W: 8, H: 4}, res.Photos[1])
	assert.Equal(t, 9, res.Body.Y)
	assert.Equal(t, 11, res.CreatedAt.Y)
	assert.Equal(t, 13, res.Height)
}

func TestEngine_PhotoCap(t *testing.T) {
	m := DefaultMetrics()

	seven := New(&fakeMeasurer{}, m).ComputeLayout(newItem("hello", 7), 80)
	five := New(&fakeMeasurer{}, m).ComputeLayout(newItem("hello", 5), 80)

	require.Len(t, seven.Photos, 5)
	for i, r := range seven.Photos {
		assert.Equal(t, 10+i*(m.PhotoSize.W+m.PhotoSpacing), r.X, "photo %d x", i)
		assert.Equal(t, seven.Photos[0].Y, r.Y, "photo %d y", i)
		assert.Equal(t, m.PhotoSize, r.Size())
	}
	assert.Equal(t, five.Height, seven.Height)
	assert.Equal(t, five.Photos, seven.Photos)
}

func TestEngine_EmptyBody(t *testing.T) {
	e := New(&fakeMeasurer{}, DefaultMetrics())

	res := e.ComputeLayout(newItem("", 0), 80)

	assert.True(t, res.Body.IsZero())
	assert.False(t, res.HasShowMore)
	assert.Equal(t, 3, res.CreatedAt.Y, "created-at follows the rating directly")
}

func TestEngine_ShowMoreBoundary(t *testing.T) {
	tests := []struct {
		name      string
		fullLines int
		maxLines  int
		want      bool
	}{
		{name: "full equals clamp", fullLines: 3, maxLines: 3, want: false},
		{name: "one line over", fullLines: 4, maxLines: 3, want: true},
		{name: "shorter than clamp", fullLines: 1, maxLines: 3, want: false},
		{name: "unlimited never shows", fullLines: 40, maxLines: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := &fakeMeasurer{lines: map[string]int{"body": tt.fullLines}}
			item := newItem("body", 0)
			item.MaxLines = tt.maxLines

			res := New(fm, DefaultMetrics()).ComputeLayout(item, 80)

			assert.Equal(t, tt.want, res.HasShowMore)
			if tt.want {
				assert.Equal(t, res.Body.MaxY()+DefaultMetrics().TextToNext, res.ShowMore.Y)
				assert.Equal(t, res.ShowMore.MaxY(), res.CreatedAt.Y)
				assert.Equal(t, len(DefaultShowMoreLabel), res.ShowMore.W)
			}
		})
	}
}

func TestEngine_CacheStability(t *testing.T) {
	fm := &fakeMeasurer{}
	e := New(fm, DefaultMetrics())
	item := newItem("hello", 3)

	first := e.ComputeLayout(item, 80)
	calls := fm.calls
	second := e.ComputeLayout(item, 80)

	assert.Same(t, first, second)
	assert.Equal(t, calls, fm.calls, "cached layout must not measure again")
	assert.True(t, e.Cached())
}

func TestEngine_WidthChangeRecomputes(t *testing.T) {
	e := New(&fakeMeasurer{}, DefaultMetrics())
	item := newItem("hello", 0)

	wide := e.ComputeLayout(item, 80)
	narrow := e.ComputeLayout(item, 40)

	assert.NotSame(t, wide, narrow)
}

func TestEngine_Invalidation(t *testing.T) {
	body := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	e := New(CellMeasurer{}, DefaultMetrics())
	item := newItem(body, 0)

	clamped := e.ComputeLayout(item, 40)
	require.True(t, clamped.HasShowMore)
	assert.Equal(t, 3, clamped.Body.H)

	item.MaxLines = 0

	// no implicit invalidation on field write
	assert.Same(t, clamped, e.ComputeLayout(item, 40))

	e.Invalidate()
	assert.False(t, e.Cached())

	expanded := e.ComputeLayout(item, 40)
	assert.NotSame(t, clamped, expanded)
	assert.False(t, expanded.HasShowMore)
	assert.Greater(t, expanded.Height, clamped.Height)
}

func TestEngine_NarrowWidthFloorsTextColumn(t *testing.T) {
	e := New(&fakeMeasurer{}, DefaultMetrics())

	res := e.ComputeLayout(newItem("hello", 0), 4)

	assert.Equal(t, 1, res.AuthorName.W)
	assert.Positive(t, res.Height)
}

func TestCountHeight(t *testing.T) {
	m := DefaultMetrics()

	h := CountHeight(CellMeasurer{}, m, content.Plain("45 reviews"), 80)
	assert.Equal(t, 1+m.Insets.Top+m.Insets.Bottom, h)
}
