// Package tui implements the interactive review feed.
package tui

import (
	"context"
	"image"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/reviewdeck/internal/core/feed"
	"github.com/hay-kot/reviewdeck/internal/core/imageload"
	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/internal/tui/components"
	"github.com/hay-kot/reviewdeck/pkg/kv"
	"github.com/hay-kot/reviewdeck/pkg/mainloop"
)

// statusHeight is the number of lines below the list.
const statusHeight = 1

type imageState int

const (
	imagePending imageState = iota
	imageLoaded
	imageFailed
)

// Options configures the TUI.
type Options struct {
	Controller *feed.Controller
	Images     *imageload.Service
	// Queue must be the dispatcher given to Controller and Images.
	Queue  *mainloop.Queue
	Logger zerolog.Logger
}

// startMsg triggers the first page request from inside Update.
type startMsg struct{}

// dispatchMsg carries one unit of work posted by a background goroutine.
type dispatchMsg struct {
	fn func()
}

// Model is the Bubble Tea model for the review feed.
type Model struct {
	ctx     context.Context
	ctrl    *feed.Controller
	images  *imageload.Service
	queue   *mainloop.Queue
	thumbs  *thumbs
	loads   *kv.Store[string, imageState]
	keys    keyMap
	help    *components.HelpDialog
	spinner spinner.Model
	log     zerolog.Logger

	width    int
	height   int
	offset   int // first visible content line
	cursor   int // index of the selected review
	showHelp bool
	quitting bool
}

// New creates the model. ctx bounds page requests and dispatch waits.
func New(ctx context.Context, opts Options) Model {
	keys := defaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return Model{
		ctx:     ctx,
		ctrl:    opts.Controller,
		images:  opts.Images,
		queue:   opts.Queue,
		thumbs:  newThumbs(),
		loads:   kv.New[string, imageState](),
		keys:    keys,
		help:    components.NewHelpDialog("Keys", keys.bindings()),
		spinner: s,
		log:     opts.Logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForDispatch(),
		func() tea.Msg { return startMsg{} },
	)
}

// waitForDispatch blocks on the queue and hands the next posted function to
// Update.
func (m Model) waitForDispatch() tea.Cmd {
	return func() tea.Msg {
		fn, err := m.queue.Next(m.ctx)
		if err != nil {
			return nil
		}
		return dispatchMsg{fn: fn}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		m.afterMove()
		return m, nil

	case startMsg:
		m.ctrl.RequestPage(m.ctx)
		return m, nil

	case dispatchMsg:
		// Only a page that actually advanced the feed may chain into the
		// next prefetch; a failed load waits for a scroll or refresh.
		before := m.ctrl.State().Offset
		msg.fn()
		m.clampScroll()
		if m.ctrl.State().Offset > before {
			m.afterMove()
		} else if m.width > 0 {
			m.loadVisibleImages()
		}
		return m, m.waitForDispatch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	half := max(m.viewportHeight()/2, 1)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.HalfDown):
		m.scrollBy(half)
	case key.Matches(msg, m.keys.HalfUp):
		m.scrollBy(-half)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.ctrl.State().Items)-1, 0)
		m.offset = m.maxOffset()
	case key.Matches(msg, m.keys.Refresh):
		m.ctrl.RequestPage(m.ctx)
	case key.Matches(msg, m.keys.Expand):
		if it := m.selected(); it != nil && m.ctrl.Expand(it.Content.ID) {
			m.ensureCursorVisible()
		}
	default:
		return m, nil
	}

	m.afterMove()
	return m, nil
}

// afterMove runs after anything that changes what is on screen: it lets the
// controller decide on prefetching and starts loads for visible images.
func (m *Model) afterMove() {
	if m.width == 0 {
		return
	}
	m.scrollEnded()
	m.loadVisibleImages()
}

// selected returns the highlighted review, if any.
func (m Model) selected() *feed.Item {
	items := m.ctrl.State().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	return items[m.cursor]
}

func (m *Model) loadVisibleImages() {
	for _, it := range m.visibleItems() {
		res := it.ComputeLayout(m.width)
		m.loadImage(it.Content.AvatarURL)
		for i := range res.Photos {
			m.loadImage(it.Content.PhotoURLs[i])
		}
	}
}

func (m *Model) loadImage(url string) {
	if _, seen := m.loads.Get(url); seen {
		return
	}
	m.loads.Set(url, imagePending)

	loads, log := m.loads, m.log
	m.images.LoadImage(url, func(img image.Image) {
		if img == nil {
			log.Debug().Str("url", url).Msg("image unavailable")
			loads.Set(url, imageFailed)
			return
		}
		loads.Set(url, imageLoaded)
	})
}

// image returns the decoded image for url once it has loaded.
func (m Model) image(url string) (image.Image, bool) {
	if st, _ := m.loads.Get(url); st != imageLoaded {
		return nil, false
	}
	return m.images.Cache().Get(url)
}
