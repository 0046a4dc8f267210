// Package widget implements the debounced video search widget: it waits for a
// pause in typing, queries the search endpoint, renders the results as video
// cards and turns a card's Add action into an add-video form submission.
//
// The widget owns no page elements. Callers inject the search input, the
// results area, the URL field and the form it submits, so the same widget runs
// against the in-memory elements in this package, a terminal, or a test.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const (
	// DefaultDelay is the quiet period after the last keystroke before a
	// search is issued.
	DefaultDelay = 1000 * time.Millisecond

	// LoadingText is shown in the results area while a search is pending.
	LoadingText = "Loading..."
)

// State is the widget's position in a keystroke burst.
type State int

// Widget states.
const (
	StateIdle State = iota
	StatePending
	StateRequesting
	StateRendered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateRequesting:
		return "requesting"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Searcher runs a search for a term against the search endpoint.
type Searcher interface {
	Search(ctx context.Context, term string) (*domain.SearchResponse, error)
}

// Timer is a scheduled callback that can be cancelled. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Elements groups the page elements the widget is bound to.
type Elements struct {
	Input    Input
	Results  ResultsArea
	URLField URLField
	Form     Form
}

func (e Elements) validate() error {
	var errs []error
	if e.Input == nil {
		errs = append(errs, errors.New("search input is required"))
	}
	if e.Results == nil {
		errs = append(errs, errors.New("results area is required"))
	}
	if e.URLField == nil {
		errs = append(errs, errors.New("url field is required"))
	}
	if e.Form == nil {
		errs = append(errs, errors.New("form is required"))
	}
	return errors.Join(errs...)
}

// Widget is a debounced search box bound to a set of elements. It is safe for
// concurrent use.
type Widget struct {
	el       Elements
	searcher Searcher
	renderer Renderer
	delay    time.Duration
	after    AfterFunc
	log      *slog.Logger
	onChange func(State)

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	timer  Timer
	gen    uint64
	state  State
	cards  []domain.SearchItem
	closed bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(w *Widget) {
		w.delay = d
	}
}

// WithRenderer overrides the default HTML card renderer.
func WithRenderer(r Renderer) Option {
	return func(w *Widget) {
		w.renderer = r
	}
}

// WithAfterFunc overrides how the debounce timer is scheduled. Tests use it
// to fire timers by hand.
func WithAfterFunc(f AfterFunc) Option {
	return func(w *Widget) {
		w.after = f
	}
}

// WithLogger sets the widget's logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		w.log = l
	}
}

// WithContext sets the parent context for search requests and form
// submissions. Close cancels it.
func WithContext(ctx context.Context) Option {
	return func(w *Widget) {
		w.ctx = ctx
	}
}

// WithStateHook registers f to be called, with the widget lock held, on every
// state change. f must not call back into the widget.
func WithStateHook(f func(State)) Option {
	return func(w *Widget) {
		w.onChange = f
	}
}

// New binds a widget to el, searching with s.
func New(el Elements, s Searcher, opts ...Option) (*Widget, error) {
	if err := el.validate(); err != nil {
		return nil, fmt.Errorf("binding widget: %w", err)
	}
	if s == nil {
		return nil, errors.New("binding widget: searcher is required")
	}

	w := &Widget{
		el:       el,
		searcher: s,
		delay:    DefaultDelay,
		after:    realAfterFunc,
		log:      slog.Default(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.renderer == nil {
		w.renderer = NewHTMLRenderer()
	}
	w.ctx, w.cancel = context.WithCancel(w.ctx)
	return w, nil
}

// Keystroke records that the search input changed. It cancels any pending
// search, shows the loading text and schedules a new search after the
// debounce delay. It never blocks on the network.
func (w *Widget) Keystroke() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen

	w.el.Results.SetText(LoadingText)
	w.setState(StatePending)
	w.timer = w.after(w.delay, func() { w.fire(gen) })
}

// fire runs the search for the burst identified by gen. Superseded timers
// that were already running when Keystroke stopped them return here.
func (w *Widget) fire(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	query := w.el.Input.Value()
	w.setState(StateRequesting)
	w.mu.Unlock()

	w.log.Debug("searching", "query", query)
	resp, err := w.searcher.Search(w.ctx, query)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	if err != nil {
		w.log.Warn("search failed", "query", query, "error", err)
		w.cards = nil
		w.el.Results.Clear()
		if msg := failureText(err); msg != "" {
			w.el.Results.SetText(msg)
		}
		w.setState(StateFailed)
		return
	}

	w.show(resp)
}

// detailer is implemented by errors that carry a user-facing message, such as
// an API problem detail.
type detailer interface {
	Detail() string
}

// failureText is the message shown in the results area after a failed search.
func failureText(err error) string {
	var d detailer
	if errors.As(err, &d) {
		if msg := d.Detail(); msg != "" {
			return msg
		}
	}
	return err.Error()
}

// show replaces the results area with resp. Overlapping responses are not
// sequenced: the last one to arrive wins.
func (w *Widget) show(resp *domain.SearchResponse) {
	var items []domain.SearchItem
	if resp != nil {
		items = resp.Items
	}

	w.el.Results.Clear()
	w.cards = append([]domain.SearchItem(nil), items...)

	if len(items) == 0 {
		if resp != nil && resp.Error != "" {
			w.el.Results.SetText(resp.Error)
		}
		w.setState(StateRendered)
		return
	}

	markup, err := w.renderer.Render(items)
	if err != nil {
		w.log.Error("rendering results failed", "error", err)
		w.cards = nil
		w.setState(StateFailed)
		return
	}

	w.el.Results.Append(markup)
	w.setState(StateRendered)
}

// Add writes the watch URL for videoID into the URL field and submits the
// form.
func (w *Widget) Add(videoID string) error {
	w.el.URLField.SetValue(domain.WatchURL(videoID))
	if err := w.el.Form.Submit(w.ctx); err != nil {
		return fmt.Errorf("submitting video %s: %w", videoID, err)
	}
	return nil
}

// ErrNoSuchCard is returned by Activate for an index outside the rendered
// cards.
var ErrNoSuchCard = errors.New("no such card")

// Activate triggers the Add control of the i-th rendered card (zero-based).
func (w *Widget) Activate(i int) error {
	w.mu.Lock()
	if i < 0 || i >= len(w.cards) {
		n := len(w.cards)
		w.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrNoSuchCard, i, n)
	}
	id := w.cards[i].ID.VideoID
	w.mu.Unlock()

	return w.Add(id)
}

// Cards returns the items currently rendered, in display order.
func (w *Widget) Cards() []domain.SearchItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.SearchItem(nil), w.cards...)
}

// State returns the widget's current state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Close cancels any pending search and the widget's context. Keystrokes after
// Close are ignored.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.cancel()
}

func (w *Widget) setState(s State) {
	w.state = s
	if w.onChange != nil {
		w.onChange(s)
	}
}
