package widget_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

// manualTimers records scheduled callbacks so tests decide when they fire.
type manualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) widget.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{delay: d, f: f}
	m.timers = append(m.timers, t)
	return t
}

// elapse fires every timer that has not been stopped.
func (m *manualTimers) elapse() {
	m.mu.Lock()
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func (m *manualTimers) all() []*manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*manualTimer(nil), m.timers...)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, term string) (*domain.SearchResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResponse), args.Error(1)
}

type harness struct {
	input   *widget.TextInput
	results *widget.Results
	form    *widget.SubmitForm
	url     *widget.Field
	timers  *manualTimers
	search  *mockSearcher
	w       *widget.Widget

	submitted []url.Values
}

func newHarness(t *testing.T, opts ...widget.Option) *harness {
	t.Helper()

	h := &harness{
		input:   &widget.TextInput{},
		results: &widget.Results{},
		timers:  &manualTimers{},
		search:  new(mockSearcher),
	}
	h.form = widget.NewForm(func(_ context.Context, v url.Values) error {
		h.submitted = append(h.submitted, v)
		return nil
	})
	h.url = h.form.Field("url")

	opts = append([]widget.Option{widget.WithAfterFunc(h.timers.AfterFunc)}, opts...)
	w, err := widget.New(widget.Elements{
		Input:    h.input,
		Results:  h.results,
		URLField: h.url,
		Form:     h.form,
	}, h.search, opts...)
	require.NoError(t, err)
	t.Cleanup(w.Close)
	h.w = w
	return h
}

func (h *harness) typeText(s string) {
	h.input.Type(s)
	h.w.Keystroke()
}

func items(ids ...string) []domain.SearchItem {
	out := make([]domain.SearchItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.NewSearchItem(id, "title "+id))
	}
	return out
}

func TestNew_RequiresElements(t *testing.T) {
	t.Parallel()

	_, err := widget.New(widget.Elements{}, new(mockSearcher))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search input is required")
	assert.Contains(t, err.Error(), "results area is required")
	assert.Contains(t, err.Error(), "url field is required")
	assert.Contains(t, err.Error(), "form is required")
}

func TestNew_RequiresSearcher(t *testing.T) {
	t.Parallel()

	form := widget.NewForm(nil)
	_, err := widget.New(widget.Elements{
		Input:    &widget.TextInput{},
		Results:  &widget.Results{},
		URLField: form.Field("url"),
		Form:     form,
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searcher is required")
}

func TestKeystroke_ShowsLoadingAndSchedulesDefaultDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.typeText("cats")

	assert.Equal(t, widget.LoadingText, h.results.HTML())
	assert.Equal(t, widget.StatePending, h.w.State())

	timers := h.timers.all()
	require.Len(t, timers, 1)
	assert.Equal(t, widget.DefaultDelay, timers[0].delay)
	assert.Equal(t, time.Second, timers[0].delay)

	h.search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestKeystroke_BurstIssuesOneRequestWithLastValue(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "cat videos").
		Return(&domain.SearchResponse{Items: items("a")}, nil).
		Once()

	h.typeText("c")
	h.typeText("cat")
	h.typeText("cat videos")

	timers := h.timers.all()
	require.Len(t, timers, 3)
	assert.True(t, timers[0].stopped)
	assert.True(t, timers[1].stopped)
	assert.False(t, timers[2].stopped)

	h.timers.elapse()

	h.search.AssertExpectations(t)
	h.search.AssertNumberOfCalls(t, "Search", 1)
	assert.Equal(t, widget.StateRendered, h.w.State())
}

func TestKeystroke_QuietPeriodIssuesRequestPerBurst(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "first").
		Return(&domain.SearchResponse{Items: items("a")}, nil).Once()
	h.search.On("Search", mock.Anything, "second").
		Return(&domain.SearchResponse{Items: items("b")}, nil).Once()

	h.typeText("first")
	h.timers.elapse()
	h.typeText("second")
	h.timers.elapse()

	h.search.AssertExpectations(t)
	assert.Equal(t, "b", h.w.Cards()[0].ID.VideoID)
}

func TestFire_SupersededTimerDoesNothing(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.typeText("old")
	stale := h.timers.all()[0]
	h.typeText("new")

	// The stale callback can still run if it was already firing when Stop
	// was called.
	stale.f()

	h.search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	assert.Equal(t, widget.LoadingText, h.results.HTML())
}

func TestFire_ReadsInputWhenTimerFires(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "typed later").
		Return(&domain.SearchResponse{}, nil).Once()

	h.typeText("typed")
	h.input.Type("typed later")
	h.timers.elapse()

	h.search.AssertExpectations(t)
}

func TestFire_EmptyItemsLeavesEmptyResults(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "nothing").
		Return(&domain.SearchResponse{Items: []domain.SearchItem{}}, nil).Once()

	h.typeText("nothing")
	h.timers.elapse()

	assert.Empty(t, h.results.HTML())
	assert.NotContains(t, h.results.HTML(), widget.LoadingText)
	assert.Empty(t, h.w.Cards())
	assert.Equal(t, widget.StateRendered, h.w.State())
}

func TestFire_MissingItemsRendersZeroCards(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "x").Return(nil, nil).Once()

	h.typeText("x")
	h.timers.elapse()

	assert.Empty(t, h.results.HTML())
	assert.Empty(t, h.w.Cards())
}

func TestFire_ErrorFieldIsShown(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "").
		Return(&domain.SearchResponse{Error: "Not Valid!"}, nil).Once()

	h.typeText("")
	h.timers.elapse()

	assert.Equal(t, "Not Valid!", h.results.HTML())
	assert.Equal(t, widget.StateRendered, h.w.State())
}

// detailedError mimics an API error that carries a problem detail.
type detailedError struct {
	status int
	detail string
}

func (e *detailedError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.status, e.detail)
}

func (e *detailedError) Detail() string { return e.detail }

func TestFire_TransportFailureShowsMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("YouTube quota exhausted, try again later"),
			want: "YouTube quota exhausted, try again later",
		},
		{
			name: "problem detail preferred",
			err:  fmt.Errorf("searching: %w", &detailedError{status: http.StatusBadGateway, detail: "YouTube quota exhausted, try again later"}),
			want: "YouTube quota exhausted, try again later",
		},
		{
			name: "message is escaped",
			err:  errors.New("dial <tcp>: refused"),
			want: "dial &lt;tcp&gt;: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			h.search.On("Search", mock.Anything, "down").Return(nil, tt.err).Once()

			h.typeText("down")
			h.timers.elapse()

			assert.Equal(t, tt.want, h.results.HTML())
			assert.NotContains(t, h.results.HTML(), widget.LoadingText)
			assert.Empty(t, h.w.Cards())
			assert.Equal(t, widget.StateFailed, h.w.State())
		})
	}
}

func TestFire_TransportFailureClearsPreviousCards(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "ok").
		Return(&domain.SearchResponse{Items: items("a")}, nil).Once()
	h.search.On("Search", mock.Anything, "down").
		Return(nil, errors.New("connection refused")).Once()

	h.typeText("ok")
	h.timers.elapse()
	require.Len(t, h.w.Cards(), 1)

	h.typeText("down")
	h.timers.elapse()

	assert.Equal(t, "connection refused", h.results.HTML())
	assert.Empty(t, h.w.Cards())
	assert.ErrorIs(t, h.w.Activate(0), widget.ErrNoSuchCard)
}

func TestFire_OverlappingResponsesLastArrivalWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		firstBack string
		want      string
	}{
		{name: "newer response arrives last", firstBack: "one", want: "two"},
		{name: "older response arrives last", firstBack: "two", want: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			release := map[string]chan struct{}{
				"one": make(chan struct{}),
				"two": make(chan struct{}),
			}
			started := make(chan string, 2)
			for _, q := range []string{"one", "two"} {
				h.search.On("Search", mock.Anything, q).
					Run(func(mock.Arguments) {
						started <- q
						<-release[q]
					}).
					Return(&domain.SearchResponse{Items: items(q)}, nil).
					Once()
			}

			done := make(chan struct{}, 2)
			fire := func() {
				go func() {
					h.timers.elapse()
					done <- struct{}{}
				}()
			}

			h.typeText("one")
			fire()
			require.Equal(t, "one", <-started)

			// The first request is still in flight; a new burst does not cancel it.
			h.typeText("two")
			assert.Equal(t, widget.LoadingText, h.results.HTML())
			fire()
			require.Equal(t, "two", <-started)

			other := "two"
			if tt.firstBack == "two" {
				other = "one"
			}
			close(release[tt.firstBack])
			<-done
			close(release[other])
			<-done

			h.search.AssertExpectations(t)
			cards := h.w.Cards()
			require.Len(t, cards, 1)
			assert.Equal(t, tt.want, cards[0].ID.VideoID)
			assert.Contains(t, h.results.HTML(), "embed/"+tt.want)
			assert.Equal(t, widget.StateRendered, h.w.State())
		})
	}
}

func TestFire_RendersCardsInResponseOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "abc").
		Return(&domain.SearchResponse{Items: items("A", "B", "C")}, nil).Once()

	h.typeText("abc")
	h.timers.elapse()

	out := h.results.HTML()
	a := strings.Index(out, "embed/A")
	b := strings.Index(out, "embed/B")
	c := strings.Index(out, "embed/C")
	require.True(t, a >= 0 && b >= 0 && c >= 0, out)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.True(t, strings.HasPrefix(out, `<div class="row">`))
}

func TestFire_RawTitlesAreInsertedVerbatim(t *testing.T) {
	t.Parallel()

	h := newHarness(t, widget.WithRenderer(widget.NewHTMLRenderer(widget.WithRawTitles())))
	h.search.On("Search", mock.Anything, "test").Return(&domain.SearchResponse{
		Items: []domain.SearchItem{domain.NewSearchItem("xyz", "<b>Test</b>")},
	}, nil).Once()

	h.typeText("test")
	h.timers.elapse()

	assert.Contains(t, h.results.HTML(), `<p class="card-text"><b>Test</b></p>`)
}

func TestFire_TitlesEscapedByDefault(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "test").Return(&domain.SearchResponse{
		Items: []domain.SearchItem{domain.NewSearchItem("xyz", "<b>Test</b>")},
	}, nil).Once()

	h.typeText("test")
	h.timers.elapse()

	assert.NotContains(t, h.results.HTML(), "<b>Test</b>")
	assert.Contains(t, h.results.HTML(), "&lt;b&gt;Test&lt;/b&gt;")
}

func TestAdd_SetsWatchURLAndSubmits(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.w.Add("abc123"))

	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", h.url.Value())
	require.Len(t, h.submitted, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", h.submitted[0].Get("url"))
}

func TestAdd_PropagatesSubmitError(t *testing.T) {
	t.Parallel()

	input := &widget.TextInput{}
	form := widget.NewForm(func(context.Context, url.Values) error {
		return errors.New("hall not found")
	})
	w, err := widget.New(widget.Elements{
		Input:    input,
		Results:  &widget.Results{},
		URLField: form.Field("url"),
		Form:     form,
	}, new(mockSearcher))
	require.NoError(t, err)
	defer w.Close()

	err = w.Add("abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hall not found")
}

func TestActivate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.search.On("Search", mock.Anything, "q").
		Return(&domain.SearchResponse{Items: items("first", "second")}, nil).Once()

	h.typeText("q")
	h.timers.elapse()

	require.NoError(t, h.w.Activate(1))
	assert.Equal(t, "https://www.youtube.com/watch?v=second", h.url.Value())

	err := h.w.Activate(2)
	require.ErrorIs(t, err, widget.ErrNoSuchCard)
}

func TestClose_StopsPendingTimerAndIgnoresKeystrokes(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.typeText("pending")
	h.w.Close()

	assert.True(t, h.timers.all()[0].stopped)

	h.typeText("after close")
	assert.Len(t, h.timers.all(), 1)

	h.timers.all()[0].f()
	h.search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestStateHook(t *testing.T) {
	t.Parallel()

	var seen []widget.State
	h := newHarness(t, widget.WithStateHook(func(s widget.State) { seen = append(seen, s) }))
	h.search.On("Search", mock.Anything, "q").Return(&domain.SearchResponse{}, nil).Once()

	h.typeText("q")
	h.timers.elapse()

	assert.Equal(t, []widget.State{
		widget.StatePending,
		widget.StateRequesting,
		widget.StateRendered,
	}, seen)
}

type countingSearcher struct {
	calls atomic.Int32
	mu    sync.Mutex
	terms []string
}

func (c *countingSearcher) Search(_ context.Context, term string) (*domain.SearchResponse, error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.terms = append(c.terms, term)
	c.mu.Unlock()
	return &domain.SearchResponse{Items: items(term)}, nil
}

func TestWidget_RealTimerDebounce(t *testing.T) {
	t.Parallel()

	input := &widget.TextInput{}
	results := &widget.Results{}
	form := widget.NewForm(nil)
	s := &countingSearcher{}

	w, err := widget.New(widget.Elements{
		Input:    input,
		Results:  results,
		URLField: form.Field("url"),
		Form:     form,
	}, s, widget.WithDelay(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	for _, v := range []string{"g", "go", "gop", "goph", "gopher"} {
		input.Type(v)
		w.Keystroke()
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return w.State() == widget.StateRendered
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), s.calls.Load())
	s.mu.Lock()
	assert.Equal(t, []string{"gopher"}, s.terms)
	s.mu.Unlock()
	assert.Contains(t, results.HTML(), "embed/gopher")
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", widget.StateIdle.String())
	assert.Equal(t, "pending", widget.StatePending.String())
	assert.Equal(t, "requesting", widget.StateRequesting.String())
	assert.Equal(t, "rendered", widget.StateRendered.String())
	assert.Equal(t, "failed", widget.StateFailed.String())
	assert.Equal(t, "state(9)", widget.State(9).String())
}
