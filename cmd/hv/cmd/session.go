package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/RaviKishore94/hofvidz-3.0project/pkg/logger"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

const sessionHelp = `Type a search term and pause; results appear after the debounce delay.
  :add N   add result N to the hall
  :help    show this help
  :quit    leave the session
`

// errQuit ends a session.
var errQuit = errors.New("quit")

// session hosts the search widget in a line-oriented terminal: each line
// typed replaces the search input and counts as a keystroke.
type session struct {
	w       *widget.Widget
	input   *widget.TextInput
	results *widget.Results
	hallID  string

	outMu sync.Mutex
	out   io.Writer
}

type sessionConfig struct {
	hallID string
	delay  time.Duration
	submit widget.SubmitFunc
}

func newSession(ctx context.Context, s widget.Searcher, cfg sessionConfig, out io.Writer) (*session, error) {
	sess := &session{
		input:   &widget.TextInput{},
		results: &widget.Results{},
		hallID:  cfg.hallID,
		out:     out,
	}

	form := widget.NewForm(cfg.submit)
	opts := []widget.Option{
		widget.WithRenderer(widget.TableRenderer{}),
		widget.WithLogger(logger.Discard()),
		widget.WithContext(ctx),
		widget.WithStateHook(sess.onState),
	}
	if cfg.delay > 0 {
		opts = append(opts, widget.WithDelay(cfg.delay))
	}

	w, err := widget.New(widget.Elements{
		Input:    sess.input,
		Results:  sess.results,
		URLField: form.Field("url"),
		Form:     form,
	}, s, opts...)
	if err != nil {
		return nil, err
	}
	sess.w = w
	return sess, nil
}

// onState runs under the widget's lock, so it only reads the elements.
func (s *session) onState(st widget.State) {
	switch st {
	case widget.StatePending:
		s.printf("%s\n", widget.LoadingText)
	case widget.StateRendered:
		text := html.UnescapeString(s.results.HTML())
		if strings.TrimSpace(text) == "" {
			text = "No results.\n"
		}
		s.printf("%s", ensureNewline(text))
	case widget.StateFailed:
		msg := strings.TrimSpace(html.UnescapeString(s.results.HTML()))
		if msg == "" {
			s.printf("Search failed.\n")
			return
		}
		s.printf("Search failed: %s\n", msg)
	}
}

func (s *session) printf(format string, args ...any) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// run reads lines from in until EOF or :quit.
func (s *session) run(in io.Reader) error {
	defer s.w.Close()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := s.handle(sc.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			s.printf("error: %v\n", err)
		}
	}
	return sc.Err()
}

func (s *session) handle(line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch cmd {
	case ":quit", ":q":
		return errQuit
	case ":help":
		s.printf("%s", sessionHelp)
		return nil
	case ":add":
		return s.add(arg)
	}

	s.input.Type(line)
	s.w.Keystroke()
	return nil
}

func (s *session) add(arg string) error {
	if s.hallID == "" {
		return errors.New("no hall selected, restart with --hall")
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return fmt.Errorf("usage: :add N")
	}
	return s.w.Activate(n - 1)
}

// added reports a video the form submission stored.
func (s *session) added(v *domain.Video) {
	title := v.Title
	if title == "" {
		title = v.YouTubeID
	}
	s.printf("Added %q to the hall.\n", title)
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
