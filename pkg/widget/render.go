package widget

import (
	"bytes"
	"fmt"
	"html/template"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// Renderer turns search items into markup for the results area.
type Renderer interface {
	Render(items []domain.SearchItem) (string, error)
}

// HTMLRenderer renders items as a Bootstrap grid of embeddable video cards.
type HTMLRenderer struct {
	tmpl      *template.Template
	addAction string
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*htmlConfig)

type htmlConfig struct {
	raw       bool
	addAction string
}

// WithRawTitles inserts titles into the markup verbatim instead of escaping
// them. Titles come from the search response, so only use this when that
// markup is trusted.
func WithRawTitles() HTMLOption {
	return func(c *htmlConfig) {
		c.raw = true
	}
}

// WithAddAction makes each card's Add control a form that posts the watch URL
// (field "url") to action, so the grid works without client-side code.
func WithAddAction(action string) HTMLOption {
	return func(c *htmlConfig) {
		c.addAction = action
	}
}

const resultsTemplate = `<div class="row">` +
	`{{range .Items}}<div class="col-md-4 mt-3"><div class="card mb-4 shadow-sm">` +
	`<iframe width="100%" height="225" src="{{embedURL .ID.VideoID}}" frameborder="0" ` +
	`allow="accelerometer; autoplay; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>` +
	`<div class="card-body"><p class="card-text">{{title .Snippet.Title}}</p>` +
	`{{if $.AddAction}}<form method="post" action="{{$.AddAction}}" class="d-inline">` +
	`<input type="hidden" name="url" value="{{watchURL .ID.VideoID}}">` +
	`<button type="submit" class="btn btn-primary" data-video-id="{{.ID.VideoID}}">Add</button></form>` +
	`{{else}}<a href="#" class="btn btn-primary" data-video-id="{{.ID.VideoID}}">Add</a>{{end}}` +
	`</div></div></div>{{end}}</div>`

// NewHTMLRenderer builds the card grid renderer.
func NewHTMLRenderer(opts ...HTMLOption) *HTMLRenderer {
	cfg := &htmlConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	title := func(s string) any { return s }
	if cfg.raw {
		//nolint:gosec // verbatim titles are opt-in
		title = func(s string) any { return template.HTML(s) }
	}

	tmpl := template.Must(template.New("results").Funcs(template.FuncMap{
		"embedURL": domain.EmbedURL,
		"watchURL": domain.WatchURL,
		"title":    title,
	}).Parse(resultsTemplate))

	return &HTMLRenderer{tmpl: tmpl, addAction: cfg.addAction}
}

// Render returns the grid markup for items, in the order given.
func (r *HTMLRenderer) Render(items []domain.SearchItem) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Items     []domain.SearchItem
		AddAction string
	}{Items: items, AddAction: r.addAction}

	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering results: %w", err)
	}
	return buf.String(), nil
}

// HTML renders items and returns the markup as template.HTML for embedding
// in server-side pages.
func (r *HTMLRenderer) HTML(items []domain.SearchItem) (template.HTML, error) {
	s, err := r.Render(items)
	if err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template
	return template.HTML(s), nil
}
