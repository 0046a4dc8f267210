package widget_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestHTMLRenderer_CardStructure(t *testing.T) {
	t.Parallel()

	out, err := widget.NewHTMLRenderer().Render([]domain.SearchItem{
		domain.NewSearchItem("dQw4w9WgXcQ", "Never Gonna Give You Up"),
	})
	require.NoError(t, err)

	doc := parse(t, out)
	require.Equal(t, 1, doc.Find("div.row").Length())

	card := doc.Find("div.row > div.col-md-4.mt-3 > div.card.mb-4.shadow-sm")
	require.Equal(t, 1, card.Length())

	iframe := card.Find("iframe")
	src, _ := iframe.Attr("src")
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", src)
	width, _ := iframe.Attr("width")
	assert.Equal(t, "100%", width)
	allow, _ := iframe.Attr("allow")
	assert.Contains(t, allow, "autoplay")
	assert.Contains(t, allow, "picture-in-picture")
	_, fullscreen := iframe.Attr("allowfullscreen")
	assert.True(t, fullscreen)

	assert.Equal(t, "Never Gonna Give You Up", card.Find("p.card-text").Text())

	add := card.Find("a.btn.btn-primary")
	assert.Equal(t, "Add", add.Text())
	id, _ := add.Attr("data-video-id")
	assert.Equal(t, "dQw4w9WgXcQ", id)
}

func TestHTMLRenderer_PreservesOrder(t *testing.T) {
	t.Parallel()

	out, err := widget.NewHTMLRenderer().Render([]domain.SearchItem{
		domain.NewSearchItem("A", "a"),
		domain.NewSearchItem("B", "b"),
		domain.NewSearchItem("C", "c"),
	})
	require.NoError(t, err)

	var ids []string
	parse(t, out).Find("[data-video-id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-video-id")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestHTMLRenderer_Empty(t *testing.T) {
	t.Parallel()

	out, err := widget.NewHTMLRenderer().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, `<div class="row"></div>`, out)
}

func TestHTMLRenderer_RawTitle(t *testing.T) {
	t.Parallel()

	items := []domain.SearchItem{domain.NewSearchItem("xyz", "<b>Test</b>")}

	raw, err := widget.NewHTMLRenderer(widget.WithRawTitles()).Render(items)
	require.NoError(t, err)
	assert.Contains(t, raw, "<b>Test</b>")

	safe, err := widget.NewHTMLRenderer().Render(items)
	require.NoError(t, err)
	assert.NotContains(t, safe, "<b>Test</b>")
	assert.Equal(t, "<b>Test</b>", parse(t, safe).Find("p.card-text").Text())
}

func TestHTMLRenderer_AddActionForm(t *testing.T) {
	t.Parallel()

	r := widget.NewHTMLRenderer(widget.WithAddAction("/halls/h1/videos"))
	out, err := r.Render([]domain.SearchItem{domain.NewSearchItem("abc123", "t")})
	require.NoError(t, err)

	doc := parse(t, out)
	form := doc.Find("form")
	require.Equal(t, 1, form.Length())
	action, _ := form.Attr("action")
	assert.Equal(t, "/halls/h1/videos", action)
	method, _ := form.Attr("method")
	assert.Equal(t, "post", method)

	val, _ := form.Find(`input[name="url"]`).Attr("value")
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", val)
	assert.Equal(t, "Add", form.Find("button").Text())
	assert.Equal(t, 0, doc.Find("a.btn").Length())
}

func TestHTMLRenderer_HTML(t *testing.T) {
	t.Parallel()

	h, err := widget.NewHTMLRenderer().HTML([]domain.SearchItem{domain.NewSearchItem("a", "b")})
	require.NoError(t, err)
	assert.Contains(t, string(h), "embed/a")
}

func TestTableRenderer(t *testing.T) {
	t.Parallel()

	out, err := widget.TableRenderer{MaxTitle: 10}.Render([]domain.SearchItem{
		domain.NewSearchItem("a1", "short"),
		domain.NewSearchItem("b2", "a title that is far too long"),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "VIDEO ID")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[1], "a1")
	assert.Contains(t, lines[1], "short")
	assert.Contains(t, lines[2], "a title...")
}

func TestResults(t *testing.T) {
	t.Parallel()

	r := &widget.Results{}
	r.SetText("<Loading>")
	assert.Equal(t, "&lt;Loading&gt;", r.HTML())

	r.Clear()
	r.Append("<div></div>")
	r.Append("<p></p>")
	assert.Equal(t, "<div></div><p></p>", r.HTML())
}

func TestSubmitForm(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nil)
	assert.Same(t, f.Field("url"), f.Field("url"))

	f.Field("url").SetValue("u")
	f.Field("title").SetValue("t")
	assert.Equal(t, "u", f.Values().Get("url"))
	assert.Equal(t, "t", f.Values().Get("title"))

	require.ErrorIs(t, f.Submit(t.Context()), widget.ErrNoSubmitter)
}
