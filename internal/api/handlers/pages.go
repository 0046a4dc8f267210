package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

// AddVideoForm is the add-video form posted from the hall pages.
type AddVideoForm struct {
	URL string `form:"url" validate:"required,url,max=200"`
}

// CreateHallForm is the create-hall form posted from the dashboard.
type CreateHallForm struct {
	Title string `form:"title" validate:"required,max=255"`
	Owner string `form:"owner" validate:"max=150"`
}

// PagesHandler serves the server-rendered HTML pages.
type PagesHandler struct {
	store    store.Store
	adder    VideoAdder
	searcher Searcher
	validate *validator.Validate
	log      *slog.Logger
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(s store.Store, a VideoAdder, srch Searcher, log *slog.Logger) *PagesHandler {
	return &PagesHandler{
		store:    s,
		adder:    a,
		searcher: srch,
		validate: validator.New(),
		log:      log,
	}
}

type homePage struct {
	Halls []domain.Hall
}

type dashboardPage struct {
	Owner string
	Halls []domain.Hall
	Error string
}

type hallPage struct {
	Hall *domain.Hall
}

type addVideoPage struct {
	Hall        *domain.Hall
	SearchTerm  string
	Results     template.HTML
	SearchError string
	URL         string
	Error       string
}

// Home lists the three newest halls.
func (h *PagesHandler) Home(c echo.Context) error {
	halls, _, err := h.store.ListHalls(c.Request().Context(), &store.HallQuery{Limit: recentHalls})
	if err != nil {
		return h.fail(c, "listing recent halls", err)
	}
	return c.Render(http.StatusOK, "home", homePage{Halls: halls})
}

// Dashboard lists halls, optionally only those of ?owner=.
func (h *PagesHandler) Dashboard(c echo.Context) error {
	return h.renderDashboard(c, http.StatusOK, c.QueryParam("owner"), "")
}

func (h *PagesHandler) renderDashboard(c echo.Context, status int, owner, formErr string) error {
	q := &store.HallQuery{}
	if owner != "" {
		q.Owner = &owner
	}
	halls, _, err := h.store.ListHalls(c.Request().Context(), q)
	if err != nil {
		return h.fail(c, "listing halls", err)
	}
	return c.Render(status, "dashboard", dashboardPage{Owner: owner, Halls: halls, Error: formErr})
}

// CreateHall handles the dashboard's create-hall form.
func (h *PagesHandler) CreateHall(c echo.Context) error {
	var form CreateHallForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := h.validate.Struct(form); err != nil {
		return h.renderDashboard(c, http.StatusUnprocessableEntity, form.Owner, "Title must be 1 to 255 characters")
	}

	hall := &domain.Hall{Title: form.Title, Owner: form.Owner}
	if err := h.store.CreateHall(c.Request().Context(), hall); err != nil {
		return h.fail(c, "creating hall", err)
	}
	return c.Redirect(http.StatusSeeOther, "/halls/"+hall.ID)
}

// Hall shows a hall with its videos embedded.
func (h *PagesHandler) Hall(c echo.Context) error {
	hall, err := h.hall(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "hall", hallPage{Hall: hall})
}

// AddVideo shows the add-video page. With ?search_term= it runs the search
// and renders the results as cards whose Add buttons post to the hall.
func (h *PagesHandler) AddVideo(c echo.Context) error {
	hall, err := h.hall(c)
	if err != nil {
		return err
	}

	page := addVideoPage{Hall: hall, SearchTerm: c.QueryParam("search_term")}
	if c.QueryParams().Has("search_term") {
		h.search(c, &page)
	}
	return c.Render(http.StatusOK, "add_video", page)
}

func (h *PagesHandler) search(c echo.Context, page *addVideoPage) {
	resp, err := h.searcher.Search(c.Request().Context(), page.SearchTerm)
	switch {
	case errors.Is(err, youtube.ErrQuotaExhausted):
		page.SearchError = "YouTube quota exhausted, try again later"
		return
	case errors.Is(err, youtube.ErrRateLimited):
		page.SearchError = RateLimitedMessage
		return
	case err != nil:
		h.log.WarnContext(c.Request().Context(), "search failed", "term", page.SearchTerm, "error", err)
		page.SearchError = "Search is unavailable right now"
		return
	case resp == nil:
		return
	case len(resp.Items) == 0 && resp.Error != "":
		page.SearchError = resp.Error
		return
	}

	r := widget.NewHTMLRenderer(widget.WithAddAction("/halls/" + page.Hall.ID + "/videos"))
	html, err := r.HTML(resp.Items)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "rendering results", "error", err)
		return
	}
	page.Results = html
}

// SubmitVideo handles the add-video form and redirects to the hall.
func (h *PagesHandler) SubmitVideo(c echo.Context) error {
	hall, err := h.hall(c)
	if err != nil {
		return err
	}

	var form AddVideoForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	invalid := func() error {
		return c.Render(http.StatusUnprocessableEntity, "add_video", addVideoPage{
			Hall:  hall,
			URL:   form.URL,
			Error: InvalidVideoURLMessage,
		})
	}
	if err := h.validate.Struct(form); err != nil {
		return invalid()
	}

	if _, err := h.adder.AddVideo(c.Request().Context(), hall.ID, form.URL); err != nil {
		switch {
		case errors.Is(err, youtube.ErrInvalidURL):
			return invalid()
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "hall not found")
		default:
			return h.fail(c, "adding video", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/halls/"+hall.ID)
}

// DeleteVideo handles a hall page's remove button.
func (h *PagesHandler) DeleteVideo(c echo.Context) error {
	id := c.Param("id")
	err := h.store.DeleteVideo(c.Request().Context(), id, c.Param("video_id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "video not found")
	case err != nil:
		return h.fail(c, "deleting video", err)
	}
	return c.Redirect(http.StatusSeeOther, "/halls/"+id)
}

func (h *PagesHandler) hall(c echo.Context) (*domain.Hall, error) {
	hall, err := h.store.GetHall(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "hall not found")
	}
	if err != nil {
		return nil, h.fail(c, "loading hall", err)
	}
	return hall, nil
}

func (h *PagesHandler) fail(c echo.Context, what string, err error) error {
	h.log.ErrorContext(c.Request().Context(), what, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, what+" failed")
}

// RegisterPageRoutes registers the HTML pages on e and installs the template
// renderer.
func RegisterPageRoutes(e *echo.Echo, t *Templates, h *PagesHandler) {
	e.Renderer = t

	e.GET("/", h.Home)
	e.GET("/dashboard", h.Dashboard)
	e.POST("/halls", h.CreateHall)
	e.GET("/halls/:id", h.Hall)
	e.GET("/halls/:id/add", h.AddVideo)
	e.POST("/halls/:id/videos", h.SubmitVideo)
	e.POST("/halls/:id/videos/:video_id/delete", h.DeleteVideo)
}
