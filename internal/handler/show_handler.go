package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gigboard/internal/app"
	"gigboard/internal/service"
	"gigboard/internal/view"
)

type ShowHandler struct {
	app *app.App
}

func NewShowHandler(app *app.App) *ShowHandler {
	return &ShowHandler{
		app: app,
	}
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

// Accepted start_time formats: the listing format, RFC 3339, and the
// value an <input type="datetime-local"> submits.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

func parseStartTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (h *ShowHandler) List(c *gin.Context) {
	rows, err := h.app.ShowService.GetAllShowsJoined(c.Request.Context())
	if err != nil {
		h.app.Logger.Error("list shows", zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "shows.html", gin.H{"Shows": view.ShowList(rows)})
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "new_show.html", gin.H{})
}

func (h *ShowHandler) Create(c *gin.Context) {
	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Please provide an artist id, a venue id and a start time.")
		render(c, http.StatusBadRequest, "new_show.html", gin.H{})
		return
	}
	startTime, err := parseStartTime(form.StartTime)
	if err != nil {
		flash(c, "The start time could not be understood.")
		render(c, http.StatusBadRequest, "new_show.html", gin.H{})
		return
	}
	if _, err := h.app.ShowService.CreateShow(c.Request.Context(), form.ArtistID, form.VenueID, startTime); err != nil {
		if errors.Is(err, service.ErrIntegrity) || errors.Is(err, service.ErrNotFound) {
			flash(c, "An error occurred. Show could not be listed: unknown artist or venue.")
			render(c, http.StatusBadRequest, "new_show.html", gin.H{})
			return
		}
		h.app.Logger.Error("create show",
			zap.Uint("artist_id", form.ArtistID),
			zap.Uint("venue_id", form.VenueID),
			zap.Error(err))
		flash(c, "An error occurred. Show could not be listed.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	flash(c, "Show was successfully listed!")
	c.Redirect(http.StatusSeeOther, "/")
}
