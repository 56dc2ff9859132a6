package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"gigboard/internal/app"
	"gigboard/internal/model"
	"gigboard/internal/service"
	"gigboard/internal/view"
)

type ArtistHandler struct {
	app *app.App
}

func NewArtistHandler(app *app.App) *ArtistHandler {
	return &ArtistHandler{
		app: app,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link"`
	ImageLink          string   `form:"image_link"`
	Website            string   `form:"website"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *ArtistForm) toModel(id uint) *model.Artist {
	return &model.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             pq.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue != "",
		SeekingDescription: f.SeekingDescription,
	}
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.app.ArtistService.GetAllArtists(c.Request.Context())
	if err != nil {
		h.app.Logger.Error("list artists", zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "artists.html", gin.H{"Artists": artists})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.PostForm("search_term")
	matches, err := h.app.ArtistService.SearchArtists(ctx, term)
	if err != nil {
		h.app.Logger.Error("search artists", zap.String("term", term), zap.Error(err))
		renderServerError(c)
		return
	}
	now := time.Now()
	results := view.ArtistSearchResults(matches, func(id uint) int64 {
		count, err := h.app.ArtistService.UpcomingCount(ctx, id, now)
		if err != nil {
			h.app.Logger.Error("count upcoming shows", zap.Uint("artist_id", id), zap.Error(err))
		}
		return count
	})
	render(c, http.StatusOK, "search_artists.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *ArtistHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	artist, err := h.app.ArtistService.GetArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("get artist", zap.Uint("artist_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	past, upcoming, err := h.app.ArtistService.ArtistShows(ctx, id, time.Now())
	if err != nil {
		h.app.Logger.Error("artist shows", zap.Uint("artist_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "show_artist.html", gin.H{
		"Artist": view.NewArtistDetail(artist, past, upcoming),
	})
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "new_artist.html", gin.H{"GenreChoices": GenreChoices})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Please fill in all required artist fields.")
		render(c, http.StatusBadRequest, "new_artist.html", gin.H{"GenreChoices": GenreChoices})
		return
	}
	artist := form.toModel(0)
	if err := h.app.ArtistService.CreateArtist(c.Request.Context(), artist); err != nil {
		h.app.Logger.Error("create artist", zap.String("name", form.Name), zap.Error(err))
		flash(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	flash(c, "Artist "+form.Name+" was successfully listed!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	artist, err := h.app.ArtistService.GetArtistByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("get artist", zap.Uint("artist_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "edit_artist.html", gin.H{
		"Artist":       artist,
		"GenreChoices": GenreChoices,
	})
}

func (h *ArtistHandler) Edit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Please fill in all required artist fields.")
		c.Redirect(http.StatusSeeOther, artistPath(id)+"/edit")
		return
	}
	if err := h.app.ArtistService.UpdateArtist(c.Request.Context(), form.toModel(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("update artist", zap.Uint("artist_id", id), zap.Error(err))
		flash(c, "An error occurred. Artist "+form.Name+" could not be updated.")
		c.Redirect(http.StatusSeeOther, artistPath(id))
		return
	}
	flash(c, "Artist "+form.Name+" was successfully updated!")
	c.Redirect(http.StatusSeeOther, artistPath(id))
}
