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

type VenueHandler struct {
	app *app.App
}

func NewVenueHandler(app *app.App) *VenueHandler {
	return &VenueHandler{
		app: app,
	}
}

// VenueForm is the typed payload of the create and edit endpoints.
// Checkbox fields arrive as strings; presence means checked.
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link"`
	ImageLink          string   `form:"image_link"`
	Website            string   `form:"website"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *VenueForm) toModel(id uint) *model.Venue {
	return &model.Venue{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             pq.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent != "",
		SeekingDescription: f.SeekingDescription,
	}
}

func (h *VenueHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	groups, err := h.app.VenueService.VenuesByLocation(ctx)
	if err != nil {
		h.app.Logger.Error("list venues", zap.Error(err))
		renderServerError(c)
		return
	}
	now := time.Now()
	areas := view.VenueGroups(groups, func(id uint) int64 {
		count, err := h.app.VenueService.UpcomingCount(ctx, id, now)
		if err != nil {
			h.app.Logger.Error("count upcoming shows", zap.Uint("venue_id", id), zap.Error(err))
		}
		return count
	})
	render(c, http.StatusOK, "venues.html", gin.H{"Areas": areas})
}

func (h *VenueHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.PostForm("search_term")
	matches, err := h.app.VenueService.SearchVenues(ctx, term)
	if err != nil {
		h.app.Logger.Error("search venues", zap.String("term", term), zap.Error(err))
		renderServerError(c)
		return
	}
	now := time.Now()
	results := view.VenueSearchResults(matches, func(id uint) int64 {
		count, err := h.app.VenueService.UpcomingCount(ctx, id, now)
		if err != nil {
			h.app.Logger.Error("count upcoming shows", zap.Uint("venue_id", id), zap.Error(err))
		}
		return count
	})
	render(c, http.StatusOK, "search_venues.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *VenueHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	venue, err := h.app.VenueService.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("get venue", zap.Uint("venue_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	past, upcoming, err := h.app.VenueService.VenueShows(ctx, id, time.Now())
	if err != nil {
		h.app.Logger.Error("venue shows", zap.Uint("venue_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "show_venue.html", gin.H{
		"Venue": view.NewVenueDetail(venue, past, upcoming),
	})
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "new_venue.html", gin.H{"GenreChoices": GenreChoices})
}

func (h *VenueHandler) Create(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Please fill in all required venue fields.")
		render(c, http.StatusBadRequest, "new_venue.html", gin.H{"GenreChoices": GenreChoices})
		return
	}
	venue := form.toModel(0)
	if err := h.app.VenueService.CreateVenue(c.Request.Context(), venue); err != nil {
		h.app.Logger.Error("create venue", zap.String("name", form.Name), zap.Error(err))
		flash(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	flash(c, "Venue "+form.Name+" was successfully listed!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	if err := h.app.VenueService.DeleteVenue(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("delete venue", zap.Uint("venue_id", id), zap.Error(err))
		flash(c, "An error occurred. The venue could not be deleted.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	flash(c, "The venue and its shows were deleted.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	venue, err := h.app.VenueService.GetVenueByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("get venue", zap.Uint("venue_id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	render(c, http.StatusOK, "edit_venue.html", gin.H{
		"Venue":        venue,
		"GenreChoices": GenreChoices,
	})
}

func (h *VenueHandler) Edit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Please fill in all required venue fields.")
		c.Redirect(http.StatusSeeOther, venuePath(id)+"/edit")
		return
	}
	if err := h.app.VenueService.UpdateVenue(c.Request.Context(), form.toModel(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("update venue", zap.Uint("venue_id", id), zap.Error(err))
		flash(c, "An error occurred. Venue "+form.Name+" could not be updated.")
		c.Redirect(http.StatusSeeOther, venuePath(id))
		return
	}
	flash(c, "Venue "+form.Name+" was successfully updated!")
	c.Redirect(http.StatusSeeOther, venuePath(id))
}
