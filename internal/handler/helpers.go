package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Genre choices offered by the create/edit forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre",
	"Pop", "Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

func Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", gin.H{})
}

func flash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	_ = s.Save()
}

// takeFlashes drains pending flash messages so each shows exactly once.
func takeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func render(c *gin.Context, status int, name string, data gin.H) {
	data["Flashes"] = takeFlashes(c)
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}

func renderServerError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "500.html", gin.H{})
}

func venuePath(id uint) string {
	return "/venues/" + strconv.FormatUint(uint64(id), 10)
}

func artistPath(id uint) string {
	return "/artists/" + strconv.FormatUint(uint64(id), 10)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
