package router

import (
	"html/template"
	"slices"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"gigboard/internal/app"
	"gigboard/internal/handler"
	"gigboard/internal/middleware"
)

// New builds the gin engine: middleware, session store for flash
// messages, templates, and every route of the site.
func New(a *app.App) *gin.Engine {
	if a.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(a.Logger))
	r.Use(middleware.Recovery(a.Logger))
	r.Use(sessions.Sessions("gigboard", cookie.NewStore([]byte(a.Config.SessionSecret))))
	r.SetFuncMap(TemplateFuncs())
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")
	RegisterRoutes(r, a)
	return r
}

// TemplateFuncs returns the helpers the templates rely on.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"hasGenre": func(genres []string, genre string) bool {
			return slices.Contains(genres, genre)
		},
	}
}

func RegisterRoutes(r *gin.Engine, a *app.App) {
	venues := handler.NewVenueHandler(a)
	artists := handler.NewArtistHandler(a)
	shows := handler.NewShowHandler(a)

	r.GET("/", handler.Home)

	r.GET("/venues", venues.List)
	r.POST("/venues/search", venues.Search)
	r.GET("/venues/create", venues.CreateForm)
	r.POST("/venues/create", venues.Create)
	r.GET("/venues/:id", venues.Detail)
	r.DELETE("/venues/:id", venues.Delete)
	r.GET("/venues/:id/edit", venues.EditForm)
	r.POST("/venues/:id/edit", venues.Edit)

	r.GET("/artists", artists.List)
	r.POST("/artists/search", artists.Search)
	r.GET("/artists/create", artists.CreateForm)
	r.POST("/artists/create", artists.Create)
	r.GET("/artists/:id", artists.Detail)
	r.GET("/artists/:id/edit", artists.EditForm)
	r.POST("/artists/:id/edit", artists.Edit)

	r.GET("/shows", shows.List)
	r.GET("/shows/create", shows.CreateForm)
	r.POST("/shows/create", shows.Create)
}
