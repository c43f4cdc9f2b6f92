// Package pages serves the static informational pages.
package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Title      string
	ModelReady bool
}

// Handler renders the embedded pages through the engine's HTML renderer.
type Handler struct {
	templates  *template.Template
	modelReady bool
}

// NewHandler parses the embedded templates.
func NewHandler(modelReady bool) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{templates: tmpl, modelReady: modelReady}, nil
}

// Templates is passed to gin.Engine.SetHTMLTemplate before routes are registered.
func (h *Handler) Templates() *template.Template {
	return h.templates
}

// RegisterRoutes attaches the page routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.render("index.html", "Home"))
	r.GET("/about", h.render("about.html", "About"))
}

func (h *Handler) render(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, pageData{Title: title, ModelReady: h.modelReady})
	}
}
