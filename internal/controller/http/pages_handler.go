package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// About godoc
// @Summary      About page content
// @Tags         pages
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /pages/about [get]
func (h *PagesHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About the project",
		"text":  "Blogicum is a community blog: write posts, place them in categories and locations, and schedule publications for the future.",
	})
}

// Rules godoc
// @Summary      Site rules content
// @Tags         pages
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /pages/rules [get]
func (h *PagesHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Our rules",
		"text":  "Be kind, write on topic, and comment respectfully. Staff may remove posts and comments that break the rules.",
	})
}
