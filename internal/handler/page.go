package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenProvider returns the map provider token, empty when none is configured.
type TokenProvider interface {
	MapboxToken() string
}

// PageHandler renders the HTML pages of the game
type PageHandler struct {
	tokens TokenProvider
}

// NewPageHandler creates a new page handler
func NewPageHandler(tokens TokenProvider) *PageHandler {
	return &PageHandler{tokens: tokens}
}

// Index renders the landing page with the map token.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"MapboxToken": h.tokens.MapboxToken(),
	})
}

// Game renders the game page; the map needs the same token as the landing page.
func (h *PageHandler) Game(c *gin.Context) {
	c.HTML(http.StatusOK, "game.html", gin.H{
		"MapboxToken": h.tokens.MapboxToken(),
	})
}

// Results renders the results page.
func (h *PageHandler) Results(c *gin.Context) {
	c.HTML(http.StatusOK, "results.html", nil)
}

// About renders the about page.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}
