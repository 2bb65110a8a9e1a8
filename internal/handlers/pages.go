package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages serves the static storefront pages.
type Pages struct{}

func (Pages) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", withView(c, nil))
}

func (Pages) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", withView(c, nil))
}

func (Pages) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", withView(c, nil))
}
