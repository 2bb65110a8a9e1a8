package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"seelee/internal/middleware"
)

// ViewData is what the templates consume.
type ViewData map[string]any

const flashKey = "notice"

// withView decorates template data with the logged-in flag and any
// pending flash notice.
func withView(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	data["UserLoggedIn"] = middleware.LoggedIn(c)
	sess := sessions.Default(c)
	if v := sess.Get(flashKey); v != nil {
		data["Notice"] = v
		sess.Delete(flashKey)
		_ = sess.Save()
	}
	return data
}

// setFlash stores a one-shot notice for the next rendered page.
func setFlash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.Set(flashKey, msg)
	_ = sess.Save()
}

// serverError logs the cause and answers with the generic 500 text;
// internals never reach the client.
func serverError(c *gin.Context, err error, what string) {
	log.Error().Err(err).Msg(what)
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}
