package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"seelee/internal/models"
	"seelee/internal/token"
)

// CookieName is the session token cookie.
const CookieName = "token"

// Context keys set by the gates.
const (
	ctxAuthenticated = "authenticated"
	ctxClaims        = "claims"
	ctxUser          = "currentUser"
	ctxOwner         = "currentOwner"
)

// Authenticate is the soft gate: it never rejects, it only records
// whether the request carries a valid session token.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxAuthenticated, false)
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			if claims, err := token.Parse(secret, raw); err == nil {
				c.Set(ctxAuthenticated, true)
				c.Set(ctxClaims, claims)
			}
		}
		c.Next()
	}
}

// LoggedIn reports what the soft gate recorded.
func LoggedIn(c *gin.Context) bool {
	return c.GetBool(ctxAuthenticated)
}

// RequireUser is the hard gate for shopper routes: a valid user-role
// token whose subject resolves to a User row, otherwise 303 to
// /login. The resolved user, password hash stripped, is attached to
// the context.
func RequireUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok || claims.Role != token.RoleUser {
			reject(c, "/login")
			return
		}
		id, err := claims.SubjectID()
		if err != nil {
			reject(c, "/login")
			return
		}
		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error().Err(err).Msg("resolve user")
			}
			reject(c, "/login")
			return
		}
		user.PasswordHash = ""
		c.Set(ctxUser, &user)
		c.Next()
	}
}

// RequireOwner gates the admin area: an owner-role token resolving to
// an Owner row, otherwise 303 to /adminLogin. Being logged in as a
// shopper is not enough.
func RequireOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok || claims.Role != token.RoleOwner {
			reject(c, "/adminLogin")
			return
		}
		id, err := claims.SubjectID()
		if err != nil {
			reject(c, "/adminLogin")
			return
		}
		var owner models.Owner
		if err := db.First(&owner, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error().Err(err).Msg("resolve owner")
			}
			reject(c, "/adminLogin")
			return
		}
		owner.PasswordHash = ""
		c.Set(ctxOwner, &owner)
		c.Next()
	}
}

// UserFrom returns what RequireUser attached, or nil.
func UserFrom(c *gin.Context) *models.User {
	v, _ := c.Get(ctxUser)
	u, _ := v.(*models.User)
	return u
}

// OwnerFrom returns what RequireOwner attached, or nil.
func OwnerFrom(c *gin.Context) *models.Owner {
	v, _ := c.Get(ctxOwner)
	o, _ := v.(*models.Owner)
	return o
}

func claimsFrom(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

func reject(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
	c.Abort()
}
