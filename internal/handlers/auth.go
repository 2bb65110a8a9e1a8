package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seelee/internal/middleware"
	"seelee/internal/models"
	"seelee/internal/token"
)

// Auth handles registration, login and logout for both shoppers and
// owners. Registration logs the new account in right away.
type Auth struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

// setTokenCookie installs (or with an empty value clears) the session
// cookie. HttpOnly keeps it away from page scripts.
func (h *Auth) setTokenCookie(c *gin.Context, value string) {
	maxAge := int(h.TokenTTL / time.Second)
	if value == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", false, true)
}

// ---------- shopper ----------

func (h *Auth) UserLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withView(c, nil))
}

func (h *Auth) UserLogin(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withView(c, ViewData{"Error": "No user found"}))
		return
	}
	if !models.CheckPassword(user.PasswordHash, password) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withView(c, ViewData{"Error": "Incorrect password"}))
		return
	}

	tok, err := token.Issue(h.Secret, user.ID, user.Email, token.RoleUser, h.TokenTTL)
	if err != nil {
		serverError(c, err, "issue token")
		return
	}
	h.setTokenCookie(c, tok)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Auth) UserRegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", withView(c, nil))
}

func (h *Auth) UserRegister(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.tmpl", withView(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	var cnt int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		serverError(c, err, "check email")
		return
	}
	if cnt > 0 {
		c.HTML(http.StatusBadRequest, "register.tmpl", withView(c, ViewData{"Error": "Email already registered"}))
		return
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		serverError(c, err, "hash password")
		return
	}
	user := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := h.DB.Create(&user).Error; err != nil {
		serverError(c, err, "create user")
		return
	}

	tok, err := token.Issue(h.Secret, user.ID, user.Email, token.RoleUser, h.TokenTTL)
	if err != nil {
		serverError(c, err, "issue token")
		return
	}
	h.setTokenCookie(c, tok)
	c.Redirect(http.StatusSeeOther, "/")
}

// ---------- owner ----------

func (h *Auth) OwnerLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.tmpl", withView(c, nil))
}

func (h *Auth) OwnerLogin(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var owner models.Owner
	if err := h.DB.Where("email = ?", email).First(&owner).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.tmpl", withView(c, ViewData{"Error": "No Owner found"}))
		return
	}
	if !models.CheckPassword(owner.PasswordHash, password) {
		c.HTML(http.StatusUnauthorized, "admin_login.tmpl", withView(c, ViewData{"Error": "Incorrect password."}))
		return
	}

	tok, err := token.Issue(h.Secret, owner.ID, "", token.RoleOwner, h.TokenTTL)
	if err != nil {
		serverError(c, err, "issue token")
		return
	}
	h.setTokenCookie(c, tok)
	c.Redirect(http.StatusSeeOther, "/adminPanel")
}

func (h *Auth) OwnerRegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_register.tmpl", withView(c, nil))
}

func (h *Auth) OwnerRegister(c *gin.Context) {
	ownerName := strings.TrimSpace(c.PostForm("ownerName"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if ownerName == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "admin_register.tmpl", withView(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	var cnt int64
	if err := h.DB.Model(&models.Owner{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		serverError(c, err, "check email")
		return
	}
	if cnt > 0 {
		c.HTML(http.StatusBadRequest, "admin_register.tmpl", withView(c, ViewData{"Error": "Email already registered"}))
		return
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		serverError(c, err, "hash password")
		return
	}
	owner := models.Owner{OwnerName: ownerName, Email: email, PasswordHash: hash}
	if err := h.DB.Create(&owner).Error; err != nil {
		serverError(c, err, "create owner")
		return
	}

	tok, err := token.Issue(h.Secret, owner.ID, "", token.RoleOwner, h.TokenTTL)
	if err != nil {
		serverError(c, err, "issue token")
		return
	}
	h.setTokenCookie(c, tok)
	c.Redirect(http.StatusSeeOther, "/adminPanel")
}

// Logout clears the cookie client-side; the token itself stays valid
// until it expires.
func (h *Auth) Logout(c *gin.Context) {
	h.setTokenCookie(c, "")
	c.Redirect(http.StatusSeeOther, "/")
}
