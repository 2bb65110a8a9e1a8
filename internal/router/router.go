package router

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seelee/internal/config"
	"seelee/internal/handlers"
	"seelee/internal/middleware"
	"seelee/internal/payment"
)

// New wires middleware, templates and the full route table.
func New(cfg *config.Config, db *gorm.DB, provider payment.Provider) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("seelee_session", store))

	// soft gate on every route
	r.Use(middleware.Authenticate(cfg.TokenSecret))

	r.SetFuncMap(template.FuncMap{
		"price": func(cents int64) string { return fmt.Sprintf("%.2f", float64(cents)/100.0) },
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	pages := handlers.Pages{}
	auth := &handlers.Auth{DB: db, Secret: cfg.TokenSecret, TokenTTL: cfg.TokenTTL}
	catalog := &handlers.Catalog{DB: db}
	cart := &handlers.Cart{DB: db}
	checkout := &handlers.Checkout{DB: db, Provider: provider}

	r.GET("/", pages.Index)
	r.GET("/about", pages.About)
	r.GET("/contact", pages.Contact)

	r.GET("/shop", catalog.Shop)
	r.GET("/image/:id", catalog.Image)

	r.GET("/login", auth.UserLoginForm)
	r.POST("/login", auth.UserLogin)
	r.GET("/register", auth.UserRegisterForm)
	r.POST("/register", auth.UserRegister)
	r.GET("/adminLogin", auth.OwnerLoginForm)
	r.POST("/adminLogin", auth.OwnerLogin)
	r.GET("/adminRegister", auth.OwnerRegisterForm)
	r.POST("/adminRegister", auth.OwnerRegister)
	r.GET("/logout", auth.Logout)

	admin := r.Group("", middleware.RequireOwner(db))
	admin.GET("/adminPanel", catalog.AdminPanel)
	admin.POST("/create", catalog.Create)
	admin.GET("/edit/:id", catalog.EditForm)
	admin.POST("/update/:productid", catalog.Update)
	admin.GET("/delete/:id", catalog.Delete)

	shopper := r.Group("", middleware.RequireUser(db))
	shopper.GET("/addtocart/:id", cart.Add)
	shopper.GET("/cart", cart.View)
	shopper.POST("/removefromcart/:id", cart.Remove)
	shopper.POST("/checkout", checkout.Begin)

	r.GET("/complete", checkout.Complete)
	r.GET("/cancel", checkout.Cancel)

	return r
}
