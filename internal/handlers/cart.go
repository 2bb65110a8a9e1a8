package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seelee/internal/middleware"
	"seelee/internal/models"
)

// Cart is the per-user cart surface. All routes sit behind the hard
// user gate.
type Cart struct {
	DB *gorm.DB
}

// Add appends one cart row after checking the product exists.
func (h *Cart) Add(c *gin.Context) {
	user := middleware.UserFrom(c)

	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		serverError(c, err, "load product")
		return
	}

	item := models.CartItem{UserID: user.ID, ProductID: product.ID}
	if err := h.DB.Create(&item).Error; err != nil {
		serverError(c, err, "add to cart")
		return
	}
	setFlash(c, product.Name+" added to cart")
	c.Redirect(http.StatusSeeOther, "/shop")
}

// Remove drops the earliest matching row; a product that is not in
// the cart is a no-op.
func (h *Cart) Remove(c *gin.Context) {
	user := middleware.UserFrom(c)

	var item models.CartItem
	err := h.DB.Where("user_id = ? AND product_id = ?", user.ID, c.Param("id")).
		Order("id").First(&item).Error
	switch {
	case err == nil:
		if err := h.DB.Delete(&item).Error; err != nil {
			serverError(c, err, "remove from cart")
			return
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		serverError(c, err, "load cart item")
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// View resolves the cart rows to products for display.
func (h *Cart) View(c *gin.Context) {
	user := middleware.UserFrom(c)

	products, total, err := resolveCart(h.DB, user.ID)
	if err != nil {
		serverError(c, err, "load cart")
		return
	}
	c.HTML(http.StatusOK, "cart.tmpl", withView(c, ViewData{
		"User":       user,
		"Products":   products,
		"TotalCents": total,
	}))
}

// resolveCart returns the cart's products in insertion order with the
// running total in cents. Rows whose product has been deleted since
// the add are skipped.
func resolveCart(db *gorm.DB, userID uint) ([]models.Product, int64, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	var total int64
	for _, item := range items {
		var p models.Product
		if err := db.First(&p, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, 0, err
		}
		products = append(products, p)
		total += p.PriceCents
	}
	return products, total, nil
}
