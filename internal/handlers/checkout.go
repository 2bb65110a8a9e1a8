package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seelee/internal/middleware"
	"seelee/internal/models"
	"seelee/internal/payment"
)

// Checkout hands the cart to the payment provider and handles the
// callback routes the provider redirects back to.
type Checkout struct {
	DB       *gorm.DB
	Provider payment.Provider
}

// Begin builds the line items and redirects to the hosted payment
// page. An empty cart never reaches the provider.
func (h *Checkout) Begin(c *gin.Context) {
	user := middleware.UserFrom(c)

	products, _, err := resolveCart(h.DB, user.ID)
	if err != nil {
		serverError(c, err, "load cart")
		return
	}
	if len(products) == 0 {
		c.String(http.StatusBadRequest, "Your cart is empty.")
		return
	}

	url, err := h.Provider.CreateSession(c.Request.Context(), user.ID, buildLineItems(products))
	if err != nil {
		serverError(c, err, "create payment session")
		return
	}
	c.Redirect(http.StatusSeeOther, url)
}

// buildLineItems maps cart products 1:1 to USD line items; duplicate
// entries stay separate with quantity 1.
func buildLineItems(products []models.Product) []payment.LineItem {
	items := make([]payment.LineItem, 0, len(products))
	for _, p := range products {
		items = append(items, payment.LineItem{
			Name:        p.Name,
			AmountCents: p.PriceCents,
			Quantity:    1,
			Currency:    "usd",
		})
	}
	return items
}

// Complete is the provider's success redirect. When the session is
// paid it records the order and empties the cart, exactly once per
// session; a replayed session_id changes nothing.
func (h *Checkout) Complete(c *gin.Context) {
	if sessionID := c.Query("session_id"); sessionID != "" {
		if err := h.recordOrder(c, sessionID); err != nil {
			serverError(c, err, "record order")
			return
		}
	}
	c.HTML(http.StatusOK, "complete.tmpl", withView(c, nil))
}

func (h *Checkout) recordOrder(c *gin.Context, sessionID string) error {
	conf, err := h.Provider.ConfirmSession(c.Request.Context(), sessionID)
	if err != nil {
		return err
	}
	if !conf.Paid || conf.UserID == 0 {
		return nil
	}

	var existing int64
	if err := h.DB.Model(&models.Order{}).
		Where("provider_ref = ?", conf.SessionID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	products, total, err := resolveCart(h.DB, conf.UserID)
	if err != nil {
		return err
	}
	order := models.Order{UserID: conf.UserID, TotalCents: total, ProviderRef: conf.SessionID}
	for _, p := range products {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
		})
	}

	return h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", conf.UserID).Delete(&models.CartItem{}).Error
	})
}

// Cancel is the provider's cancel redirect.
func (h *Checkout) Cancel(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
