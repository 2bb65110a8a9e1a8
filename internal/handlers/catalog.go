package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seelee/internal/models"
)

// Catalog is the product CRUD surface. Every mutating route sits
// behind the owner gate in the router.
type Catalog struct {
	DB *gorm.DB
}

// Shop lists the catalog for shoppers.
func (h *Catalog) Shop(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Order("id desc").Find(&products).Error; err != nil {
		serverError(c, err, "list products")
		return
	}
	c.HTML(http.StatusOK, "shop.tmpl", withView(c, ViewData{"Products": products}))
}

// AdminPanel lists the catalog for the owner.
func (h *Catalog) AdminPanel(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Order("id desc").Find(&products).Error; err != nil {
		serverError(c, err, "list products")
		return
	}
	c.HTML(http.StatusOK, "admin_panel.tmpl", withView(c, ViewData{"Products": products}))
}

// Create adds a product from the multipart admin form. The image file
// is mandatory, a new product without one is a 400.
func (h *Catalog) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	priceCents, err := parsePriceCents(c.PostForm("price"))
	if name == "" || err != nil {
		c.String(http.StatusBadRequest, "Name and a valid price are required.")
		return
	}
	image, err := readImage(c, "image")
	if err != nil {
		c.String(http.StatusBadRequest, "Image file is required.")
		return
	}

	product := models.Product{Name: name, PriceCents: priceCents, Image: image}
	if err := h.DB.Create(&product).Error; err != nil {
		serverError(c, err, "create product")
		return
	}
	setFlash(c, "Product created")
	c.Redirect(http.StatusSeeOther, "/adminPanel")
}

// EditForm renders the edit page, or 404s on an unknown id.
func (h *Catalog) EditForm(c *gin.Context) {
	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		serverError(c, err, "load product")
		return
	}
	c.HTML(http.StatusOK, "edit.tmpl", withView(c, ViewData{"Product": product}))
}

// Update rewrites name and price; a freshly uploaded image replaces
// the stored one, no upload keeps it.
func (h *Catalog) Update(c *gin.Context) {
	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Param("productid")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		serverError(c, err, "load product")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	priceCents, err := parsePriceCents(c.PostForm("price"))
	if name == "" || err != nil {
		c.String(http.StatusBadRequest, "Name and a valid price are required.")
		return
	}
	product.Name = name
	product.PriceCents = priceCents
	if image, err := readImage(c, "image"); err == nil {
		product.Image = image
	}

	if err := h.DB.Save(&product).Error; err != nil {
		serverError(c, err, "update product")
		return
	}
	setFlash(c, "Product saved")
	c.Redirect(http.StatusSeeOther, "/adminPanel")
}

// Delete removes a product. A missing id is a no-op; either way the
// owner lands back on the panel.
func (h *Catalog) Delete(c *gin.Context) {
	if err := h.DB.Delete(&models.Product{}, "id = ?", c.Param("id")).Error; err != nil {
		serverError(c, err, "delete product")
		return
	}
	c.Redirect(http.StatusSeeOther, "/adminPanel")
}

// Image serves the stored blob for <img src="/image/:id">.
func (h *Catalog) Image(c *gin.Context) {
	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(product.Image), product.Image)
}

// readImage pulls the uploaded file fully into memory; images are
// stored inline on the product row.
func readImage(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// parsePriceCents turns a decimal form value like "12.30" or "12,3"
// into cents. Negative values are rejected, extra decimals truncated.
func parsePriceCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, errors.New("empty price")
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, errors.New("invalid price")
	}
	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, errors.New("invalid price")
		}
	}
	return dollars*100 + cents, nil
}
