package models

// Product is a catalog row. The image is stored inline as a blob and
// served from GET /image/:id.
type Product struct {
	Base
	Name       string `gorm:"not null"`
	PriceCents int64  `gorm:"not null"`
	Image      []byte `json:"-"`
}
