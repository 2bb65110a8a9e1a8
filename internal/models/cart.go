package models

// CartItem is one "add to cart" event. Rows are append-only and
// ordered by ID; the same product may appear any number of times.
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	ProductID uint `gorm:"not null"`
}
