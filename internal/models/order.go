package models

// Order is recorded when the payment provider confirms a checkout
// session as paid. ProviderRef is the provider's session id; its
// unique index is what makes the success callback idempotent.
type Order struct {
	Base
	UserID      uint        `gorm:"index;not null"`
	TotalCents  int64       `gorm:"not null"`
	ProviderRef string      `gorm:"uniqueIndex;not null"`
	Items       []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots name and price at purchase time, so later
// catalog edits don't rewrite order history.
type OrderItem struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"index;not null"`
	ProductID  uint
	Name       string `gorm:"not null"`
	PriceCents int64  `gorm:"not null"`
}
