package payment

import "context"

// LineItem is one entry handed to the payment provider. Amounts are
// minor units; duplicate cart entries stay separate items with
// quantity 1.
type LineItem struct {
	Name        string
	AmountCents int64
	Quantity    int64
	Currency    string
}

// Confirmation is the provider's answer for a finished session.
type Confirmation struct {
	Paid       bool
	UserID     uint
	SessionID  string
	TotalCents int64
}

// Provider creates hosted payment sessions and reports their outcome.
type Provider interface {
	CreateSession(ctx context.Context, userID uint, items []LineItem) (redirectURL string, err error)
	ConfirmSession(ctx context.Context, sessionID string) (*Confirmation, error)
}
