package domain

// OrderPlaced is published after an order commits.
type OrderPlaced struct {
	OrderNumber string     `json:"orderNumber"`
	LineItems   []LineItem `json:"lineItems"`
}
