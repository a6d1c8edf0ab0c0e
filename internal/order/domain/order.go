package domain

import "time"

// Order is an immutable, persisted purchase. It exists only after the stock
// check at placement time passed; there is no update path after creation.
type Order struct {
	ID          int64
	OrderNumber string
	LineItems   []LineItem
	CreatedAt   time.Time
}

// LineItem belongs to exactly one order and dies with it.
type LineItem struct {
	ItemCode string  `json:"itemCode"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewOrder(orderNumber string, items []LineItem) Order {
	return Order{
		OrderNumber: orderNumber,
		LineItems:   items,
		CreatedAt:   time.Now().UTC(),
	}
}

// DistinctItemCodes returns the unique codes across the line items, in first
// occurrence order.
func (o Order) DistinctItemCodes() []string {
	seen := make(map[string]struct{}, len(o.LineItems))
	codes := make([]string, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		if _, ok := seen[li.ItemCode]; ok {
			continue
		}
		seen[li.ItemCode] = struct{}{}
		codes = append(codes, li.ItemCode)
	}
	return codes
}
