package domain

// StockRecord is the durable count of available units for one item code.
// Item codes are unique within the stock table.
type StockRecord struct {
	ID       int64
	ItemCode string
	Quantity int
}

// InStock reports whether at least one unit is available.
func (r StockRecord) InStock() bool {
	return r.Quantity > 0
}

// Availability is the per-code answer returned to callers of the stock query.
type Availability struct {
	ItemCode string `json:"itemCode"`
	InStock  bool   `json:"inStock"`
}
