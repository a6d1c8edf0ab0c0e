package domain

// StockAvailability is one entry of the inventory service's answer to a
// stock query.
type StockAvailability struct {
	ItemCode string `json:"itemCode"`
	InStock  bool   `json:"inStock"`
}
