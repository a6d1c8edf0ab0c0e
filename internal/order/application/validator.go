package application

import "github.com/acme/order-fulfillment/internal/order/domain"

// Validator decides accept/reject from a stock check response. It is a pure
// function of its inputs.
//
// The strict rule (default) accepts only when every requested code appears in
// the response with inStock=true, so a code the inventory service does not
// know about rejects the order. The lenient rule accepts whenever the
// response set is non-empty and every returned entry is in stock, which lets
// silently dropped codes through; it matches an earlier behavior some
// deployments still rely on and stays available behind the Lenient flag.
type Validator struct {
	Lenient bool
}

func (v Validator) Decide(requestedCodes []string, responses []domain.StockAvailability) bool {
	inStock := make(map[string]bool, len(responses))
	for _, resp := range responses {
		inStock[resp.ItemCode] = resp.InStock
	}

	if v.Lenient {
		if len(responses) == 0 {
			return false
		}
		for _, resp := range responses {
			if !resp.InStock {
				return false
			}
		}
		return true
	}

	if len(requestedCodes) == 0 {
		return false
	}
	for _, code := range requestedCodes {
		if !inStock[code] {
			return false
		}
	}
	return true
}
