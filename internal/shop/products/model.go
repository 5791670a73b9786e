package products

import "encoding/json"

// Product is a row of the primary product table.
type Product struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Manufacturer *string `json:"manufacturer" db:"manufacturer"`
	Unit         string  `json:"unit" db:"unit"`
}

// ProductWithMeta is a product as held by the search store, which carries a
// structured meta document the primary store does not have.
type ProductWithMeta struct {
	Product
	Meta json.RawMessage `json:"meta"`
}
