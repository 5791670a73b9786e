package reports

import (
	"fmt"
	"strings"

	"github.com/simpleshop/shop-api/internal/platform/httpx"
)

// SortField is the closed set of purchase columns a listing may sort by.
type SortField int

const (
	SortByUnitPrice SortField = iota + 1
	SortByDeliveryDate
)

// SortOrder is the closed set of sort directions.
type SortOrder int

const (
	OrderAsc SortOrder = iota + 1
	OrderDesc
)

// Query parameter defaults for /q/sort.
const (
	DefaultSortBy    = "unit_price"
	DefaultSortOrder = "asc"
)

// ParseSort maps caller input onto the enums. by must match exactly; order
// is case-insensitive.
func ParseSort(by, order string) (SortField, SortOrder, error) {
	var field SortField
	switch by {
	case "unit_price":
		field = SortByUnitPrice
	case "delivery_date":
		field = SortByDeliveryDate
	default:
		return 0, 0, fmt.Errorf("%w: by must be one of unit_price, delivery_date", httpx.ErrValidation)
	}

	var dir SortOrder
	switch strings.ToLower(order) {
	case "asc":
		dir = OrderAsc
	case "desc":
		dir = OrderDesc
	default:
		return 0, 0, fmt.Errorf("%w: order must be asc or desc", httpx.ErrValidation)
	}
	return field, dir, nil
}

const (
	sortUnitPriceAsc     = selectPurchase + ` ORDER BY unit_price ASC`
	sortUnitPriceDesc    = selectPurchase + ` ORDER BY unit_price DESC`
	sortDeliveryDateAsc  = selectPurchase + ` ORDER BY delivery_date ASC`
	sortDeliveryDateDesc = selectPurchase + ` ORDER BY delivery_date DESC`
)

// sortStatement selects one of the fixed statements; nothing from the
// request reaches the SQL text.
func sortStatement(field SortField, dir SortOrder) (string, error) {
	switch {
	case field == SortByUnitPrice && dir == OrderAsc:
		return sortUnitPriceAsc, nil
	case field == SortByUnitPrice && dir == OrderDesc:
		return sortUnitPriceDesc, nil
	case field == SortByDeliveryDate && dir == OrderAsc:
		return sortDeliveryDateAsc, nil
	case field == SortByDeliveryDate && dir == OrderDesc:
		return sortDeliveryDateDesc, nil
	}
	return "", fmt.Errorf("%w: unsupported sort", httpx.ErrValidation)
}
