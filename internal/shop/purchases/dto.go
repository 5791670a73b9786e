package purchases

// PurchaseInput is the create/update payload. Absent foreign keys decode to
// zero and fail the existence check on create.
type PurchaseInput struct {
	ProductID    int64    `json:"product_id"`
	CustomerID   int64    `json:"customer_id"`
	Quantity     *int64   `json:"quantity" validate:"required"`
	UnitPrice    *float64 `json:"unit_price" validate:"required"`
	DeliveryDate *string  `json:"delivery_date"`
}

func (in PurchaseInput) toPurchase(id int64) Purchase {
	p := Purchase{
		ID:           id,
		ProductID:    in.ProductID,
		CustomerID:   in.CustomerID,
		DeliveryDate: in.DeliveryDate,
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		p.UnitPrice = *in.UnitPrice
	}
	return p
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
