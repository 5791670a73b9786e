package purchases

// Purchase is a row of the purchase table. DeliveryDate is stored as the
// caller sent it; no date format is enforced.
type Purchase struct {
	ID           int64   `json:"id" db:"id"`
	ProductID    int64   `json:"product_id" db:"product_id"`
	CustomerID   int64   `json:"customer_id" db:"customer_id"`
	Quantity     int64   `json:"quantity" db:"quantity"`
	UnitPrice    float64 `json:"unit_price" db:"unit_price"`
	DeliveryDate *string `json:"delivery_date" db:"delivery_date"`
}
