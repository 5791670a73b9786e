package reports

// JoinedPurchase is a purchase with its product and customer names resolved.
type JoinedPurchase struct {
	PurchaseID   int64   `json:"purchase_id" db:"purchase_id"`
	ProductName  string  `json:"product_name" db:"product_name"`
	CustomerName string  `json:"customer_name" db:"customer_name"`
	Quantity     int64   `json:"quantity" db:"quantity"`
	UnitPrice    float64 `json:"unit_price" db:"unit_price"`
	DeliveryDate *string `json:"delivery_date" db:"delivery_date"`
}

// CustomerTotal aggregates purchases per customer.
type CustomerTotal struct {
	CustomerID     int64   `json:"customer_id" db:"customer_id"`
	CustomerName   string  `json:"customer_name" db:"customer_name"`
	PurchasesCount int64   `json:"purchases_count" db:"purchases_count"`
	TotalSum       float64 `json:"total_sum" db:"total_sum"`
}

// UpdatedRows reports how many purchases a bulk update touched.
type UpdatedRows struct {
	UpdatedRows int64 `json:"updated_rows"`
}
