package customers

// Customer is a row of the customer table.
type Customer struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Address       *string `json:"address" db:"address"`
	Phone         *string `json:"phone" db:"phone"`
	ContactPerson *string `json:"contact_person" db:"contact_person"`
}
