package customers

type CustomerInput struct {
	Name          *string `json:"name" validate:"required"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	ContactPerson *string `json:"contact_person"`
}

func (in CustomerInput) toCustomer(id int64) Customer {
	c := Customer{
		ID:            id,
		Address:       in.Address,
		Phone:         in.Phone,
		ContactPerson: in.ContactPerson,
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	return c
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
