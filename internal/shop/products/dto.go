package products

// ProductInput is the create/update payload. Required fields reject JSON null
// or absence only; empty strings are stored as given.
type ProductInput struct {
	Name         *string `json:"name" validate:"required"`
	Manufacturer *string `json:"manufacturer"`
	Unit         *string `json:"unit" validate:"required"`
}

func (in ProductInput) toProduct(id int64) Product {
	p := Product{ID: id, Manufacturer: in.Manufacturer}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	return p
}

// DeletedResponse acknowledges a delete whether or not the row existed.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
