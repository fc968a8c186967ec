package dto

// CreateProductRequest entrada para crear un producto. Los tres contadores
// deben cumplir quantity == availableQuantity + rentedQuantity.
type CreateProductRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=120"`
	Category          string  `json:"category" validate:"required,oneof=clothing equipment"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female"`
	Type              string  `json:"type" validate:"required,min=1,max=60"`
	Quantity          int     `json:"quantity" validate:"min=0"`
	AvailableQuantity int     `json:"availableQuantity" validate:"min=0"`
	RentedQuantity    int     `json:"rentedQuantity" validate:"min=0"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
// Los contadores omitidos conservan su valor actual; el invariante se
// re-valida sobre el resultado del merge.
type UpdateProductRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=120"`
	Category          *string `json:"category" validate:"omitempty,oneof=clothing equipment"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female"`
	Type              *string `json:"type" validate:"omitempty,min=1,max=60"`
	Quantity          *int    `json:"quantity" validate:"omitempty,min=0"`
	AvailableQuantity *int    `json:"availableQuantity" validate:"omitempty,min=0"`
	RentedQuantity    *int    `json:"rentedQuantity" validate:"omitempty,min=0"`
}

// QtyRequest cantidad para take / return-taken / return-rented.
type QtyRequest struct {
	Qty int `json:"qty" validate:"min=1"`
}

// RentRequest cantidad y duración en días para rentar.
type RentRequest struct {
	Qty  int `json:"qty" validate:"min=1"`
	Days int `json:"days" validate:"min=1"`
}

// ProductResponse proyección de un producto.
type ProductResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Gender            *string `json:"gender"`
	Type              string  `json:"type"`
	Quantity          int     `json:"quantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	RentedQuantity    int     `json:"rentedQuantity"`
}
