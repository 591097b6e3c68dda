package customers

// CreateCustomerRequest is the payload for registering a customer. The
// ID is optional; one is generated when absent.
type CreateCustomerRequest struct {
	ID     string `json:"id" validate:"omitempty,max=40"`
	Name   string `json:"name" validate:"required,max=120"`
	Phone  string `json:"phone" validate:"required,max=40"`
	Email  string `json:"email" validate:"omitempty,email"`
	IDType string `json:"id_type" validate:"omitempty,max=60"`
	IDNo   string `json:"id_no" validate:"omitempty,max=60"`
}

// UpdateCustomerRequest carries optional customer field updates.
type UpdateCustomerRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=120"`
	Phone  *string `json:"phone" validate:"omitempty,max=40"`
	Email  *string `json:"email" validate:"omitempty,email"`
	IDType *string `json:"id_type" validate:"omitempty,max=60"`
	IDNo   *string `json:"id_no" validate:"omitempty,max=60"`
}
