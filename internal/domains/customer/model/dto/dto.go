package dto

import (
	"hotelier/internal/domains/customer/model"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		Name:  c.Name,
		Email: c.Email,
	}
}

// UpdateCustomerRequest is a partial update: nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (u *UpdateCustomerRequest) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

func (u *UpdateCustomerRequest) Apply(current model.Customer) model.Customer {
	if u.Name != nil {
		current.Name = *u.Name
	}

	if u.Email != nil {
		current.Email = *u.Email
	}

	return current
}

type CustomerResponse struct {
	ID    int    `json:"customer_id" yaml:"customer_id"`
	Name  string `json:"name"        yaml:"name"`
	Email string `json:"email"       yaml:"email"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"  yaml:"customers"`
	TotalData int                `json:"total_data" yaml:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer) {
	r.TotalData = len(models)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
