package model

const (
	EntityName = "customer"

	FieldID    = "customer_id"
	FieldName  = "name"
	FieldEmail = "email"
)

type Customer struct {
	ID    int    `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c Customer) Identifier() int {
	return c.ID
}

func (c Customer) WithID(id int) Customer {
	c.ID = id

	return c
}
