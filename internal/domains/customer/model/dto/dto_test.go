package dto_test

import (
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/shared"
	"hotelier/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCustomerRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateCustomerRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  dto.CreateCustomerRequest{Name: "John Doe", Email: "john.doe@example.com"},
		},
		{
			name: "without email",
			req:  dto.CreateCustomerRequest{Name: "John Doe"},
		},
		{
			name: "email is free text",
			req:  dto.CreateCustomerRequest{Name: "John Doe", Email: "john.doe"},
		},
		{
			name: "long name",
			req:  dto.CreateCustomerRequest{Name: strings.Repeat("a", 300)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCustomerRequest_Apply(t *testing.T) {
	current := model.Customer{ID: 4, Name: "John Doe", Email: "john.doe@example.com"}

	req := dto.UpdateCustomerRequest{Email: shared.Ptr("john.doe@newdomain.com")}
	assert.False(t, req.IsEmpty())

	updated := req.Apply(current)

	assert.Equal(t, model.Customer{ID: 4, Name: "John Doe", Email: "john.doe@newdomain.com"}, updated)
	assert.True(t, (&dto.UpdateCustomerRequest{}).IsEmpty())
}

func TestUpdateCustomerRequest_AcceptsAnyEmail(t *testing.T) {
	req := dto.UpdateCustomerRequest{Email: shared.Ptr("not-an-email")}

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestGetCustomersResponse_FromModels(t *testing.T) {
	var res dto.GetCustomersResponse

	res.FromModels([]model.Customer{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com"},
		{ID: 3, Name: "Jane Roe"},
	})

	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 3, res.Customers[1].ID)
	assert.Equal(t, "Jane Roe", res.Customers[1].Name)
}
