package model

const (
	EntityName = "reservation"

	FieldID         = "reservation_id"
	FieldCustomerID = "customer_id"
	FieldHotelID    = "hotel_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldIsActive   = "is_active"
)

// Reservation holds one room of a hotel for a customer. Dates are stored as
// YYYY-MM-DD. A reservation goes from active to cancelled once and is never removed.
type Reservation struct {
	ID         int    `json:"reservation_id"`
	CustomerID int    `json:"customer_id"`
	HotelID    int    `json:"hotel_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	IsActive   bool   `json:"is_active"`
}

func (r Reservation) Identifier() int {
	return r.ID
}

func (r Reservation) WithID(id int) Reservation {
	r.ID = id

	return r
}

// Deactivate marks the reservation cancelled and reports whether it was active.
func (r *Reservation) Deactivate() bool {
	if !r.IsActive {
		return false
	}

	r.IsActive = false

	return true
}
