package dto

import (
	"hotelier/internal/domains/reservation/model"
	"hotelier/shared/timezone"
	"time"
)

// CreateReservationRequest books one room. Only the calendar date of CheckIn
// and CheckOut is kept; their order is not checked.
type CreateReservationRequest struct {
	CustomerID int       `json:"customer_id" validate:"gt=0"`
	HotelID    int       `json:"hotel_id"    validate:"gt=0"`
	CheckIn    time.Time `json:"check_in"    validate:"required"`
	CheckOut   time.Time `json:"check_out"   validate:"required"`
}

func (c *CreateReservationRequest) ToModel() model.Reservation {
	return model.Reservation{
		CustomerID: c.CustomerID,
		HotelID:    c.HotelID,
		CheckIn:    timezone.FormatDate(c.CheckIn),
		CheckOut:   timezone.FormatDate(c.CheckOut),
		IsActive:   true,
	}
}

type ReservationResponse struct {
	ID         int    `json:"reservation_id" yaml:"reservation_id"`
	CustomerID int    `json:"customer_id"    yaml:"customer_id"`
	HotelID    int    `json:"hotel_id"       yaml:"hotel_id"`
	CheckIn    string `json:"check_in"       yaml:"check_in"`
	CheckOut   string `json:"check_out"      yaml:"check_out"`
	IsActive   bool   `json:"is_active"      yaml:"is_active"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.IsActive = model.IsActive
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations" yaml:"reservations"`
	TotalData    int                   `json:"total_data"   yaml:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
