package dto

import (
	"hotelier/internal/domains/hotel/model"
)

type CreateHotelRequest struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalRooms int    `json:"total_rooms" validate:"gte=0"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	return model.Hotel{
		Name:        c.Name,
		Location:    c.Location,
		TotalRooms:  c.TotalRooms,
		BookedRooms: 0,
	}
}

// UpdateHotelRequest is a partial update: nil fields are left unchanged.
type UpdateHotelRequest struct {
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	TotalRooms *int    `json:"total_rooms,omitempty" validate:"omitempty,gte=0"`
}

func (u *UpdateHotelRequest) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.TotalRooms == nil
}

// Apply returns current with every set field replaced.
func (u *UpdateHotelRequest) Apply(current model.Hotel) model.Hotel {
	if u.Name != nil {
		current.Name = *u.Name
	}

	if u.Location != nil {
		current.Location = *u.Location
	}

	if u.TotalRooms != nil {
		current.TotalRooms = *u.TotalRooms
	}

	return current
}

type HotelResponse struct {
	ID             int    `json:"hotel_id"        yaml:"hotel_id"`
	Name           string `json:"name"            yaml:"name"`
	Location       string `json:"location"        yaml:"location"`
	TotalRooms     int    `json:"total_rooms"     yaml:"total_rooms"`
	BookedRooms    int    `json:"booked_rooms"    yaml:"booked_rooms"`
	AvailableRooms int    `json:"available_rooms" yaml:"available_rooms"`
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.TotalRooms = model.TotalRooms
	r.BookedRooms = model.BookedRooms
	r.AvailableRooms = model.AvailableRooms()
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"     yaml:"hotels"`
	TotalData int             `json:"total_data" yaml:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel) {
	r.TotalData = len(models)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
