package model

import (
	"fmt"
)

const (
	EntityName = "hotel"

	FieldID          = "hotel_id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldTotalRooms  = "total_rooms"
	FieldBookedRooms = "booked_rooms"
)

// Hotel is a capacity-bounded room inventory. 0 <= BookedRooms <= TotalRooms.
type Hotel struct {
	ID          int    `json:"hotel_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	TotalRooms  int    `json:"total_rooms"`
	BookedRooms int    `json:"booked_rooms"`
}

func (h Hotel) Identifier() int {
	return h.ID
}

func (h Hotel) WithID(id int) Hotel {
	h.ID = id

	return h
}

// Validate checks the capacity invariant of a stored hotel.
func (h Hotel) Validate() error {
	if h.TotalRooms < 0 || h.BookedRooms < 0 || h.BookedRooms > h.TotalRooms {
		return fmt.Errorf("booked_rooms %d outside 0..total_rooms %d", h.BookedRooms, h.TotalRooms)
	}

	return nil
}

// AvailableRooms is the capacity not taken by active reservations.
func (h Hotel) AvailableRooms() int {
	return h.TotalRooms - h.BookedRooms
}

func (h Hotel) CanReserve() bool {
	return h.AvailableRooms() > 0
}

func (h Hotel) CanRelease() bool {
	return h.BookedRooms > 0
}

// CanResize reports whether totalRooms still covers the committed occupancy.
func (h Hotel) CanResize(totalRooms int) bool {
	return totalRooms >= h.BookedRooms
}

// Reserve takes one room. Callers check CanReserve first.
func (h *Hotel) Reserve() {
	h.BookedRooms++
}

// Release gives one room back. Callers check CanRelease first.
func (h *Hotel) Release() {
	h.BookedRooms--
}
