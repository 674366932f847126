package model_test

import (
	"hotelier/internal/domains/hotel/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotel_Capacity(t *testing.T) {
	hotel := model.Hotel{ID: 1, TotalRooms: 2}

	assert.Equal(t, 2, hotel.AvailableRooms())
	assert.True(t, hotel.CanReserve())
	assert.False(t, hotel.CanRelease())

	hotel.Reserve()
	hotel.Reserve()

	assert.Equal(t, 0, hotel.AvailableRooms())
	assert.False(t, hotel.CanReserve())
	assert.True(t, hotel.CanRelease())

	hotel.Release()

	assert.Equal(t, 1, hotel.BookedRooms)
	assert.Equal(t, 1, hotel.AvailableRooms())
}

func TestHotel_CanResize(t *testing.T) {
	hotel := model.Hotel{TotalRooms: 10, BookedRooms: 4}

	assert.True(t, hotel.CanResize(4))
	assert.True(t, hotel.CanResize(12))
	assert.False(t, hotel.CanResize(3))
}

func TestHotel_WithIDKeepsFields(t *testing.T) {
	hotel := model.Hotel{Name: "Grand Plaza", Location: "New York", TotalRooms: 10}

	withID := hotel.WithID(7)

	assert.Equal(t, 7, withID.Identifier())
	assert.Equal(t, "Grand Plaza", withID.Name)
	assert.Equal(t, 0, hotel.ID)
}

func TestHotel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hotel   model.Hotel
		wantErr bool
	}{
		{name: "empty hotel", hotel: model.Hotel{}},
		{name: "partly booked", hotel: model.Hotel{TotalRooms: 10, BookedRooms: 4}},
		{name: "fully booked", hotel: model.Hotel{TotalRooms: 3, BookedRooms: 3}},
		{name: "overbooked", hotel: model.Hotel{TotalRooms: 3, BookedRooms: 4}, wantErr: true},
		{name: "negative booked rooms", hotel: model.Hotel{TotalRooms: 3, BookedRooms: -1}, wantErr: true},
		{name: "negative total rooms", hotel: model.Hotel{TotalRooms: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hotel.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
