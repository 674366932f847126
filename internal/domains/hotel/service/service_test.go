package service_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel/mocks"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/repository"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared"
	"hotelier/shared/failure"
	gRepo "hotelier/shared/repository"
)

func newService(t *testing.T) (service.Hotel, repository.Hotel) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	conn, err := jsonfile.Open(t.TempDir(), 0o644)
	require.NoError(t, err)

	otl := mocks.NewOtel()
	repo := repository.New(conn, cfg, otl)

	return service.New(repo, otl), repo
}

func createHotel(t *testing.T, svc service.Hotel, totalRooms int) dto.HotelResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), dto.CreateHotelRequest{
		Name:       "Grand Plaza",
		Location:   "New York",
		TotalRooms: totalRooms,
	})
	require.NoError(t, err)

	return res
}

func TestHotelService_Create(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	first := createHotel(t, svc, 100)
	second := createHotel(t, svc, 5)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 0, first.BookedRooms)
	assert.Equal(t, 100, first.AvailableRooms)

	stored, found, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.Hotel{ID: 2, Name: "Grand Plaza", Location: "New York", TotalRooms: 5}, stored)

	_, err = svc.Create(ctx, dto.CreateHotelRequest{Name: "Negative", TotalRooms: -1})
	assert.True(t, failure.HasCode(err, http.StatusBadRequest))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHotelService_Get(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := createHotel(t, svc, 10)

	tests := []struct {
		name    string
		id      int
		want    dto.HotelResponse
		wantErr func(error) bool
	}{
		{
			name: "existing hotel",
			id:   created.ID,
			want: created,
		},
		{
			name:    "missing hotel",
			id:      99,
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHotelService_GetAll(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	empty, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalData)

	createHotel(t, svc, 1)
	createHotel(t, svc, 2)
	createHotel(t, svc, 3)

	res, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)

	for i, hotel := range res.Hotels {
		assert.Equal(t, i+1, hotel.ID)
		assert.Equal(t, i+1, hotel.TotalRooms)
	}
}

func TestHotelService_Update(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := createHotel(t, svc, 3)
	require.NoError(t, svc.ReserveRoom(ctx, created.ID))
	require.NoError(t, svc.ReserveRoom(ctx, created.ID))

	tests := []struct {
		name    string
		id      int
		req     dto.UpdateHotelRequest
		want    dto.HotelResponse
		wantErr func(error) bool
	}{
		{
			name: "rename only",
			id:   created.ID,
			req:  dto.UpdateHotelRequest{Name: shared.Ptr("Grand Plaza Deluxe")},
			want: dto.HotelResponse{
				ID: created.ID, Name: "Grand Plaza Deluxe", Location: "New York",
				TotalRooms: 3, BookedRooms: 2, AvailableRooms: 1,
			},
		},
		{
			name: "empty update is a no-op",
			id:   created.ID,
			req:  dto.UpdateHotelRequest{},
			want: dto.HotelResponse{
				ID: created.ID, Name: "Grand Plaza Deluxe", Location: "New York",
				TotalRooms: 3, BookedRooms: 2, AvailableRooms: 1,
			},
		},
		{
			name: "shrink to booked rooms",
			id:   created.ID,
			req:  dto.UpdateHotelRequest{TotalRooms: shared.Ptr(2)},
			want: dto.HotelResponse{
				ID: created.ID, Name: "Grand Plaza Deluxe", Location: "New York",
				TotalRooms: 2, BookedRooms: 2, AvailableRooms: 0,
			},
		},
		{
			name:    "shrink below booked rooms leaves hotel unchanged",
			id:      created.ID,
			req:     dto.UpdateHotelRequest{Name: shared.Ptr("Ignored"), TotalRooms: shared.Ptr(1)},
			wantErr: failure.IsConflict,
			want: dto.HotelResponse{
				ID: created.ID, Name: "Grand Plaza Deluxe", Location: "New York",
				TotalRooms: 2, BookedRooms: 2, AvailableRooms: 0,
			},
		},
		{
			name:    "negative total rooms",
			id:      created.ID,
			req:     dto.UpdateHotelRequest{TotalRooms: shared.Ptr(-4)},
			wantErr: func(err error) bool { return failure.HasCode(err, http.StatusBadRequest) },
			want: dto.HotelResponse{
				ID: created.ID, Name: "Grand Plaza Deluxe", Location: "New York",
				TotalRooms: 2, BookedRooms: 2, AvailableRooms: 0,
			},
		},
		{
			name:    "missing hotel",
			id:      42,
			req:     dto.UpdateHotelRequest{Name: shared.Ptr("Nowhere")},
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
			}

			if tt.want.ID == 0 {
				return
			}

			got, err := svc.Get(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHotelService_Delete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first := createHotel(t, svc, 1)
	second := createHotel(t, svc, 1)

	require.NoError(t, svc.Delete(ctx, second.ID))

	_, err := svc.Get(ctx, second.ID)
	assert.True(t, failure.IsNotFound(err))

	err = svc.Delete(ctx, second.ID)
	assert.True(t, failure.IsNotFound(err))

	// ids keep growing from the highest id still present
	third := createHotel(t, svc, 1)
	assert.Equal(t, first.ID+1, third.ID)

	require.NoError(t, svc.Delete(ctx, first.ID))

	fourth := createHotel(t, svc, 1)
	assert.Equal(t, third.ID+1, fourth.ID)
}

func TestHotelService_ReserveAndCancel(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := createHotel(t, svc, 2)

	require.NoError(t, svc.ReserveRoom(ctx, created.ID))
	require.NoError(t, svc.ReserveRoom(ctx, created.ID))

	err := svc.ReserveRoom(ctx, created.ID)
	assert.True(t, failure.IsConflict(err), "unexpected error: %v", err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.BookedRooms)
	assert.Equal(t, 0, got.AvailableRooms)

	require.NoError(t, svc.CancelRoomReservation(ctx, created.ID))
	require.NoError(t, svc.CancelRoomReservation(ctx, created.ID))

	err = svc.CancelRoomReservation(ctx, created.ID)
	assert.True(t, failure.IsConflict(err), "unexpected error: %v", err)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.BookedRooms)

	assert.True(t, failure.IsNotFound(svc.ReserveRoom(ctx, 77)))
	assert.True(t, failure.IsNotFound(svc.CancelRoomReservation(ctx, 77)))
}

func TestHotelService_CapacityInvariantHolds(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created := createHotel(t, svc, 3)

	ops := []bool{true, true, false, true, true, true, false, false, false, false, true}
	for _, reserve := range ops {
		if reserve {
			_ = svc.ReserveRoom(ctx, created.ID)
		} else {
			_ = svc.CancelRoomReservation(ctx, created.ID)
		}

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.BookedRooms, 0)
		assert.LessOrEqual(t, got.BookedRooms, got.TotalRooms)
	}
}

func TestHotelService_OverbookedDocumentIsCorrupt(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	conn, err := jsonfile.Open(t.TempDir(), 0o644)
	require.NoError(t, err)

	document := `{"1": {"hotel_id": 1, "name": "Grand Plaza", "location": "New York", "total_rooms": 2, "booked_rooms": 5}}`
	require.NoError(t, os.WriteFile(conn.Path(cfg.Store.HotelsFile), []byte(document), 0o644))

	otl := mocks.NewOtel()
	svc := service.New(repository.New(conn, cfg, otl), otl)

	_, err = svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, gRepo.ErrCorruptDocument)
	assert.False(t, failure.IsFailure(err))

	err = svc.ReserveRoom(context.Background(), 1)
	assert.ErrorIs(t, err, gRepo.ErrCorruptDocument)
}

func TestHotelService_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())
	ctx := context.Background()
	diskErr := errors.New("disk full")

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(model.Hotel{}, diskErr)

		_, err := svc.Create(ctx, dto.CreateHotelRequest{Name: "Grand Plaza", TotalRooms: 1})
		assert.ErrorIs(t, err, diskErr)
		assert.False(t, failure.IsFailure(err))
	})

	t.Run("get", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), 1).
			Return(model.Hotel{}, false, diskErr)

		_, err := svc.Get(ctx, 1)
		assert.ErrorIs(t, err, diskErr)
		assert.False(t, failure.IsNotFound(err))
	})

	t.Run("reserve", func(t *testing.T) {
		mockRepo.EXPECT().
			Modify(gomock.Any(), 1, gomock.Any()).
			Return(model.Hotel{}, true, diskErr)

		err := svc.ReserveRoom(ctx, 1)
		assert.ErrorIs(t, err, diskErr)
		assert.False(t, failure.IsFailure(err))
	})

	t.Run("delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 1).
			Return(false, diskErr)

		assert.ErrorIs(t, svc.Delete(ctx, 1), diskErr)
	})
}
