package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	bookingMocks "atrium/internal/domains/booking/mocks"
	bookingDto "atrium/internal/domains/booking/model/dto"
	contactMocks "atrium/internal/domains/contact/mocks"
	roomMocks "atrium/internal/domains/room/mocks"
	roomDto "atrium/internal/domains/room/model/dto"
	bookingHandler "atrium/internal/handlers/booking"
	contactHandler "atrium/internal/handlers/contact"
	roomHandler "atrium/internal/handlers/room"
	"atrium/transport/http/middleware"
	"atrium/transport/http/router"
)

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*HTTP, *roomMocks.MockRoomService, *bookingMocks.MockBookingService) {
	t.Helper()

	cfg := &config.Config{}
	mockOtel := mocks.NewOtel()
	mockRooms := roomMocks.NewMockRoomService(ctrl)
	mockBookings := bookingMocks.NewMockBookingService(ctrl)
	mockContacts := contactMocks.NewMockContactMessageService(ctrl)

	rooms := roomHandler.New(mockRooms, mockOtel)
	bookings := bookingHandler.New(mockBookings, mockOtel)
	contacts := contactHandler.New(mockContacts, mockOtel)

	r := router.New(router.DomainHandlers{
		Room:    rooms,
		Booking: bookings,
		Contact: contacts,
	})

	h := New(cfg, r, middleware.NewAppMiddleware(mockOtel, cfg))
	h.setupRoutes()

	return h, mockRooms, mockBookings
}

func TestServeRoutes_TrailingSlashResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRooms, mockBookings := newTestServer(t, ctrl)

	mockRooms.EXPECT().
		GetAll(gomock.Any()).
		Return([]roomDto.RoomResponse{}, nil).
		Times(2)
	mockRooms.EXPECT().
		Get(gomock.Any(), int64(5)).
		Return(roomDto.RoomResponse{ID: 5, Name: "Standard Room"}, nil).
		Times(2)
	mockBookings.EXPECT().
		Get(gomock.Any(), int64(3)).
		Return(bookingDto.BookingResponse{ID: 3}, nil).
		Times(2)

	paths := []string{
		"/rooms",
		"/rooms/",
		"/rooms/5",
		"/rooms/5/",
		"/bookings/3",
		"/bookings/3/",
	}

	for _, path := range paths {
		recorder := httptest.NewRecorder()
		h.mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, recorder.Code, "GET %s", path)
	}
}

func TestServeRoutes_UnresolvablePaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestServer(t, ctrl)

	paths := []string{
		"/rooms/abc",
		"/galleries",
	}

	for _, path := range paths {
		recorder := httptest.NewRecorder()
		h.mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code, "GET %s", path)
	}
}
