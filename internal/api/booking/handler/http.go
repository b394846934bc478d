package bookingHandler

import (
	bookingService "DishaAssistant/internal/api/booking/service"
	"DishaAssistant/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	bookingService bookingService.IBookingService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs bookingService.IBookingService,
) *BookingHandler {
	return &BookingHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		bookingService: bs,
	}
}

func (h *BookingHandler) Start(srv fiber.Router) {
	bookings := srv.Group("/bookings")
	bookings.Get("", h.ListBookings)
	bookings.Get("/:pnr", h.GetBooking)
	bookings.Post("/:pnr/cancel", h.CancelBooking)

	trains := srv.Group("/trains")
	trains.Get("", h.ListTrains)
	// Must stay ahead of /:number.
	trains.Get("/alternatives", h.GetAlternatives)
	trains.Get("/:number", h.GetTrainStatus)

	refunds := srv.Group("/refunds")
	refunds.Get("", h.GetRefundHistory)
	refunds.Post("/estimate", h.EstimateRefund)
	refunds.Get("/:pnr", h.GetRefund)
}
