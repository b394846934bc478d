package bookingRepository

import (
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const cancelledKeyPrefix = "disha:cancelled:"

func New(store storage.IStorage, log *logrus.Logger) Repository {
	return &repository{
		store: store,
		log:   log,
	}
}

type repository struct {
	store storage.IStorage
	log   *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Catalog:      &catalogRepository{},
		Cancellation: &cancellationRepository{store: r.store, log: r.log},
	}
}

type Client struct {
	// Catalog serves the fixed demo dataset. Every call returns copies.
	Catalog interface {
		GetBooking(pnr string) (entity.Booking, bool)
		ListBookings() []entity.Booking
		GetTrain(number string) (entity.TrainStatus, bool)
		ListTrains() []entity.TrainStatus
		GetRefund(pnr string) (entity.RefundRecord, bool)
		ListRefundHistory() []entity.RefundHistoryEntry
		ListAlternatives() []entity.AlternativeTrain
	}

	Cancellation interface {
		GetCancellation(ctx context.Context, pnr string) (entity.CancelledTicket, error)
		SaveCancellation(ctx context.Context, ticket entity.CancelledTicket) error
	}
}
