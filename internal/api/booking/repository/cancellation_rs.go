package bookingRepository

import (
	"DishaAssistant/internal/api/booking"
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/storage"
	"errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type cancellationRepository struct {
	store storage.IStorage
	log   *logrus.Logger
}

func (r *cancellationRepository) GetCancellation(ctx context.Context, pnr string) (entity.CancelledTicket, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := r.store.Get(ctx, cancelledKeyPrefix+pnr)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return entity.CancelledTicket{}, booking.ErrNoCancellation
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pnr":        pnr,
			"error":      err.Error(),
		}).Error("Failed to read cancellation")
		return entity.CancelledTicket{}, err
	}

	var ticket entity.CancelledTicket
	if err := json.Unmarshal(raw, &ticket); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pnr":        pnr,
			"error":      err.Error(),
		}).Error("Failed to decode cancellation")
		return entity.CancelledTicket{}, err
	}

	return ticket, nil
}

// SaveCancellation overwrites any earlier row for the same PNR.
func (r *cancellationRepository) SaveCancellation(ctx context.Context, ticket entity.CancelledTicket) error {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := json.Marshal(ticket)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode cancellation")
		return err
	}

	if err := r.store.Set(ctx, cancelledKeyPrefix+ticket.PNR, raw, 0); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pnr":        ticket.PNR,
			"error":      err.Error(),
		}).Error("Failed to save cancellation")
		return err
	}

	return nil
}
