package bookingRepository

import "DishaAssistant/internal/entity"

type catalogRepository struct{}

func (r *catalogRepository) GetBooking(pnr string) (entity.Booking, bool) {
	b, ok := seedBookings[pnr]
	if !ok {
		return entity.Booking{}, false
	}
	return b.Clone(), true
}

func (r *catalogRepository) ListBookings() []entity.Booking {
	bookings := make([]entity.Booking, 0, len(seedBookingOrder))
	for _, pnr := range seedBookingOrder {
		bookings = append(bookings, seedBookings[pnr].Clone())
	}
	return bookings
}

func (r *catalogRepository) GetTrain(number string) (entity.TrainStatus, bool) {
	t, ok := seedTrains[number]
	return t, ok
}

func (r *catalogRepository) ListTrains() []entity.TrainStatus {
	trains := make([]entity.TrainStatus, 0, len(seedTrainOrder))
	for _, number := range seedTrainOrder {
		trains = append(trains, seedTrains[number])
	}
	return trains
}

func (r *catalogRepository) GetRefund(pnr string) (entity.RefundRecord, bool) {
	rec, ok := seedRefunds[pnr]
	return rec, ok
}

func (r *catalogRepository) ListRefundHistory() []entity.RefundHistoryEntry {
	history := make([]entity.RefundHistoryEntry, len(seedRefundHistory))
	copy(history, seedRefundHistory)
	return history
}

func (r *catalogRepository) ListAlternatives() []entity.AlternativeTrain {
	alternatives := make([]entity.AlternativeTrain, 0, len(seedAlternatives))
	for _, a := range seedAlternatives {
		a.AvailableSeats = copyCounts(a.AvailableSeats)
		a.Fare = copyCounts(a.Fare)
		alternatives = append(alternatives, a)
	}
	return alternatives
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
