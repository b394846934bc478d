package bookingService

import (
	"DishaAssistant/internal/entity"
	"golang.org/x/net/context"
)

func (s *bookingService) LookupTrainStatus(ctx context.Context, number string) (entity.TrainStatus, bool) {
	if !ValidTrainNumber(number) {
		return entity.TrainStatus{}, false
	}
	return s.bookingRepository.NewClient().Catalog.GetTrain(number)
}

func (s *bookingService) AlternativeTrains(ctx context.Context) []entity.AlternativeTrain {
	return s.bookingRepository.NewClient().Catalog.ListAlternatives()
}

func (s *bookingService) DemoTrains(ctx context.Context) []entity.TrainStatus {
	return s.bookingRepository.NewClient().Catalog.ListTrains()
}
