package bookingRepository

import "DishaAssistant/internal/entity"

var seedBookings = map[string]entity.Booking{
	"1234567890": {
		PNR:         "1234567890",
		TrainNumber: "12301",
		TrainName:   "Howrah Rajdhani Express",
		From:        "Howrah Junction (HWH)",
		To:          "New Delhi (NDLS)",
		JourneyDate: "2026-01-25",
		BookingDate: "2026-01-10",
		Class:       "AC 3-Tier (3A)",
		Fare:        3450,
		Passengers: []entity.Passenger{
			{Name: "Rajesh Kumar", Age: 32, Status: "CNF", Seat: "B4-23"},
			{Name: "Priya Sharma", Age: 28, Status: "CNF", Seat: "B4-24"},
		},
		Status: entity.BookingStatusConfirmed,
		Quota:  entity.QuotaGeneral,
	},
	"9876543210": {
		PNR:         "9876543210",
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani Express",
		From:        "Mumbai Central (BCT)",
		To:          "New Delhi (NDLS)",
		JourneyDate: "2026-01-22",
		BookingDate: "2026-01-08",
		Class:       "AC 2-Tier (2A)",
		Fare:        4250,
		Passengers: []entity.Passenger{
			{Name: "Amit Patel", Age: 45, Status: "CNF", Seat: "A1-15"},
		},
		Status: entity.BookingStatusConfirmed,
		Quota:  entity.QuotaGeneral,
	},
	"5555555555": {
		PNR:         "5555555555",
		TrainNumber: "12259",
		TrainName:   "Duronto Express",
		From:        "Sealdah (SDAH)",
		To:          "New Delhi (NDLS)",
		JourneyDate: "2026-01-20",
		BookingDate: "2026-01-19",
		Class:       "AC 3-Tier (3A)",
		Fare:        2890,
		Passengers: []entity.Passenger{
			{Name: "Sunita Singh", Age: 35, Status: "CNF", Seat: "C2-42"},
		},
		Status: entity.BookingStatusConfirmed,
		Quota:  entity.QuotaPremiumTatkal,
	},
	"1111111111": {
		PNR:         "1111111111",
		TrainNumber: "12430",
		TrainName:   "Lucknow Mail",
		From:        "New Delhi (NDLS)",
		To:          "Lucknow (LKO)",
		JourneyDate: "2026-01-28",
		BookingDate: "2026-01-12",
		Class:       "Sleeper (SL)",
		Fare:        890,
		Passengers: []entity.Passenger{
			{Name: "Vikram Yadav", Age: 28, Status: "RAC", Seat: "RAC-12"},
		},
		Status: entity.BookingStatusRAC,
		Quota:  entity.QuotaGeneral,
	},
	"2222222222": {
		PNR:         "2222222222",
		TrainNumber: "12925",
		TrainName:   "Paschim Express",
		From:        "Amritsar (ASR)",
		To:          "Mumbai Bandra (BDTS)",
		JourneyDate: "2026-02-05",
		BookingDate: "2026-01-15",
		Class:       "AC 3-Tier (3A)",
		Fare:        3150,
		Passengers: []entity.Passenger{
			{Name: "Meera Kapoor", Age: 42, Status: "WL", Seat: "WL-8"},
			{Name: "Rohan Kapoor", Age: 15, Status: "WL", Seat: "WL-9"},
		},
		Status: entity.BookingStatusWaitlist,
		Quota:  entity.QuotaGeneral,
	},
}

// Display order for demo listings.
var seedBookingOrder = []string{"1234567890", "9876543210", "5555555555", "1111111111", "2222222222"}

var seedTrains = map[string]entity.TrainStatus{
	"12301": {
		TrainNumber:     "12301",
		TrainName:       "Howrah Rajdhani",
		Status:          entity.TrainStateRunning,
		CurrentLocation: "Kanpur Central",
		ExpectedArrival: "22:30",
		LastUpdated:     "2026-01-18 15:30",
	},
	"12951": {
		TrainNumber:     "12951",
		TrainName:       "Mumbai Rajdhani",
		Status:          entity.TrainStateDelayed,
		Delay:           120,
		CurrentLocation: "Pune Junction",
		ExpectedArrival: "18:45",
		LastUpdated:     "2026-01-18 15:28",
	},
	"12259": {
		TrainNumber:     "12259",
		TrainName:       "Duronto Express",
		Status:          entity.TrainStateCancelled,
		CurrentLocation: "N/A",
		ExpectedArrival: "N/A",
		LastUpdated:     "2026-01-18 08:00",
	},
	"12430": {
		TrainNumber:     "12430",
		TrainName:       "Lucknow Express",
		Status:          entity.TrainStateRunning,
		Delay:           15,
		CurrentLocation: "Ghaziabad",
		ExpectedArrival: "06:45",
		LastUpdated:     "2026-01-18 15:25",
	},
	"12925": {
		TrainNumber:     "12925",
		TrainName:       "Paschim Express",
		Status:          entity.TrainStateRunning,
		CurrentLocation: "Jaipur",
		ExpectedArrival: "14:20",
		LastUpdated:     "2026-01-18 15:20",
	},
}

var seedTrainOrder = []string{"12301", "12951", "12259", "12430", "12925"}

var seedRefunds = map[string]entity.RefundRecord{
	"1234567890": {
		PNR:                "1234567890",
		Status:             entity.RefundStateProcessing,
		Percentage:         60,
		Amount:             3123,
		SubmittedDate:      "2026-01-18",
		ApprovedDate:       "2026-01-19",
		ExpectedCreditDate: "2026-01-22",
		Stages:             entity.StagesFor(entity.RefundStateProcessing),
	},
	"9876543210": {
		PNR:                "9876543210",
		Status:             entity.RefundStateApproved,
		Percentage:         40,
		Amount:             3850,
		SubmittedDate:      "2026-01-15",
		ApprovedDate:       "2026-01-17",
		ExpectedCreditDate: "2026-01-21",
		Stages:             entity.StagesFor(entity.RefundStateApproved),
	},
	"5555555555": {
		PNR:                "5555555555",
		Status:             entity.RefundStateRejected,
		Percentage:         0,
		Amount:             0,
		SubmittedDate:      "2026-01-10",
		ExpectedCreditDate: "N/A",
		Stages:             entity.StagesFor(entity.RefundStateRejected),
	},
}

var seedRefundHistory = []entity.RefundHistoryEntry{
	{PNR: "1234567890", Amount: 3123, Status: "processing", Date: "2026-01-18", TrainNumber: "12301", TrainName: "Howrah Rajdhani"},
	{PNR: "9876543210", Amount: 3850, Status: "processing", Date: "2026-01-15", TrainNumber: "12951", TrainName: "Mumbai Rajdhani"},
	{PNR: "5555555555", Amount: 0, Status: "rejected", Date: "2026-01-10", Reason: "Premium Tatkal - No refund eligible", TrainNumber: "12259", TrainName: "Duronto Express"},
	{PNR: "8888888888", Amount: 2100, Status: "received", Date: "2025-12-05", TrainNumber: "12423", TrainName: "Dibrugarh Rajdhani"},
	{PNR: "7777777777", Amount: 890, Status: "received", Date: "2025-12-20", TrainNumber: "12317", TrainName: "Akal Takht Express"},
}

var seedAlternatives = []entity.AlternativeTrain{
	{
		TrainNumber:    "12302",
		TrainName:      "Howrah Rajdhani",
		From:           "Howrah",
		To:             "New Delhi",
		Departure:      "2026-01-25 18:00",
		Arrival:        "2026-01-26 10:15",
		AvailableSeats: map[string]int{"3A": 4, "2A": 2, "1A": 1},
		Fare:           map[string]int{"3A": 3550, "2A": 4850, "1A": 6950},
	},
	{
		TrainNumber:    "12305",
		TrainName:      "Kalka Mail",
		From:           "Howrah",
		To:             "New Delhi",
		Departure:      "2026-01-26 10:00",
		Arrival:        "2026-01-27 05:30",
		AvailableSeats: map[string]int{"3A": 8, "2A": 5, "SL": 12},
		Fare:           map[string]int{"3A": 2950, "2A": 4250, "SL": 890},
	},
}

// Sample tables indexed by PNR arithmetic when synthesizing bookings.
var (
	SampleTrains = []struct{ Number, Name string }{
		{"12301", "Howrah Rajdhani Express"},
		{"12951", "Mumbai Rajdhani Express"},
		{"12259", "Sealdah Duronto Express"},
		{"12430", "Lucknow Mail"},
		{"12925", "Paschim Express"},
		{"12627", "Karnataka Express"},
		{"12839", "Chennai Mail"},
		{"12002", "Bhopal Shatabdi"},
	}

	SampleStations = []string{
		"New Delhi (NDLS)",
		"Mumbai Central (BCT)",
		"Howrah Junction (HWH)",
		"Chennai Central (MAS)",
		"Bangalore City (SBC)",
		"Pune Junction (PUNE)",
		"Agra Cantt (AGC)",
		"Jaipur Junction (JP)",
		"Lucknow (LKO)",
		"Kolkata (KOAA)",
	}

	SampleClasses = []string{
		"AC 1st Class (1A)",
		"AC 2-Tier (2A)",
		"AC 3-Tier (3A)",
		"Sleeper (SL)",
	}

	SampleNames = []string{
		"Rahul Sharma",
		"Priya Singh",
		"Amit Kumar",
		"Sneha Patel",
		"Vikram Joshi",
		"Anjali Gupta",
	}
)
