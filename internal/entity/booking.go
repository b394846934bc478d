package entity

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRAC       BookingStatus = "rac"
	BookingStatusWaitlist  BookingStatus = "waitlist"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Quota string

const (
	QuotaGeneral       Quota = "general"
	QuotaTatkal        Quota = "tatkal"
	QuotaPremiumTatkal Quota = "premium-tatkal"
	QuotaLadies        Quota = "ladies"
)

type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Status string `json:"status"`
	Seat   string `json:"seat"`
}

type Booking struct {
	PNR         string        `json:"pnr"`
	TrainNumber string        `json:"trainNumber"`
	TrainName   string        `json:"trainName"`
	From        string        `json:"from"`
	To          string        `json:"to"`
	JourneyDate string        `json:"journeyDate"`
	BookingDate string        `json:"bookingDate"`
	Class       string        `json:"class"`
	Fare        int           `json:"fare"`
	Passengers  []Passenger   `json:"passengers"`
	Status      BookingStatus `json:"status"`
	Quota       Quota         `json:"quota"`
}

// Clone returns a copy that does not share the passenger slice.
func (b Booking) Clone() Booking {
	passengers := make([]Passenger, len(b.Passengers))
	copy(passengers, b.Passengers)
	b.Passengers = passengers
	return b
}

func (b Booking) IsNonRefundable() bool {
	return b.Quota == QuotaPremiumTatkal
}
