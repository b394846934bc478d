package entity

type TrainState string

const (
	TrainStateRunning   TrainState = "running"
	TrainStateDelayed   TrainState = "delayed"
	TrainStateCancelled TrainState = "cancelled"
	TrainStateDiverted  TrainState = "diverted"
)

type TrainStatus struct {
	TrainNumber     string     `json:"trainNumber"`
	TrainName       string     `json:"trainName"`
	Status          TrainState `json:"status"`
	Delay           int        `json:"delay"`
	CurrentLocation string     `json:"currentLocation"`
	ExpectedArrival string     `json:"expectedArrival"`
	LastUpdated     string     `json:"lastUpdated"`
}

type AlternativeTrain struct {
	TrainNumber    string         `json:"trainNumber"`
	TrainName      string         `json:"trainName"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	Departure      string         `json:"departure"`
	Arrival        string         `json:"arrival"`
	AvailableSeats map[string]int `json:"availableSeats"`
	Fare           map[string]int `json:"fare"`
}
