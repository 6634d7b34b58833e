package models

// Bird statuses. Only Ready birds are offered for booking.
const (
	BirdStatusReady       = "Ready"
	BirdStatusCharging    = "Charging"
	BirdStatusMaintenance = "Maintenance"
	BirdStatusInFlight    = "In-Flight"
)

// Location is a departure/arrival hub. Hubs are seeded out of band and
// read-only through the API.
type Location struct {
	BaseModel
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Available   bool    `gorm:"default:true" json:"available"`
	Description string  `json:"description"`
}

// Bird is an air-taxi vehicle. No assignment logic ties a bird to a booking.
type Bird struct {
	BaseModel
	Model   string  `json:"model"`
	Status  string  `gorm:"default:Ready;index" json:"status"`
	Battery int     `json:"battery"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
