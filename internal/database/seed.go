package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/shipra/internal/models"
)

// Seed inserts demo hubs and birds when the registry is empty. Locations and
// birds are read-only through the API, so this is the only write path.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locations := []models.Location{
		{Name: "Bhopal (Raja Bhoj Airport)", Lat: 23.2875, Lng: 77.3377, Available: true, Description: "Central Hub"},
		{Name: "New Delhi (IGI)", Lat: 28.5562, Lng: 77.1000, Available: true, Description: "National Capital"},
		{Name: "Mumbai (CSMIA)", Lat: 19.0902, Lng: 72.8628, Available: true, Description: "Financial Hub"},
		{Name: "Bangalore (KIAL)", Lat: 13.1986, Lng: 77.7066, Available: true, Description: "Tech Hub"},
		{Name: "Indore (Devi Ahilya)", Lat: 22.7217, Lng: 75.8011, Available: true, Description: "Regional Hub"},
		{Name: "Jaipur (JAI)", Lat: 26.8289, Lng: 75.8056, Available: false, Description: "Pink City"},
	}
	if err := conn.Create(&locations).Error; err != nil {
		return err
	}

	birds := []models.Bird{
		{Model: "eVTOL-X1", Status: models.BirdStatusReady, Battery: 98, Lat: 23.2875, Lng: 77.3377},
		{Model: "eVTOL-X1", Status: models.BirdStatusCharging, Battery: 45, Lat: 28.5562, Lng: 77.1000},
		{Model: "eVTOL-SkyPro", Status: models.BirdStatusReady, Battery: 100, Lat: 19.0902, Lng: 72.8628},
		{Model: "Nano-Flyer", Status: models.BirdStatusMaintenance, Battery: 12, Lat: 22.7217, Lng: 75.8011},
		{Model: "eVTOL-X1", Status: models.BirdStatusReady, Battery: 88, Lat: 13.1986, Lng: 77.7066},
	}
	if err := conn.Create(&birds).Error; err != nil {
		return err
	}

	log.Printf("[Seed] inserted %d locations and %d birds", len(locations), len(birds))
	return nil
}
