package entities

import "time"

type Garden struct {
	GardenID  uint    `gorm:"primaryKey" json:"garden_id"`
	UserID    string  `json:"user_id" gorm:"index"`
	Name      string  `json:"name"`
	SoilType  string  `json:"soil_type"` // sandy|silt|loam|clay
	SizeSqFt  float64 `json:"size_sqft"`
	Notes     string  `json:"notes"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Zone struct {
	ZoneID           uint   `gorm:"primaryKey" json:"zone_id"`
	GardenID         uint   `gorm:"index" json:"garden_id"`
	Name             string `json:"name"`
	SoilType         string `json:"soil_type"`         // overrides the garden soil type when set
	IrrigationMethod string `json:"irrigation_method"` // drip|sprinkler|hand_watering|soaker_hose|flood|misting
	CreatedAt        time.Time
}

type Planting struct {
	PlantingID  uint      `gorm:"primaryKey" json:"planting_id"`
	GardenID    uint      `gorm:"index" json:"garden_id"`
	ZoneID      *uint     `gorm:"index" json:"zone_id,omitempty"`
	PlantName   string    `json:"plant_name"`
	Variety     string    `json:"variety"`
	Quantity    int       `json:"quantity"`
	PlantedDate time.Time `json:"planted_date"`
	CreatedAt   time.Time
}
