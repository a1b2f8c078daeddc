package entities

import "time"

type IrrigationEvent struct {
	EventID      uint      `gorm:"primaryKey" json:"event_id"`
	GardenID     uint      `gorm:"index" json:"garden_id"`
	ZoneID       *uint     `gorm:"index" json:"zone_id,omitempty"`
	PlantingID   *uint     `gorm:"index" json:"planting_id,omitempty"`
	WateredAt    time.Time `json:"watered_at"`
	WaterVolumeL *float64  `json:"water_volume_liters,omitempty"`
	Method       string    `json:"irrigation_method"` // drip|sprinkler|hand_watering|soaker_hose|flood|misting
	DurationMin  *int      `json:"duration_minutes,omitempty"`
	Note         string    `json:"note"`
	CreatedAt    time.Time
}

// IrrigationRecommendation is derived per evaluation and never persisted.
type IrrigationRecommendation struct {
	PlantName             string   `json:"plant_name"`
	DaysSinceLastWatering int      `json:"days_since_last_watering"`
	RecommendedFrequency  int      `json:"recommended_frequency_days"`
	RecommendedVolumeL    *float64 `json:"recommended_volume_liters,omitempty"`
	Status                string   `json:"status"` // on_schedule|overdue|overwatered|no_data
	Recommendation        string   `json:"recommendation"`
	Priority              string   `json:"priority"` // low|medium|high|critical
}
