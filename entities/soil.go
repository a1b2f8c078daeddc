package entities

import "time"

type SoilSample struct {
	SampleID         uint      `gorm:"primaryKey" json:"sample_id"`
	GardenID         uint      `gorm:"index" json:"garden_id"`
	PlantingID       *uint     `gorm:"index" json:"planting_id,omitempty"`
	PH               float64   `json:"ph"`
	NitrogenPPM      *float64  `json:"nitrogen_ppm,omitempty"`
	PhosphorusPPM    *float64  `json:"phosphorus_ppm,omitempty"`
	PotassiumPPM     *float64  `json:"potassium_ppm,omitempty"`
	OrganicMatterPct *float64  `json:"organic_matter_percent,omitempty"`
	MoisturePct      *float64  `json:"moisture_percent,omitempty"`
	DateCollected    time.Time `json:"date_collected"`
	Note             string    `json:"note"`
	CreatedAt        time.Time
}

// SoilRecommendation is derived per evaluation and never persisted.
// Field names and enum values are the API contract consumed by the UI.
type SoilRecommendation struct {
	Parameter      string  `json:"parameter"` // pH|Nitrogen|Phosphorus|Potassium|OrganicMatter|Moisture
	CurrentValue   float64 `json:"current_value"`
	OptimalRange   string  `json:"optimal_range"`
	Status         string  `json:"status"` // optimal|low|high|critical
	Recommendation string  `json:"recommendation"`
	Priority       string  `json:"priority"` // low|medium|high|critical
}
