package types

import "garden/entities"

// ScopeError marks one garden whose evaluation failed. Partial results from
// the other gardens are still returned.
type ScopeError struct {
	GardenID uint   `json:"garden_id"`
	Error    string `json:"error"`
}

type SampleReport struct {
	Sample          entities.SoilSample           `json:"sample"`
	PlantName       string                        `json:"plant_name"`
	Recommendations []entities.SoilRecommendation `json:"recommendations"`
}

type GardenSoilReport struct {
	GardenID   uint           `json:"garden_id"`
	GardenName string         `json:"garden_name"`
	Samples    []SampleReport `json:"samples"`
}

type SoilReport struct {
	Gardens []GardenSoilReport `json:"gardens"`
	Errors  []ScopeError       `json:"errors,omitempty"`
}

type IrrigationSummaryBlock struct {
	Recommendations []entities.IrrigationRecommendation `json:"recommendations"`
}

type GardenIrrigation struct {
	GardenID   uint                       `json:"garden_id"`
	GardenName string                     `json:"garden_name"`
	Events     []entities.IrrigationEvent `json:"events"`
	Summary    IrrigationSummaryBlock     `json:"summary"`
}

type IrrigationSummary struct {
	Gardens []GardenIrrigation `json:"gardens"`
	Errors  []ScopeError       `json:"errors,omitempty"`
}

type InsightReport struct {
	WindowDays int                `json:"window_days"`
	Insights   []entities.Insight `json:"insights"`
	Errors     []ScopeError       `json:"errors,omitempty"`
}
